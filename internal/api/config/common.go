package config

import "time"

// Config 配置主体
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	DB     DBConfig     `mapstructure:"database"`
	Redis  RedisConfig  `mapstructure:"redis"`
	JWT    JWTConfig    `mapstructure:"jwt"`
	Upload UploadConfig `mapstructure:"upload"`
	Cache  CacheConfig  `mapstructure:"cache"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port      int    `mapstructure:"port"`
	Env       string `mapstructure:"env"`
	ClientURL string `mapstructure:"client_url"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// JWTConfig 令牌配置，访问令牌与刷新令牌使用独立密钥
type JWTConfig struct {
	Secret           string        `mapstructure:"secret"`
	RefreshSecret    string        `mapstructure:"refresh_secret"`
	ExpiresIn        time.Duration `mapstructure:"expires_in"`
	RefreshExpiresIn time.Duration `mapstructure:"refresh_expires_in"`
}

// UploadConfig 上传配置，大小单位为字节
type UploadConfig struct {
	Dir          string `mapstructure:"dir"`
	MaxImageSize int64  `mapstructure:"max_image_size"`
	MaxVideoSize int64  `mapstructure:"max_video_size"`
}

// CacheConfig 热门帖子缓存配置
type CacheConfig struct {
	HotPostsLimit int           `mapstructure:"hot_posts_limit"`
	HotPostsTTL   time.Duration `mapstructure:"hot_posts_ttl"`
}

// IsProduction 是否生产环境
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}
