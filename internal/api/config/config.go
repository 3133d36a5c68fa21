package config

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

// LoadConfig 从文件与环境变量加载配置并填充到 Cfg
// 优先级：环境变量 > configs/config.yaml > 默认值
func LoadConfig() error {
	// .env 存在时先加载，不存在则忽略
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")

	setDefaults()
	bindEnvKeys()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		// 没有配置文件时仅依赖默认值与环境变量
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	Cfg = &cfg

	return nil
}

func setDefaults() {
	viper.SetDefault("server.port", 3000)
	viper.SetDefault("server.env", "development")
	viper.SetDefault("server.client_url", "http://localhost:5173")

	viper.SetDefault("database.max_idle", 10)
	viper.SetDefault("database.max_open", 100)
	viper.SetDefault("database.max_lifetime", 60)

	viper.SetDefault("redis.addr", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.pool_size", 10)

	viper.SetDefault("jwt.secret", "folio-dev-secret")
	viper.SetDefault("jwt.refresh_secret", "folio-dev-refresh-secret")
	viper.SetDefault("jwt.expires_in", "15m")
	viper.SetDefault("jwt.refresh_expires_in", "168h")

	viper.SetDefault("upload.dir", "./uploads")
	viper.SetDefault("upload.max_image_size", 10<<20)
	viper.SetDefault("upload.max_video_size", 100<<20)

	viper.SetDefault("cache.hot_posts_limit", 10)
	viper.SetDefault("cache.hot_posts_ttl", "30m")
}

// bindEnvKeys 绑定对外约定的环境变量名
func bindEnvKeys() {
	_ = viper.BindEnv("server.port", "PORT")
	_ = viper.BindEnv("server.env", "APP_ENV")
	_ = viper.BindEnv("server.client_url", "CLIENT_URL")
	_ = viper.BindEnv("database.dsn", "DATABASE_DSN")
	_ = viper.BindEnv("redis.addr", "REDIS_ADDR")
	_ = viper.BindEnv("redis.password", "REDIS_PASSWORD")
	_ = viper.BindEnv("jwt.secret", "JWT_SECRET")
	_ = viper.BindEnv("jwt.refresh_secret", "JWT_REFRESH_SECRET")
	_ = viper.BindEnv("jwt.expires_in", "JWT_EXPIRES_IN")
	_ = viper.BindEnv("jwt.refresh_expires_in", "JWT_REFRESH_EXPIRES_IN")
	_ = viper.BindEnv("upload.dir", "UPLOAD_DIR")
	_ = viper.BindEnv("upload.max_image_size", "MAX_IMAGE_SIZE")
	_ = viper.BindEnv("upload.max_video_size", "MAX_VIDEO_SIZE")
}
