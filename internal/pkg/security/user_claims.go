package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/parteecat/folio/internal/api/config"
)

var (
	accessSecret     = []byte("folio-dev-secret")
	refreshSecret    = []byte("folio-dev-refresh-secret")
	accessExpiresIn  = 15 * time.Minute
	refreshExpiresIn = 7 * 24 * time.Hour
)

// Configure 用配置覆盖令牌密钥与有效期
func Configure(cfg config.JWTConfig) {
	if cfg.Secret != "" {
		accessSecret = []byte(cfg.Secret)
	}
	if cfg.RefreshSecret != "" {
		refreshSecret = []byte(cfg.RefreshSecret)
	}
	if cfg.ExpiresIn > 0 {
		accessExpiresIn = cfg.ExpiresIn
	}
	if cfg.RefreshExpiresIn > 0 {
		refreshExpiresIn = cfg.RefreshExpiresIn
	}
}

// UserClaims 定义了我们 Token 中需要包含的业务信息
type UserClaims struct {
	UserID uint64 `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}
