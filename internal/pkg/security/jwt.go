package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "folio"

// GenerateAccessToken 生成短期访问令牌
func GenerateAccessToken(userID uint64, email, role string) (string, error) {
	return generateToken(userID, email, role, accessSecret, accessExpiresIn)
}

// GenerateRefreshToken 生成长期刷新令牌，仅用于换取新的访问令牌
func GenerateRefreshToken(userID uint64, email, role string) (string, error) {
	return generateToken(userID, email, role, refreshSecret, refreshExpiresIn)
}

func generateToken(userID uint64, email, role string, secret []byte, expiresIn time.Duration) (string, error) {
	now := time.Now()
	claims := &UserClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("签名 Token 失败: %w", err)
	}

	return tokenString, nil
}

// ValidateAccessToken 验证访问令牌并解析出 Claims
func ValidateAccessToken(tokenString string) (*UserClaims, error) {
	return validateToken(tokenString, accessSecret)
}

// ValidateRefreshToken 验证刷新令牌并解析出 Claims
func ValidateRefreshToken(tokenString string) (*UserClaims, error) {
	return validateToken(tokenString, refreshSecret)
}

func validateToken(tokenString string, secret []byte) (*UserClaims, error) {
	claims := &UserClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("非预期的签名方法: %v", token.Header["alg"])
		}
		return secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("token 解析失败: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("token 无效或已过期")
	}

	return claims, nil
}
