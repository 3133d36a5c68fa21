package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/parteecat/folio/internal/api/dto"
	"github.com/parteecat/folio/internal/pkg/response"
	"github.com/parteecat/folio/internal/service"
)

type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

func (s *AuthHandler) Login(c *gin.Context) {
	var loginDTO dto.LoginDTO
	err := c.ShouldBind(&loginDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	result, err := s.authSvc.Login(c.Request.Context(), loginDTO.Email, loginDTO.Password)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Refresh 刷新令一律从 Authorization 头取，不入请求体
func (s *AuthHandler) Refresh(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		response.Error(c, service.ErrInvalidRefresh)
		return
	}
	refreshToken := strings.TrimPrefix(authHeader, "Bearer ")

	result, err := s.authSvc.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
