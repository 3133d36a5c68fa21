package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/parteecat/folio/internal/pkg/response"
	"github.com/parteecat/folio/internal/service"
)

// CheckRoles 检查当前用户是否拥有任一指定角色
func CheckRoles(requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")

		hasPermission := false
		for _, required := range requiredRoles {
			if required == role {
				hasPermission = true
				break
			}
		}

		if !hasPermission {
			response.Fail(c, http.StatusForbidden, service.ErrForbidden.Error())
			c.Abort()
			return
		}

		c.Next()
	}
}
