package response

import (
	"errors"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"github.com/parteecat/folio/internal/api/dto"
	"github.com/parteecat/folio/internal/service"
)

// Success 成功返回封装
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 创建成功返回封装
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Fail 失败返回封装
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, dto.ErrorResponse{Error: message})
}

// Error 处理错误：校验错误与已注册的业务错误按映射返回，
// 其余统一 500，细节只进日志
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, http.StatusBadRequest, "Invalid field: "+ve[0].Field())
		return
	}

	var unmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &unmarshalTypeError) {
		Fail(c, http.StatusBadRequest, "Malformed JSON body")
		return
	}

	for target, status := range service.ErrorMap {
		if errors.Is(err, target) {
			Fail(c, status, err.Error())
			return
		}
	}

	log.ErrorContext(c.Request.Context(), "unhandled error", "err", err)
	Fail(c, http.StatusInternalServerError, service.UnExpectedError.Error())
}
