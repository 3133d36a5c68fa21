package service

import (
	"errors"
	"net/http"
)

// 对外错误消息与状态码在此集中定义，handler 统一经 response.Error 映射
var (
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrInvalidToken       = errors.New("Invalid or expired token")
	ErrInvalidRefresh     = errors.New("Invalid refresh token")
	ErrForbidden          = errors.New("Forbidden")
	ErrPostNotFound       = errors.New("Post not found")
	ErrTagNotFound        = errors.New("Tag not found")
	ErrSlugExists         = errors.New("Slug already exists")
	ErrSlugInvalid        = errors.New("Slug must contain only lowercase letters, numbers and hyphens")
	ErrFileMissing        = errors.New("No file provided")
	ErrFileNotSupported   = errors.New("File type not allowed")
	ErrFileTooLarge       = errors.New("File too large")
	ErrParamInvalid       = errors.New("Invalid request")
	UnExpectedError       = errors.New("Internal server error")
)

var ErrorMap = map[error]int{
	ErrInvalidCredentials: http.StatusUnauthorized,
	ErrInvalidToken:       http.StatusUnauthorized,
	ErrInvalidRefresh:     http.StatusUnauthorized,
	ErrForbidden:          http.StatusForbidden,
	ErrPostNotFound:       http.StatusNotFound,
	ErrTagNotFound:        http.StatusNotFound,
	ErrSlugExists:         http.StatusConflict,
	ErrSlugInvalid:        http.StatusBadRequest,
	ErrFileMissing:        http.StatusBadRequest,
	ErrFileNotSupported:   http.StatusBadRequest,
	ErrFileTooLarge:       http.StatusBadRequest,
	ErrParamInvalid:       http.StatusBadRequest,
	UnExpectedError:       http.StatusInternalServerError,
}
