package api

import "github.com/parteecat/folio/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	AuthHandler  *handler.AuthHandler
	PostHandler  *handler.PostHandler
	AdminHandler *handler.AdminHandler
	TagHandler   *handler.TagHandler
	MediaHandler *handler.MediaHandler
}
