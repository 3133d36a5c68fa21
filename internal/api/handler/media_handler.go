package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/parteecat/folio/internal/pkg/response"
	"github.com/parteecat/folio/internal/service"
)

type MediaHandler struct {
	mediaSvc service.MediaService
}

func NewMediaHandler(mediaSvc service.MediaService) *MediaHandler {
	return &MediaHandler{mediaSvc: mediaSvc}
}

func (s *MediaHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrFileMissing)
		return
	}
	result, err := s.mediaSvc.Upload(c.Request.Context(), file)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

func (s *MediaHandler) UploadBatch(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, service.ErrFileMissing)
		return
	}
	result, err := s.mediaSvc.UploadBatch(c.Request.Context(), form.File["files"])
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
