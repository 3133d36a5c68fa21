package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/parteecat/folio/internal/api/dto"
	"github.com/parteecat/folio/internal/pkg/response"
	"github.com/parteecat/folio/internal/service"
)

type TagHandler struct {
	tagSvc service.TagService
}

func NewTagHandler(tagSvc service.TagService) *TagHandler {
	return &TagHandler{tagSvc: tagSvc}
}

func (s *TagHandler) List(c *gin.Context) {
	result, err := s.tagSvc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *TagHandler) Create(c *gin.Context) {
	var req dto.CreateTagDTO
	err := c.ShouldBind(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	result, err := s.tagSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

func (s *TagHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrTagNotFound)
		return
	}
	if err = s.tagSvc.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
