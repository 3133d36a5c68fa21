package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/parteecat/folio/internal/api/dto"
	"github.com/parteecat/folio/internal/pkg/response"
	"github.com/parteecat/folio/internal/service"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{postSvc: postSvc}
}

// Feed 公开帖子流，游标分页
func (s *PostHandler) Feed(c *gin.Context) {
	var query dto.FeedQueryDTO
	err := c.ShouldBindQuery(&query)
	if err != nil {
		response.Error(c, err)
		return
	}
	result, err := s.postSvc.Feed(c.Request.Context(), query.Cursor, query.Type, query.Tag, query.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *PostHandler) GetDetail(c *gin.Context) {
	result, err := s.postSvc.GetDetail(c.Request.Context(), c.Param("slugOrId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *PostHandler) Like(c *gin.Context) {
	result, err := s.postSvc.Like(c.Request.Context(), c.Param("slugOrId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *PostHandler) Search(c *gin.Context) {
	result, err := s.postSvc.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *PostHandler) HotPosts(c *gin.Context) {
	result, err := s.postSvc.HotPosts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
