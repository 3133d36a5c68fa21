package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/parteecat/folio/internal/api/dto"
	"github.com/parteecat/folio/internal/pkg/response"
	"github.com/parteecat/folio/internal/service"
)

type AdminHandler struct {
	adminSvc service.AdminService
}

func NewAdminHandler(adminSvc service.AdminService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc}
}

func (s *AdminHandler) ListPosts(c *gin.Context) {
	var query dto.AdminListQueryDTO
	err := c.ShouldBindQuery(&query)
	if err != nil {
		response.Error(c, err)
		return
	}
	result, err := s.adminSvc.ListPosts(c.Request.Context(), query.Type)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *AdminHandler) CreatePost(c *gin.Context) {
	var req dto.CreatePostDTO
	err := c.ShouldBind(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	authorID := c.GetUint64("user_id")
	result, err := s.adminSvc.CreatePost(c.Request.Context(), authorID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

func (s *AdminHandler) UpdatePost(c *gin.Context) {
	id, err := parsePostID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.UpdatePostDTO
	if err = c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	result, err := s.adminSvc.UpdatePost(c.Request.Context(), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *AdminHandler) HidePost(c *gin.Context) {
	id, err := parsePostID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.HidePostDTO
	if err = c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err = s.adminSvc.HidePost(c.Request.Context(), id, *req.Hidden); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"hidden": *req.Hidden})
}

func (s *AdminHandler) DeletePost(c *gin.Context) {
	id, err := parsePostID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = s.adminSvc.DeletePost(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

func (s *AdminHandler) Stats(c *gin.Context) {
	result, err := s.adminSvc.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// 非数字 ID 按不存在处理
func parsePostID(c *gin.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, service.ErrPostNotFound
	}
	return id, nil
}
