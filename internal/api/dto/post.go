package dto

import "time"

// TagDTO 标签
type TagDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// AuthorDTO 作者
type AuthorDTO struct {
	ID     uint64  `json:"id"`
	Name   *string `json:"name"`
	Avatar *string `json:"avatar"`
}

// AttachmentDTO 说说附件
type AttachmentDTO struct {
	ID       uint64 `json:"id"`
	Type     string `json:"type" binding:"required,oneof=IMAGE VIDEO GIF"`
	URL      string `json:"url" binding:"required,max=512"`
	MimeType string `json:"mimeType" binding:"required,max=64"`
	Size     int64  `json:"size"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// PostListItemDTO Feed 流单条
type PostListItemDTO struct {
	ID          uint64           `json:"id"`
	Type        string           `json:"type"`
	Slug        string           `json:"slug"`
	Title       *string          `json:"title"`
	Excerpt     string           `json:"excerpt"`
	CoverImage  *string          `json:"coverImage"`
	Images      []string         `json:"images"`
	PublishedAt *time.Time       `json:"publishedAt"`
	LikeCount   int              `json:"likeCount"`
	Hidden      bool             `json:"hidden"`
	Tags        []*TagDTO        `json:"tags"`
	Author      AuthorDTO        `json:"author"`
	Attachments []*AttachmentDTO `json:"shuoAttachments"`
}

// PostDetailDTO 帖子详情
type PostDetailDTO struct {
	PostListItemDTO
	ContentMD   string    `json:"contentMD"`
	ContentHTML string    `json:"contentHTML"`
	ViewCount   int       `json:"viewCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FeedQueryDTO 公开列表查询参数
type FeedQueryDTO struct {
	Cursor string `form:"cursor"`
	Type   string `form:"type" binding:"omitempty,oneof=SHORT ARTICLE"`
	Tag    string `form:"tag"`
	Limit  int    `form:"limit,default=10" binding:"omitempty,min=1"`
}

// LikeResultDTO 点赞响应
type LikeResultDTO struct {
	LikeCount int  `json:"likeCount"`
	Liked     bool `json:"liked"`
}

// CreatePostDTO 新建帖子请求
type CreatePostDTO struct {
	Type        string           `json:"type" binding:"required,oneof=SHORT ARTICLE"`
	Slug        string           `json:"slug" binding:"required,max=255"`
	Title       *string          `json:"title"`
	ContentMD   string           `json:"contentMD" binding:"required"`
	ContentHTML string           `json:"contentHTML"`
	Excerpt     string           `json:"excerpt" binding:"omitempty,max=512"`
	CoverImage  *string          `json:"coverImage"`
	Images      []string         `json:"images"`
	TagIDs      []uint64         `json:"tagIds"`
	Attachments []*AttachmentDTO `json:"shuoAttachments" binding:"omitempty,max=9,dive"`
	Published   bool             `json:"published"`
}

// UpdatePostDTO 部分更新请求，nil 字段保持不变
type UpdatePostDTO struct {
	Type        *string           `json:"type" binding:"omitempty,oneof=SHORT ARTICLE"`
	Slug        *string           `json:"slug" binding:"omitempty,max=255"`
	Title       *string           `json:"title"`
	ContentMD   *string           `json:"contentMD"`
	ContentHTML *string           `json:"contentHTML"`
	Excerpt     *string           `json:"excerpt" binding:"omitempty,max=512"`
	CoverImage  *string           `json:"coverImage"`
	Images      *[]string         `json:"images"`
	TagIDs      *[]uint64         `json:"tagIds"`
	Attachments *[]*AttachmentDTO `json:"shuoAttachments" binding:"omitempty,max=9,dive"`
	Published   *bool             `json:"published"`
}

// HidePostDTO 隐藏开关请求
type HidePostDTO struct {
	Hidden *bool `json:"hidden" binding:"required"`
}

// AdminListQueryDTO 管理端帖子列表查询参数
type AdminListQueryDTO struct {
	Type string `form:"type" binding:"omitempty,oneof=SHORT ARTICLE"`
}

// StatsDTO 聚合统计
type StatsDTO struct {
	TotalPosts     int64 `json:"totalPosts"`
	PublishedPosts int64 `json:"publishedPosts"`
	DraftPosts     int64 `json:"draftPosts"`
	TotalTags      int64 `json:"totalTags"`
	TotalLikes     int64 `json:"totalLikes"`
	TotalViews     int64 `json:"totalViews"`
}
