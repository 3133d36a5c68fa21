package dto

// CreateTagDTO 新建标签请求，slug 缺省时由 name 生成
type CreateTagDTO struct {
	Name string `json:"name" binding:"required,max=50"`
	Slug string `json:"slug" binding:"omitempty,max=50"`
}

// TagListItemDTO 标签及其帖子计数
type TagListItemDTO struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	PostCount int64  `json:"postCount"`
}
