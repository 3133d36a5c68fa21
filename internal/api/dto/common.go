package dto

// ErrorResponse 错误响应体
type ErrorResponse struct {
	Error string `json:"error"`
}

// PagedPostsDTO 游标分页响应
type PagedPostsDTO struct {
	Data       []*PostListItemDTO `json:"data"`
	NextCursor *string            `json:"nextCursor,omitempty"`
	HasMore    bool               `json:"hasMore"`
}
