package consts

const (
	MimePrefixImage = "image"
)

const (
	// FeedMaxLimit 公开列表单页上限
	FeedMaxLimit = 20
	// FeedDefaultLimit 公开列表默认页大小
	FeedDefaultLimit = 10
	// SearchMaxResults 搜索结果上限
	SearchMaxResults = 20
	// SearchMinQueryLen 搜索关键词最小长度
	SearchMinQueryLen = 2
)
