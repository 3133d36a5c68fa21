package consts

const (
	// HotPostsKey 热门帖子缓存键，由定时任务刷新
	HotPostsKey = "folio:posts:hot"
)
