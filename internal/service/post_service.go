package service

import (
	"context"
	"fmt"
	log "log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"

	"github.com/parteecat/folio/internal/api/dto"
	"github.com/parteecat/folio/internal/model"
	"github.com/parteecat/folio/internal/pkg/consts"
	"github.com/parteecat/folio/internal/pkg/redis"
	"github.com/parteecat/folio/internal/pkg/util"
	"github.com/parteecat/folio/internal/repository"
)

type PostService interface {
	Feed(ctx context.Context, cursor, postType, tagSlug string, limit int) (*dto.PagedPostsDTO, error)
	GetDetail(ctx context.Context, slugOrID string) (*dto.PostDetailDTO, error)
	Like(ctx context.Context, idStr string) (*dto.LikeResultDTO, error)
	Search(ctx context.Context, keyword string) (*dto.PagedPostsDTO, error)
	HotPosts(ctx context.Context) ([]*dto.PostListItemDTO, error)
	RefreshHotCache(ctx context.Context) error
}

type postServiceImpl struct {
	postRepo repository.PostRepo

	hotLimit int
	hotTTL   time.Duration
}

func NewPostService(postRepo repository.PostRepo, hotLimit int, hotTTL time.Duration) PostService {
	if hotLimit <= 0 {
		hotLimit = 10
	}
	if hotTTL <= 0 {
		hotTTL = 30 * time.Minute
	}
	return &postServiceImpl{
		postRepo: postRepo,
		hotLimit: hotLimit,
		hotTTL:   hotTTL,
	}
}

// Feed 公开列表：仅已发布，publishedAt 降序，游标分页
func (s *postServiceImpl) Feed(ctx context.Context, cursor, postType, tagSlug string, limit int) (*dto.PagedPostsDTO, error) {
	if limit <= 0 {
		limit = consts.FeedDefaultLimit
	}
	if limit > consts.FeedMaxLimit {
		limit = consts.FeedMaxLimit
	}

	after, err := util.DecodeCursor(cursor)
	if err != nil {
		return nil, fmt.Errorf("%w: bad cursor", ErrParamInvalid)
	}

	posts, err := s.postRepo.ListPublished(ctx, after, postType, tagSlug, limit)
	if err != nil {
		return nil, err
	}

	hasMore := len(posts) > limit
	if hasMore {
		posts = posts[:limit]
	}

	items, err := toListItems(posts)
	if err != nil {
		return nil, err
	}

	result := &dto.PagedPostsDTO{
		Data:    items,
		HasMore: hasMore,
	}
	if hasMore && len(posts) > 0 {
		last := posts[len(posts)-1]
		if last.PublishedAt != nil {
			next := util.EncodeCursor(*last.PublishedAt)
			result.NextCursor = &next
		}
	}
	return result, nil
}

// GetDetail 按标识符查询详情：纯数字按主键，其余按 slug。
// 命中后异步自增浏览量，失败只记日志不影响响应
func (s *postServiceImpl) GetDetail(ctx context.Context, slugOrID string) (*dto.PostDetailDTO, error) {
	var post *model.Post
	var err error

	if util.IsNumericID(slugOrID) {
		id, parseErr := strconv.ParseUint(slugOrID, 10, 64)
		if parseErr != nil {
			return nil, ErrPostNotFound
		}
		post, err = s.postRepo.GetByID(ctx, id)
	} else {
		post, err = s.postRepo.GetBySlug(ctx, slugOrID)
	}
	if err != nil {
		return nil, err
	}
	if post == nil || !post.Published() {
		return nil, ErrPostNotFound
	}

	go func(postID uint64) {
		viewCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if incErr := s.postRepo.IncrementViewCount(viewCtx, postID); incErr != nil {
			log.Debug("view count increment failed", "post_id", postID, "err", incErr)
		}
	}(post.ID)

	return toDetail(post)
}

func (s *postServiceImpl) Like(ctx context.Context, idStr string) (*dto.LikeResultDTO, error) {
	if !util.IsNumericID(idStr) {
		return nil, ErrPostNotFound
	}
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		return nil, ErrPostNotFound
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil || !post.Published() {
		return nil, ErrPostNotFound
	}

	likeCount, err := s.postRepo.IncrementLikeCount(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dto.LikeResultDTO{LikeCount: likeCount, Liked: true}, nil
}

// Search 大小写不敏感的子串匹配，关键词过短直接返回空集
func (s *postServiceImpl) Search(ctx context.Context, keyword string) (*dto.PagedPostsDTO, error) {
	keyword = strings.TrimSpace(keyword)
	if len([]rune(keyword)) < consts.SearchMinQueryLen {
		return &dto.PagedPostsDTO{Data: []*dto.PostListItemDTO{}, HasMore: false}, nil
	}

	posts, err := s.postRepo.Search(ctx, keyword, consts.SearchMaxResults)
	if err != nil {
		return nil, err
	}

	items, err := toListItems(posts)
	if err != nil {
		return nil, err
	}
	return &dto.PagedPostsDTO{Data: items, HasMore: false}, nil
}

// HotPosts 读取缓存中的热门帖子，缓存不可用或未命中时回源数据库
func (s *postServiceImpl) HotPosts(ctx context.Context) ([]*dto.PostListItemDTO, error) {
	if cached, err := redis.GetValue(ctx, consts.HotPostsKey); err == nil && cached != "" {
		var items []*dto.PostListItemDTO
		if err = json.Unmarshal([]byte(cached), &items); err == nil {
			return items, nil
		}
		log.WarnContext(ctx, "hot posts cache decode failed", "err", err)
	}

	posts, err := s.postRepo.TopViewed(ctx, s.hotLimit)
	if err != nil {
		return nil, err
	}
	return toListItems(posts)
}

// RefreshHotCache 由定时任务调用，重建热门帖子缓存
func (s *postServiceImpl) RefreshHotCache(ctx context.Context) error {
	posts, err := s.postRepo.TopViewed(ctx, s.hotLimit)
	if err != nil {
		return err
	}

	items, err := toListItems(posts)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return redis.SetWithExpiration(ctx, consts.HotPostsKey, string(payload), s.hotTTL)
}

func toListItems(posts []*model.Post) ([]*dto.PostListItemDTO, error) {
	items := make([]*dto.PostListItemDTO, 0, len(posts))
	for _, p := range posts {
		item, err := toListItem(p)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func toListItem(p *model.Post) (*dto.PostListItemDTO, error) {
	item := &dto.PostListItemDTO{}
	if err := copier.Copy(item, p); err != nil {
		return nil, err
	}
	if item.Images == nil {
		item.Images = []string{}
	}
	if item.Tags == nil {
		item.Tags = []*dto.TagDTO{}
	}
	if item.Attachments == nil {
		item.Attachments = []*dto.AttachmentDTO{}
	}
	return item, nil
}

func toDetail(p *model.Post) (*dto.PostDetailDTO, error) {
	item, err := toListItem(p)
	if err != nil {
		return nil, err
	}
	return &dto.PostDetailDTO{
		PostListItemDTO: *item,
		ContentMD:       p.ContentMD,
		ContentHTML:     p.ContentHTML,
		ViewCount:       p.ViewCount,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}, nil
}
