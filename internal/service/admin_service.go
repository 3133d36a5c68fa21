package service

import (
	"context"
	"errors"
	log "log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/parteecat/folio/internal/api/dto"
	"github.com/parteecat/folio/internal/model"
	"github.com/parteecat/folio/internal/pkg/consts"
	"github.com/parteecat/folio/internal/pkg/markdown"
	"github.com/parteecat/folio/internal/pkg/redis"
	"github.com/parteecat/folio/internal/pkg/util"
	"github.com/parteecat/folio/internal/repository"
)

type AdminService interface {
	ListPosts(ctx context.Context, postType string) ([]*dto.PostDetailDTO, error)
	CreatePost(ctx context.Context, authorID uint64, req *dto.CreatePostDTO) (*dto.PostDetailDTO, error)
	UpdatePost(ctx context.Context, id uint64, req *dto.UpdatePostDTO) (*dto.PostDetailDTO, error)
	HidePost(ctx context.Context, id uint64, hidden bool) error
	DeletePost(ctx context.Context, id uint64) error
	Stats(ctx context.Context) (*dto.StatsDTO, error)
}

type adminServiceImpl struct {
	postRepo repository.PostRepo
	tagRepo  repository.TagRepo
}

func NewAdminService(postRepo repository.PostRepo, tagRepo repository.TagRepo) AdminService {
	return &adminServiceImpl{
		postRepo: postRepo,
		tagRepo:  tagRepo,
	}
}

// ListPosts 管理端列表：含草稿与隐藏帖，创建时间降序
func (s *adminServiceImpl) ListPosts(ctx context.Context, postType string) ([]*dto.PostDetailDTO, error) {
	posts, err := s.postRepo.ListAll(ctx, postType)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.PostDetailDTO, 0, len(posts))
	for _, p := range posts {
		detail, err := toDetail(p)
		if err != nil {
			return nil, err
		}
		result = append(result, detail)
	}
	return result, nil
}

func (s *adminServiceImpl) CreatePost(ctx context.Context, authorID uint64, req *dto.CreatePostDTO) (*dto.PostDetailDTO, error) {
	if !util.IsValidSlug(req.Slug) {
		return nil, ErrSlugInvalid
	}

	// 先查重再写入；slug 列上的唯一索引兜底并发穿透
	exists, err := s.postRepo.SlugExists(ctx, req.Slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrSlugExists
	}

	contentHTML := req.ContentHTML
	if contentHTML == "" {
		contentHTML, err = markdown.Render(req.ContentMD)
		if err != nil {
			return nil, err
		}
	}

	tags, err := s.tagRepo.GetByIDs(ctx, req.TagIDs)
	if err != nil {
		return nil, err
	}

	post := &model.Post{
		Type:        req.Type,
		Slug:        req.Slug,
		Title:       req.Title,
		ContentMD:   req.ContentMD,
		ContentHTML: contentHTML,
		Excerpt:     req.Excerpt,
		CoverImage:  req.CoverImage,
		Images:      req.Images,
		Hidden:      false,
		AuthorID:    authorID,
		Tags:        tags,
		Attachments: toAttachmentModels(req.Attachments),
	}
	if req.Published {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err = s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	s.invalidateHotCache(ctx)

	created, err := s.postRepo.GetByID(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	return toDetail(created)
}

// UpdatePost 部分更新：nil 字段保持原值，tagIds 整体替换关联
func (s *adminServiceImpl) UpdatePost(ctx context.Context, id uint64, req *dto.UpdatePostDTO) (*dto.PostDetailDTO, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	if req.Slug != nil && *req.Slug != post.Slug {
		if !util.IsValidSlug(*req.Slug) {
			return nil, ErrSlugInvalid
		}
		exists, err := s.postRepo.SlugExists(ctx, *req.Slug)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrSlugExists
		}
		post.Slug = *req.Slug
	}

	if req.Type != nil {
		post.Type = *req.Type
	}
	if req.Title != nil {
		post.Title = req.Title
	}
	if req.ContentMD != nil {
		post.ContentMD = *req.ContentMD
		if req.ContentHTML == nil {
			rendered, err := markdown.Render(*req.ContentMD)
			if err != nil {
				return nil, err
			}
			post.ContentHTML = rendered
		}
	}
	if req.ContentHTML != nil {
		post.ContentHTML = *req.ContentHTML
	}
	if req.Excerpt != nil {
		post.Excerpt = *req.Excerpt
	}
	if req.CoverImage != nil {
		post.CoverImage = req.CoverImage
	}
	if req.Images != nil {
		post.Images = *req.Images
	}

	// 发布状态翻转：false→true 落发布时间，true→false 清空
	if req.Published != nil {
		if *req.Published && !post.Published() {
			now := time.Now()
			post.PublishedAt = &now
		} else if !*req.Published && post.Published() {
			post.PublishedAt = nil
		}
	}

	var tags []model.Tag
	replaceTags := req.TagIDs != nil
	if replaceTags {
		tags, err = s.tagRepo.GetByIDs(ctx, *req.TagIDs)
		if err != nil {
			return nil, err
		}
	}

	var attachments []*model.ShuoAttachment
	replaceAttachments := req.Attachments != nil
	if replaceAttachments {
		attachments = toAttachmentModels(*req.Attachments)
	}

	if err = s.postRepo.Update(ctx, post, tags, replaceTags, attachments, replaceAttachments); err != nil {
		return nil, err
	}
	s.invalidateHotCache(ctx)

	updated, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDetail(updated)
}

func (s *adminServiceImpl) HidePost(ctx context.Context, id uint64, hidden bool) error {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}

	post.Hidden = hidden
	if err = s.postRepo.Update(ctx, post, nil, false, nil, false); err != nil {
		return err
	}
	s.invalidateHotCache(ctx)
	return nil
}

func (s *adminServiceImpl) DeletePost(ctx context.Context, id uint64) error {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if err = s.postRepo.Delete(ctx, post); err != nil {
		return err
	}
	s.invalidateHotCache(ctx)
	return nil
}

// 写操作后丢弃热门缓存，下个周期由定时任务重建
func (s *adminServiceImpl) invalidateHotCache(ctx context.Context) {
	if err := redis.DeleteKey(ctx, consts.HotPostsKey); err != nil && !errors.Is(err, redis.ErrNotInitialized) {
		log.WarnContext(ctx, "hot posts cache invalidation failed", "err", err)
	}
}

// Stats 并行执行各聚合查询后汇总
func (s *adminServiceImpl) Stats(ctx context.Context) (*dto.StatsDTO, error) {
	stats := &dto.StatsDTO{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		stats.TotalPosts, err = s.postRepo.Count(gctx, false)
		return err
	})
	g.Go(func() error {
		var err error
		stats.PublishedPosts, err = s.postRepo.Count(gctx, true)
		return err
	})
	g.Go(func() error {
		var err error
		stats.TotalTags, err = s.tagRepo.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.TotalLikes, err = s.postRepo.SumLikes(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.TotalViews, err = s.postRepo.SumViews(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats.DraftPosts = stats.TotalPosts - stats.PublishedPosts
	return stats, nil
}

func toAttachmentModels(attachments []*dto.AttachmentDTO) []*model.ShuoAttachment {
	result := make([]*model.ShuoAttachment, 0, len(attachments))
	for i, a := range attachments {
		result = append(result, &model.ShuoAttachment{
			Type:      a.Type,
			URL:       a.URL,
			MimeType:  a.MimeType,
			Size:      a.Size,
			Width:     a.Width,
			Height:    a.Height,
			SortOrder: int8(i),
		})
	}
	return result
}
