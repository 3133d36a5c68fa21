package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/parteecat/folio/internal/model"
)

type PostRepo interface {
	Create(ctx context.Context, post *model.Post) error
	Update(ctx context.Context, post *model.Post, tags []model.Tag, replaceTags bool, attachments []*model.ShuoAttachment, replaceAttachments bool) error
	Delete(ctx context.Context, post *model.Post) error
	GetByID(ctx context.Context, id uint64) (*model.Post, error)
	GetBySlug(ctx context.Context, slug string) (*model.Post, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	ListPublished(ctx context.Context, cursor *time.Time, postType, tagSlug string, limit int) ([]*model.Post, error)
	ListAll(ctx context.Context, postType string) ([]*model.Post, error)
	Search(ctx context.Context, keyword string, limit int) ([]*model.Post, error)
	TopViewed(ctx context.Context, limit int) ([]*model.Post, error)
	IncrementLikeCount(ctx context.Context, id uint64) (int, error)
	IncrementViewCount(ctx context.Context, id uint64) error
	Count(ctx context.Context, publishedOnly bool) (int64, error)
	SumLikes(ctx context.Context) (int64, error)
	SumViews(ctx context.Context) (int64, error)
}

type postRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &postRepoImpl{db: db}
}

// withAssociations 预加载详情所需的关联
func withAssociations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Tags").
		Preload("Author").
		Preload("Attachments", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		})
}

// Create 同一事务内写入帖子、附件与标签关联。
// 标签必须是已存在的记录，Omit 避免关联写回 tags 表
func (s *postRepoImpl) Create(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Tags.*", "Author").Create(post).Error
	})
}

func (s *postRepoImpl) Update(ctx context.Context, post *model.Post, tags []model.Tag, replaceTags bool, attachments []*model.ShuoAttachment, replaceAttachments bool) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags", "Attachments", "Author").Save(post).Error; err != nil {
			return err
		}
		if replaceTags {
			// 提供 tagIds 时整体替换关联，而非合并
			if err := tx.Model(post).Association("Tags").Replace(tags); err != nil {
				return err
			}
		}
		if replaceAttachments {
			if err := tx.Delete(&model.ShuoAttachment{}, "post_id = ?", post.ID).Error; err != nil {
				return err
			}
			if len(attachments) > 0 {
				for i, a := range attachments {
					a.PostID = post.ID
					a.SortOrder = int8(i)
				}
				if err := tx.Create(attachments).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// Delete 硬删除，连同标签关联与附件
func (s *postRepoImpl) Delete(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(post).Association("Tags").Clear(); err != nil {
			return err
		}
		if err := tx.Delete(&model.ShuoAttachment{}, "post_id = ?", post.ID).Error; err != nil {
			return err
		}
		return tx.Delete(post).Error
	})
}

func (s *postRepoImpl) GetByID(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := withAssociations(s.db.WithContext(ctx)).First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (s *postRepoImpl) GetBySlug(ctx context.Context, slug string) (*model.Post, error) {
	var post model.Post
	err := withAssociations(s.db.WithContext(ctx)).Where("slug = ?", slug).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (s *postRepoImpl) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Post{}).Where("slug = ?", slug).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListPublished 游标分页：published_at 降序，取 limit+1 条由上层判断 hasMore
func (s *postRepoImpl) ListPublished(ctx context.Context, cursor *time.Time, postType, tagSlug string, limit int) ([]*model.Post, error) {
	q := s.db.WithContext(ctx).Model(&model.Post{}).Where("published_at IS NOT NULL")

	if postType != "" {
		q = q.Where("posts.type = ?", postType)
	}
	if tagSlug != "" {
		q = q.Joins("JOIN post_tags pt ON pt.post_id = posts.id").
			Joins("JOIN tags t ON t.id = pt.tag_id").
			Where("t.slug = ?", tagSlug)
	}
	if cursor != nil {
		q = q.Where("published_at < ?", *cursor)
	}

	var posts []*model.Post
	err := withAssociations(q).
		Order("published_at DESC").
		Limit(limit + 1).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *postRepoImpl) ListAll(ctx context.Context, postType string) ([]*model.Post, error) {
	q := s.db.WithContext(ctx).Model(&model.Post{})
	if postType != "" {
		q = q.Where("type = ?", postType)
	}

	var posts []*model.Post
	err := withAssociations(q).Order("created_at DESC").Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *postRepoImpl) Search(ctx context.Context, keyword string, limit int) ([]*model.Post, error) {
	pattern := "%" + strings.ToLower(keyword) + "%"

	var posts []*model.Post
	err := withAssociations(s.db.WithContext(ctx).Model(&model.Post{})).
		Where("published_at IS NOT NULL").
		Where("LOWER(title) LIKE ? OR LOWER(excerpt) LIKE ? OR LOWER(content_md) LIKE ?", pattern, pattern, pattern).
		Order("published_at DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *postRepoImpl) TopViewed(ctx context.Context, limit int) ([]*model.Post, error) {
	var posts []*model.Post
	err := withAssociations(s.db.WithContext(ctx).Model(&model.Post{})).
		Where("published_at IS NOT NULL").
		Order("view_count DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// IncrementLikeCount 数据库层原子自增，返回最新计数
func (s *postRepoImpl) IncrementLikeCount(ctx context.Context, id uint64) (int, error) {
	var likeCount int
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Post{}).Where("id = ?", id).
			UpdateColumn("like_count", gorm.Expr("like_count + ?", 1)).Error; err != nil {
			return err
		}
		return tx.Model(&model.Post{}).Where("id = ?", id).
			Select("like_count").Scan(&likeCount).Error
	})
	if err != nil {
		return 0, err
	}
	return likeCount, nil
}

func (s *postRepoImpl) IncrementViewCount(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
}

func (s *postRepoImpl) Count(ctx context.Context, publishedOnly bool) (int64, error) {
	q := s.db.WithContext(ctx).Model(&model.Post{})
	if publishedOnly {
		q = q.Where("published_at IS NOT NULL")
	}
	var count int64
	err := q.Count(&count).Error
	return count, err
}

func (s *postRepoImpl) SumLikes(ctx context.Context) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&model.Post{}).
		Select("COALESCE(SUM(like_count), 0)").Scan(&total).Error
	return total, err
}

func (s *postRepoImpl) SumViews(ctx context.Context) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&model.Post{}).
		Select("COALESCE(SUM(view_count), 0)").Scan(&total).Error
	return total, err
}
