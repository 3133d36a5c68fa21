package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/parteecat/folio/internal/model"
)

// TagWithCount 标签及其帖子数
type TagWithCount struct {
	model.Tag
	PostCount int64
}

type TagRepo interface {
	Create(ctx context.Context, tag *model.Tag) error
	Delete(ctx context.Context, tag *model.Tag) error
	GetByID(ctx context.Context, id uint64) (*model.Tag, error)
	GetByIDs(ctx context.Context, ids []uint64) ([]model.Tag, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	ListWithCounts(ctx context.Context) ([]*TagWithCount, error)
	Count(ctx context.Context) (int64, error)
}

type tagRepoImpl struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepo {
	return &tagRepoImpl{db: db}
}

func (s *tagRepoImpl) Create(ctx context.Context, tag *model.Tag) error {
	return s.db.WithContext(ctx).Create(tag).Error
}

// Delete 仅解除与帖子的关联，不级联删除帖子
func (s *tagRepoImpl) Delete(ctx context.Context, tag *model.Tag) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM post_tags WHERE tag_id = ?", tag.ID).Error; err != nil {
			return err
		}
		return tx.Delete(tag).Error
	})
}

func (s *tagRepoImpl) GetByID(ctx context.Context, id uint64) (*model.Tag, error) {
	var tag model.Tag
	err := s.db.WithContext(ctx).First(&tag, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tag, nil
}

func (s *tagRepoImpl) GetByIDs(ctx context.Context, ids []uint64) ([]model.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tags []model.Tag
	err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

func (s *tagRepoImpl) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Tag{}).Where("slug = ?", slug).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *tagRepoImpl) ListWithCounts(ctx context.Context) ([]*TagWithCount, error) {
	var rows []*TagWithCount
	err := s.db.WithContext(ctx).Model(&model.Tag{}).
		Select("tags.*, COUNT(pt.post_id) AS post_count").
		Joins("LEFT JOIN post_tags pt ON pt.tag_id = tags.id").
		Group("tags.id").
		Order("tags.name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *tagRepoImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Tag{}).Count(&count).Error
	return count, err
}
