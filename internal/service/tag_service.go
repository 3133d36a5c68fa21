package service

import (
	"context"

	"github.com/parteecat/folio/internal/api/dto"
	"github.com/parteecat/folio/internal/model"
	"github.com/parteecat/folio/internal/pkg/util"
	"github.com/parteecat/folio/internal/repository"
)

type TagService interface {
	List(ctx context.Context) ([]*dto.TagListItemDTO, error)
	Create(ctx context.Context, req *dto.CreateTagDTO) (*dto.TagDTO, error)
	Delete(ctx context.Context, id uint64) error
}

type tagServiceImpl struct {
	tagRepo repository.TagRepo
}

func NewTagService(tagRepo repository.TagRepo) TagService {
	return &tagServiceImpl{tagRepo: tagRepo}
}

func (s *tagServiceImpl) List(ctx context.Context) ([]*dto.TagListItemDTO, error) {
	tags, err := s.tagRepo.ListWithCounts(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.TagListItemDTO, 0, len(tags))
	for _, t := range tags {
		result = append(result, &dto.TagListItemDTO{
			ID:        t.ID,
			Name:      t.Name,
			Slug:      t.Slug,
			PostCount: t.PostCount,
		})
	}
	return result, nil
}

// Create slug 留空时按名称生成
func (s *tagServiceImpl) Create(ctx context.Context, req *dto.CreateTagDTO) (*dto.TagDTO, error) {
	tagSlug := req.Slug
	if tagSlug == "" {
		tagSlug = util.MakeSlug(req.Name)
	}
	if !util.IsValidSlug(tagSlug) {
		return nil, ErrSlugInvalid
	}

	exists, err := s.tagRepo.SlugExists(ctx, tagSlug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrSlugExists
	}

	tag := &model.Tag{
		Name: req.Name,
		Slug: tagSlug,
	}
	if err = s.tagRepo.Create(ctx, tag); err != nil {
		return nil, err
	}

	return &dto.TagDTO{
		ID:   tag.ID,
		Name: tag.Name,
		Slug: tag.Slug,
	}, nil
}

// Delete 连带清理 post_tags 关联
func (s *tagServiceImpl) Delete(ctx context.Context, id uint64) error {
	tag, err := s.tagRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if tag == nil {
		return ErrTagNotFound
	}
	return s.tagRepo.Delete(ctx, tag)
}
