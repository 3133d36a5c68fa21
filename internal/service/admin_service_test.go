package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/parteecat/folio/internal/api/dto"
	"github.com/parteecat/folio/internal/model"
	"github.com/parteecat/folio/internal/repository"
)

func newAdminService(db *gorm.DB) AdminService {
	return NewAdminService(repository.NewPostRepository(db), repository.NewTagRepository(db))
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestCreatePost_RoundTrip(t *testing.T) {
	db := setupTestDB()
	admin := createTestAdmin(db)
	tag := createTestTag(db, "Go", "go")
	svc := newAdminService(db)

	created, err := svc.CreatePost(context.Background(), admin.ID, &dto.CreatePostDTO{
		Type:      model.PostTypeArticle,
		Slug:      "first-article",
		Title:     strPtr("First Article"),
		ContentMD: "# Hello\n\nworld",
		Excerpt:   "an excerpt",
		TagIDs:    []uint64{tag.ID},
		Published: true,
	})

	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "first-article", created.Slug)
	assert.NotNil(t, created.PublishedAt)
	// 未提供 HTML 时由 Markdown 渲染
	assert.Contains(t, created.ContentHTML, "<h1")
	require.Len(t, created.Tags, 1)
	assert.Equal(t, "go", created.Tags[0].Slug)
	assert.Equal(t, admin.ID, created.Author.ID)
}

func TestCreatePost_ShuoWithAttachments(t *testing.T) {
	db := setupTestDB()
	admin := createTestAdmin(db)
	svc := newAdminService(db)

	created, err := svc.CreatePost(context.Background(), admin.ID, &dto.CreatePostDTO{
		Type:      model.PostTypeShort,
		Slug:      "a-quick-note",
		ContentMD: "quick note",
		Attachments: []*dto.AttachmentDTO{
			{Type: model.AttachmentImage, URL: "/uploads/b.png", MimeType: "image/png", Width: 10, Height: 20},
			{Type: model.AttachmentImage, URL: "/uploads/a.png", MimeType: "image/png"},
		},
		Published: true,
	})

	require.NoError(t, err)
	require.Len(t, created.Attachments, 2)
	// 按提交顺序排序
	assert.Equal(t, "/uploads/b.png", created.Attachments[0].URL)
	assert.Equal(t, "/uploads/a.png", created.Attachments[1].URL)
}

func TestCreatePost_DuplicateSlug(t *testing.T) {
	db := setupTestDB()
	admin := createTestAdmin(db)
	createPublishedPost(db, admin.ID, "taken", time.Now())
	svc := newAdminService(db)

	_, err := svc.CreatePost(context.Background(), admin.ID, &dto.CreatePostDTO{
		Type:      model.PostTypeArticle,
		Slug:      "taken",
		ContentMD: "body",
	})

	assert.ErrorIs(t, err, ErrSlugExists)
}

func TestCreatePost_InvalidSlug(t *testing.T) {
	db := setupTestDB()
	admin := createTestAdmin(db)
	svc := newAdminService(db)

	for _, slug := range []string{"Has Spaces", "UPPER", "emoji-✨"} {
		_, err := svc.CreatePost(context.Background(), admin.ID, &dto.CreatePostDTO{
			Type:      model.PostTypeArticle,
			Slug:      slug,
			ContentMD: "body",
		})
		assert.ErrorIs(t, err, ErrSlugInvalid, "slug %q", slug)
	}
}

func TestUpdatePost_PublishToggle(t *testing.T) {
	db := setupTestDB()
	admin := createTestAdmin(db)
	draft := createDraftPost(db, admin.ID, "toggle-me")
	svc := newAdminService(db)

	published, err := svc.UpdatePost(context.Background(), draft.ID, &dto.UpdatePostDTO{
		Published: boolPtr(true),
	})
	require.NoError(t, err)
	require.NotNil(t, published.PublishedAt)
	firstPublishedAt := *published.PublishedAt

	// 再次发布不刷新时间
	again, err := svc.UpdatePost(context.Background(), draft.ID, &dto.UpdatePostDTO{
		Published: boolPtr(true),
	})
	require.NoError(t, err)
	require.NotNil(t, again.PublishedAt)
	assert.Equal(t, firstPublishedAt.Unix(), again.PublishedAt.Unix())

	unpublished, err := svc.UpdatePost(context.Background(), draft.ID, &dto.UpdatePostDTO{
		Published: boolPtr(false),
	})
	require.NoError(t, err)
	assert.Nil(t, unpublished.PublishedAt)
}

func TestUpdatePost_ReplacesTags(t *testing.T) {
	db := setupTestDB()
	admin := createTestAdmin(db)
	tagA := createTestTag(db, "A", "a-tag")
	tagB := createTestTag(db, "B", "b-tag")
	svc := newAdminService(db)

	created, err := svc.CreatePost(context.Background(), admin.ID, &dto.CreatePostDTO{
		Type:      model.PostTypeArticle,
		Slug:      "retag-me",
		ContentMD: "body",
		TagIDs:    []uint64{tagA.ID},
	})
	require.NoError(t, err)
	require.Len(t, created.Tags, 1)

	updated, err := svc.UpdatePost(context.Background(), created.ID, &dto.UpdatePostDTO{
		TagIDs: &[]uint64{tagB.ID},
	})
	require.NoError(t, err)
	require.Len(t, updated.Tags, 1)
	assert.Equal(t, "b-tag", updated.Tags[0].Slug)
}

func TestUpdatePost_SlugConflict(t *testing.T) {
	db := setupTestDB()
	admin := createTestAdmin(db)
	createPublishedPost(db, admin.ID, "existing", time.Now())
	target := createPublishedPost(db, admin.ID, "renameable", time.Now())
	svc := newAdminService(db)

	_, err := svc.UpdatePost(context.Background(), target.ID, &dto.UpdatePostDTO{
		Slug: strPtr("existing"),
	})
	assert.ErrorIs(t, err, ErrSlugExists)

	// 提交自身 slug 不算冲突
	same, err := svc.UpdatePost(context.Background(), target.ID, &dto.UpdatePostDTO{
		Slug: strPtr("renameable"),
	})
	require.NoError(t, err)
	assert.Equal(t, "renameable", same.Slug)
}

func TestUpdatePost_NotFound(t *testing.T) {
	db := setupTestDB()
	svc := newAdminService(db)

	_, err := svc.UpdatePost(context.Background(), 12345, &dto.UpdatePostDTO{})
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestHidePost(t *testing.T) {
	db := setupTestDB()
	admin := createTestAdmin(db)
	post := createPublishedPost(db, admin.ID, "hideable", time.Now())
	svc := newAdminService(db)

	require.NoError(t, svc.HidePost(context.Background(), post.ID, true))

	var reloaded model.Post
	require.NoError(t, db.First(&reloaded, post.ID).Error)
	assert.True(t, reloaded.Hidden)

	require.NoError(t, svc.HidePost(context.Background(), post.ID, false))
	require.NoError(t, db.First(&reloaded, post.ID).Error)
	assert.False(t, reloaded.Hidden)
}

func TestDeletePost_HardDelete(t *testing.T) {
	db := setupTestDB()
	admin := createTestAdmin(db)
	tag := createTestTag(db, "Go", "go")
	svc := newAdminService(db)

	created, err := svc.CreatePost(context.Background(), admin.ID, &dto.CreatePostDTO{
		Type:      model.PostTypeShort,
		Slug:      "ephemeral",
		ContentMD: "body",
		TagIDs:    []uint64{tag.ID},
		Attachments: []*dto.AttachmentDTO{
			{Type: model.AttachmentImage, URL: "/uploads/x.png", MimeType: "image/png"},
		},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeletePost(context.Background(), created.ID))

	var count int64
	db.Model(&model.Post{}).Where("id = ?", created.ID).Count(&count)
	assert.Zero(t, count)

	db.Model(&model.ShuoAttachment{}).Where("post_id = ?", created.ID).Count(&count)
	assert.Zero(t, count)

	// 标签本身保留
	db.Model(&model.Tag{}).Count(&count)
	assert.EqualValues(t, 1, count)

	assert.ErrorIs(t, svc.DeletePost(context.Background(), created.ID), ErrPostNotFound)
}

func TestStats(t *testing.T) {
	db := setupTestDB()
	admin := createTestAdmin(db)
	createTestTag(db, "Go", "go")
	createTestTag(db, "Life", "life")

	times := publishedTimes(3)
	for i, ts := range times {
		post := createPublishedPost(db, admin.ID, "stat-"+string(rune('a'+i)), ts)
		db.Model(post).UpdateColumn("like_count", 2)
		db.Model(post).UpdateColumn("view_count", 10)
	}
	createDraftPost(db, admin.ID, "stat-draft")

	svc := newAdminService(db)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 4, stats.TotalPosts)
	assert.EqualValues(t, 3, stats.PublishedPosts)
	assert.EqualValues(t, 1, stats.DraftPosts)
	assert.EqualValues(t, 2, stats.TotalTags)
	assert.EqualValues(t, 6, stats.TotalLikes)
	assert.EqualValues(t, 30, stats.TotalViews)
}

func TestListPosts_IncludesDraftsAndFilters(t *testing.T) {
	db := setupTestDB()
	admin := createTestAdmin(db)
	createPublishedPost(db, admin.ID, "an-article", time.Now())
	createDraftPost(db, admin.ID, "a-draft")
	svc := newAdminService(db)

	all, err := svc.ListPosts(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	articles, err := svc.ListPosts(context.Background(), model.PostTypeArticle)
	require.NoError(t, err)
	assert.Len(t, articles, 2)

	shuos, err := svc.ListPosts(context.Background(), model.PostTypeShort)
	require.NoError(t, err)
	assert.Empty(t, shuos)
}
