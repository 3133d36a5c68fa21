package service

import (
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/parteecat/folio/internal/model"
	"github.com/parteecat/folio/internal/pkg/database"
	"github.com/parteecat/folio/internal/pkg/security"
)

func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	if err = database.AutoMigrate(db); err != nil {
		panic(err)
	}
	return db
}

func createTestAdmin(db *gorm.DB) *model.User {
	hashed, _ := security.HashPassword("password123")
	name := "admin"
	user := &model.User{
		Email:    "admin@example.com",
		Password: hashed,
		Name:     &name,
		Role:     model.RoleAdmin,
	}
	db.Create(user)
	return user
}

func createPublishedPost(db *gorm.DB, authorID uint64, slug string, publishedAt time.Time) *model.Post {
	title := "Post " + slug
	post := &model.Post{
		Type:        model.PostTypeArticle,
		Slug:        slug,
		Title:       &title,
		ContentMD:   "content of " + slug,
		ContentHTML: "<p>content of " + slug + "</p>",
		PublishedAt: &publishedAt,
		AuthorID:    authorID,
	}
	db.Create(post)
	return post
}

func createDraftPost(db *gorm.DB, authorID uint64, slug string) *model.Post {
	post := &model.Post{
		Type:      model.PostTypeArticle,
		Slug:      slug,
		ContentMD: "draft content",
		AuthorID:  authorID,
	}
	db.Create(post)
	return post
}

func createTestTag(db *gorm.DB, name, slug string) *model.Tag {
	tag := &model.Tag{Name: name, Slug: slug}
	db.Create(tag)
	return tag
}

func publishedTimes(n int) []time.Time {
	base := time.Now().Add(-time.Duration(n) * time.Hour).Truncate(time.Second)
	times := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		times = append(times, base.Add(time.Duration(i)*time.Hour))
	}
	return times
}

func seedFeed(db *gorm.DB, authorID uint64, n int) []*model.Post {
	posts := make([]*model.Post, 0, n)
	for i, ts := range publishedTimes(n) {
		posts = append(posts, createPublishedPost(db, authorID, fmt.Sprintf("post-%d", i), ts))
	}
	return posts
}
