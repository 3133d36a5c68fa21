package model

import (
	"time"
)

const (
	PostTypeShort   = "SHORT"
	PostTypeArticle = "ARTICLE"
)

type Post struct {
	ID          uint64     `gorm:"primaryKey" json:"id"`
	Type        string     `gorm:"type:varchar(10);not null;index:idx_post_type" json:"type"`
	Slug        string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_post_slug" json:"slug"`
	Title       *string    `gorm:"type:varchar(255)" json:"title"`
	ContentMD   string     `gorm:"not null" json:"contentMD"`
	ContentHTML string     `gorm:"not null" json:"contentHTML"`
	Excerpt     string     `gorm:"type:varchar(512)" json:"excerpt"`
	CoverImage  *string    `gorm:"type:varchar(512)" json:"coverImage"`
	Images      []string   `gorm:"serializer:json;type:text" json:"images"`
	PublishedAt *time.Time `gorm:"index:idx_post_published_at" json:"publishedAt"` // 为空即草稿
	LikeCount   int        `gorm:"not null;default:0" json:"likeCount"`
	ViewCount   int        `gorm:"not null;default:0" json:"viewCount"`
	Hidden      bool       `gorm:"not null;default:false" json:"hidden"`
	AuthorID    uint64     `gorm:"not null;index:idx_post_author" json:"authorId"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	// 关联关系
	Author      User              `gorm:"foreignKey:AuthorID;references:ID" json:"-"`
	Tags        []Tag             `gorm:"many2many:post_tags" json:"tags"`
	Attachments []*ShuoAttachment `gorm:"foreignKey:PostID;references:ID" json:"shuoAttachments"`
}

func (Post) TableName() string {
	return "posts"
}

// Published 帖子是否已发布，PublishedAt 为空即草稿
func (p *Post) Published() bool {
	return p.PublishedAt != nil
}
