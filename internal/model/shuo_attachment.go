package model

import (
	"time"
)

const (
	AttachmentImage = "IMAGE"
	AttachmentVideo = "VIDEO"
	AttachmentGIF   = "GIF"
)

// ShuoAttachment 说说帖的多媒体附件
type ShuoAttachment struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	PostID    uint64    `gorm:"not null;index:idx_attachment_post" json:"postId"`
	Type      string    `gorm:"type:varchar(10);not null" json:"type"` // IMAGE / VIDEO / GIF
	URL       string    `gorm:"type:varchar(512);not null" json:"url"`
	MimeType  string    `gorm:"type:varchar(64);not null" json:"mimeType"`
	Size      int64     `gorm:"not null;default:0" json:"size"`
	Width     int       `gorm:"not null;default:0" json:"width"`
	Height    int       `gorm:"not null;default:0" json:"height"`
	SortOrder int8      `gorm:"not null;default:0" json:"sortOrder"`
	CreatedAt time.Time `json:"-"`
}

func (ShuoAttachment) TableName() string {
	return "shuo_attachments"
}
