package model

import (
	"time"
)

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

type User struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_user_email" json:"email"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	Name      *string   `gorm:"type:varchar(100)" json:"name"`
	Avatar    *string   `gorm:"type:varchar(512)" json:"avatar"`
	Role      string    `gorm:"type:varchar(20);not null;default:USER" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}
