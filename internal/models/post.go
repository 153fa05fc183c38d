package models

import (
	"time"
)

type Post struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"uniqueIndex;size:250;not null" json:"title"`
	Subtitle string `gorm:"size:250" json:"subtitle"`
	// Date is the human-readable publication date, stamped once when the
	// post is created and never recalculated afterwards.
	Date      string    `gorm:"size:250;not null" json:"date"`
	Body      string    `gorm:"type:text;not null" json:"body"` // Markdown source
	ImgURL    string    `gorm:"size:250" json:"img_url"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Filled by queries, not stored.
	CommentCount int `gorm:"-" json:"comment_count"`
}

func (Post) TableName() string {
	return "blog_posts"
}
