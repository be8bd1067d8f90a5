package models

import (
	"time"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Post belongs to exactly one Author. Status is a label only; Active is
// the flag that gates public listing and comment eligibility.
type Post struct {
	ID            string    `json:"id" gorm:"primaryKey;size:191"`
	Title         string    `json:"title" gorm:"not null;size:200"`
	Content       string    `json:"content" gorm:"not null;type:text"`
	PublishedDate time.Time `json:"published_date"`
	Status        string    `json:"status" gorm:"not null;size:10;default:'draft'"`
	Active        bool      `json:"active"`
	AuthorID      string    `json:"author_id" gorm:"not null;index;size:191"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Author   Author    `json:"-" gorm:"foreignKey:AuthorID"`
	Comments []Comment `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

// PostSummary is the listing projection.
type PostSummary struct {
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	PublishedDate time.Time `json:"published_date"`
	AuthorName    string    `json:"author_name"`
}

// PostDetail is the detail projection with nested comments.
type PostDetail struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Content       string        `json:"content"`
	PublishedDate time.Time     `json:"published_date"`
	AuthorName    string        `json:"author_name"`
	Status        string        `json:"status"`
	Active        bool          `json:"active"`
	Comments      []CommentView `json:"comments"`
}

func (p *Post) Summary() PostSummary {
	return PostSummary{
		Title:         p.Title,
		Content:       p.Content,
		PublishedDate: p.PublishedDate,
		AuthorName:    p.Author.Name,
	}
}

// Detail assumes Author and Comments (with their users) are preloaded.
func (p *Post) Detail() PostDetail {
	comments := make([]CommentView, 0, len(p.Comments))
	for i := range p.Comments {
		comments = append(comments, p.Comments[i].View())
	}
	return PostDetail{
		ID:            p.ID,
		Title:         p.Title,
		Content:       p.Content,
		PublishedDate: p.PublishedDate,
		AuthorName:    p.Author.Name,
		Status:        p.Status,
		Active:        p.Active,
		Comments:      comments,
	}
}
