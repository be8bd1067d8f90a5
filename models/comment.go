package models

import (
	"time"
)

// Comment belongs to exactly one Post and is cascade-deleted with it.
// UserID is nil for anonymous comments and goes null if the user account
// is deleted later.
type Comment struct {
	ID      string    `json:"id" gorm:"primaryKey;size:191"`
	PostID  string    `json:"post_id" gorm:"not null;index;size:191"`
	Content string    `json:"content" gorm:"not null;type:text"`
	UserID  *string   `json:"user_id" gorm:"size:191"`
	Created time.Time `json:"created"`

	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
}

// CommentView is the comment projection: user is the display name of the
// commenting account, or absent for anonymous comments.
type CommentView struct {
	ID      string    `json:"id"`
	Content string    `json:"content"`
	User    *string   `json:"user"`
	Created time.Time `json:"created"`
}

// View assumes User is preloaded when UserID is set.
func (c *Comment) View() CommentView {
	v := CommentView{
		ID:      c.ID,
		Content: c.Content,
		Created: c.Created,
	}
	if c.User != nil {
		name := c.User.Name
		v.User = &name
	}
	return v
}
