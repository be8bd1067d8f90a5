package models

// Author is a content-creation identity. The link to the login user is
// optional: UserID goes null when the user account is deleted, but the
// author record and its posts survive.
type Author struct {
	ID     string  `json:"id" gorm:"primaryKey;size:191"`
	Name   string  `json:"name" gorm:"not null;size:100"`
	Email  string  `json:"email" gorm:"uniqueIndex;not null;size:255"`
	UserID *string `json:"user_id" gorm:"size:191"`

	User  *User  `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
	Posts []Post `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}

// IsLinkedTo reports whether the given user owns this author identity.
func (a *Author) IsLinkedTo(userID string) bool {
	return a.UserID != nil && *a.UserID == userID
}
