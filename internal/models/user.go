package models

import "time"

// User represents a registered customer.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name      string    `json:"name" gorm:"type:varchar(100)" validate:"required,min=2,max=100"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password  string    `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"` // bcrypt hash once stored
	Address   string    `json:"address" gorm:"type:text" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserSummary is the denormalized view of a user returned by login and
// copied into session tokens and order records. The copies are never
// refreshed afterwards; there is no profile-edit path.
type UserSummary struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// Summary returns the denormalized fields of the user.
func (u *User) Summary() UserSummary {
	return UserSummary{
		Name:    u.Name,
		Email:   u.Email,
		Address: u.Address,
	}
}
