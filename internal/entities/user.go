package entities

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

const DefaultUserRole = "USER"

// DateLayout is the wire format of calendar dates such as a user's birth date.
const DateLayout = "2006-01-02"

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"size:100;not null" json:"username"`
	// UsernameKey is the lower-cased username. Its unique index makes username
	// uniqueness case-insensitive at the store level.
	UsernameKey string `gorm:"uniqueIndex;size:100;not null" json:"-"`
	Email       string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password    string `gorm:"size:255;not null" json:"-"`

	FirstName  string     `gorm:"size:100" json:"firstName"`
	LastName   string     `gorm:"size:100" json:"lastName"`
	MiddleName string     `gorm:"size:100" json:"middleName"`
	Phone      string     `gorm:"size:32" json:"phone"`
	BirthDate  *time.Time `gorm:"type:date" json:"birthDate,omitempty"`

	IsVerified bool `gorm:"default:false" json:"isVerified"`
	// VerificationToken is set while the account is unverified and cleared on confirmation.
	VerificationToken *string `gorm:"uniqueIndex;size:64" json:"-"`
	Role              string  `gorm:"size:20;default:'USER'" json:"role"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// NormalizeUsername returns the key usernames are compared by.
func NormalizeUsername(username string) string {
	return strings.ToLower(username)
}

// BeforeSave keeps the derived username key and default role in sync.
func (u *User) BeforeSave(tx *gorm.DB) error {
	u.UsernameKey = NormalizeUsername(u.Username)
	if u.Role == "" {
		u.Role = DefaultUserRole
	}
	return nil
}

// BirthDateString formats the birth date for the profile payload.
func (u *User) BirthDateString() string {
	if u.BirthDate == nil {
		return ""
	}
	return u.BirthDate.Format(DateLayout)
}
