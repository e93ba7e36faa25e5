package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the sole entity in the system. Email is the login key and is
// immutable once created; Username is freely mutable by the owner.
//
// Password holds the bcrypt digest of the user's password, never the
// plaintext. The digest is currently serialized in API responses along with
// the rest of the record; callers that need a trimmed view build one
// explicitly (see handler.LoginResponse).
//
// SessionToken is empty until the first successful login. It holds exactly
// one value at a time: each login overwrites it, which implicitly invalidates
// whatever cookie the previous login handed out.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Username     string    `json:"username" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Password     string    `json:"password" gorm:"size:255;not null"`
	SessionToken string    `json:"sessionToken,omitempty" gorm:"size:255;index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate assigns the UUID before inserting the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
