package domain

import (
	"time"

	"github.com/open-music/server/pkg/errors"
)

// User 用户实体，Password存储bcrypt哈希
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	Fullname  string    `json:"fullname"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Validate 验证用户数据
func (u *User) Validate() error {
	if u.Username == "" {
		return errors.Validation("username is required")
	}
	if len(u.Username) > 50 {
		return errors.Validation("username must not exceed 50 characters")
	}
	if u.Password == "" {
		return errors.Validation("password is required")
	}
	if u.Fullname == "" {
		return errors.Validation("fullname is required")
	}
	return nil
}
