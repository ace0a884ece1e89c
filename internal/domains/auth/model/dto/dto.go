package dto

import (
	userModel "chore/internal/domains/user/model"
	gModel "chore/shared/model"
	"chore/shared/timezone"
	"strings"
	"time"
)

type RegisterRequest struct {
	Username  string `form:"username"  json:"username"  validate:"notblank,max=150"`
	Password1 string `form:"password1" json:"password1" validate:"required,min=8,max=72"`
	Password2 string `form:"password2" json:"password2" validate:"required"`
}

func (r *RegisterRequest) ToUserModel(hashedPassword string) userModel.User {
	now := timezone.Now()

	return userModel.User{
		Username: strings.TrimSpace(r.Username),
		Password: hashedPassword,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
		},
	}
}

type LoginRequest struct {
	Username string `form:"username" json:"username" validate:"notblank"`
	Password string `form:"password" json:"password" validate:"required"`
}

type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login" json:"last_login"`
}

// Account is a registered user as seen by the rest of the application.
type Account struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

func (a *Account) FromModel(user userModel.User) {
	a.ID = user.ID
	a.Username = user.Username
}

// Session is an issued session token and its lifetime in seconds.
type Session struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}

// Caller is the authenticated account behind a request.
type Caller struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}
