package model

import (
	"chore/shared/model"
	"database/sql"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID        = "id"
	FieldUsername  = "username"
	FieldPassword  = "password"
	FieldLastLogin = "last_login"
)

type User struct {
	ID        int64        `db:"id" generated:"true"`
	Username  string       `db:"username"`
	Password  string       `db:"password"`
	LastLogin sql.NullTime `db:"last_login"`
	model.Metadata
}
