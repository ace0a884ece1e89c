package model

import (
	"database/sql"
	"time"
)

const (
	TableName  = "todos"
	EntityName = "todo"

	FieldID            = "id"
	FieldTitle         = "title"
	FieldMemo          = "memo"
	FieldCreated       = "created"
	FieldDateCompleted = "datecompleted"
	FieldImportant     = "important"
	FieldUserID        = "user_id"
)

// Todo is a task owned by exactly one account. A todo without a completion
// date belongs to the current list, one with a date to the completed list.
type Todo struct {
	ID            int64        `db:"id" generated:"true"`
	Title         string       `db:"title"`
	Memo          string       `db:"memo"`
	Created       time.Time    `db:"created"`
	DateCompleted sql.NullTime `db:"datecompleted"`
	Important     bool         `db:"important"`
	UserID        int64        `db:"user_id"`
	ModifiedAt    time.Time    `db:"modified_at"`
}

func (t Todo) IsCompleted() bool {
	return t.DateCompleted.Valid
}

// CompletedAt returns the completion time, and false while the todo is still open.
func (t Todo) CompletedAt() (time.Time, bool) {
	return t.DateCompleted.Time, t.DateCompleted.Valid
}
