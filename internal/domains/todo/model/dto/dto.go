package dto

import (
	"chore/internal/domains/todo/model"
	"chore/shared/constant"
	"chore/shared/timezone"
	"strings"
	"time"
)

type CreateTodoRequest struct {
	Title     string `form:"title" json:"title" validate:"notblank,max=100"`
	Memo      string `form:"memo" json:"memo"`
	Important bool   `form:"important" json:"important"`
}

func (c *CreateTodoRequest) ToModel(owner int64) model.Todo {
	now := timezone.Now()

	return model.Todo{
		Title:      strings.TrimSpace(c.Title),
		Memo:       c.Memo,
		Created:    now,
		Important:  c.Important,
		UserID:     owner,
		ModifiedAt: now,
	}
}

// UpdateTodoRequest carries the editable fields. Every field is written on update,
// so an empty memo or an unchecked flag clears the stored value.
type UpdateTodoRequest struct {
	Title     string `db:"title" form:"title" json:"title" validate:"notblank,max=100"`
	Memo      string `db:"memo" form:"memo" json:"memo"`
	Important bool   `db:"important" form:"important" json:"important"`
}

// Normalize trims surrounding whitespace from the title.
func (u UpdateTodoRequest) Normalize() UpdateTodoRequest {
	u.Title = strings.TrimSpace(u.Title)

	return u
}

type TodoResponse struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Memo          string     `json:"memo"`
	Important     bool       `json:"important"`
	Created       time.Time  `json:"created"`
	DateCompleted *time.Time `json:"datecompleted,omitempty"`
}

func (r *TodoResponse) FromModel(todo model.Todo) {
	r.ID = todo.ID
	r.Title = todo.Title
	r.Memo = todo.Memo
	r.Important = todo.Important
	r.Created = timezone.ToAppTime(todo.Created)
	r.DateCompleted = nil

	if at, ok := todo.CompletedAt(); ok {
		completed := timezone.ToAppTime(at)
		r.DateCompleted = &completed
	}
}

func (r TodoResponse) IsCompleted() bool {
	return r.DateCompleted != nil
}

// CreatedDisplay formats the creation time for templates.
func (r TodoResponse) CreatedDisplay() string {
	return timezone.Format(r.Created, constant.DisplayDateFormat)
}

// CompletedDisplay formats the completion time for templates, or returns an empty string.
func (r TodoResponse) CompletedDisplay() string {
	if r.DateCompleted == nil {
		return constant.Empty
	}

	return timezone.Format(*r.DateCompleted, constant.DisplayDateFormat)
}

func FromModels(todos []model.Todo) []TodoResponse {
	responses := make([]TodoResponse, len(todos))
	for i, todo := range todos {
		responses[i].FromModel(todo)
	}

	return responses
}
