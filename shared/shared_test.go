package shared_test

import (
	"chore/shared"
	"chore/shared/constant"
	"chore/shared/dto"
	"reflect"
	"testing"
	"time"
)

func TestTransformFields(t *testing.T) {
	type TestStruct struct {
		Title      string  `db:"title"`
		Memo       string  `db:"memo"`
		Important  bool    `db:"important"`
		Note       *string `db:"note"`
		NoDBTag    string
		IgnoredTag string `db:"-"`
	}

	note := "kept"

	tests := []struct {
		name     string
		data     any
		expected map[string]any
	}{
		{
			name: "populated fields",
			data: TestStruct{
				Title:      "Buy milk",
				Memo:       "semi-skimmed",
				Important:  true,
				Note:       &note,
				NoDBTag:    "ignored",
				IgnoredTag: "ignored",
			},
			expected: map[string]any{
				"title":     "Buy milk",
				"memo":      "semi-skimmed",
				"important": true,
				"note":      "kept",
			},
		},
		{
			name: "zero values are written, nil pointers skipped",
			data: TestStruct{},
			expected: map[string]any{
				"title":     "",
				"memo":      "",
				"important": false,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.TransformFields(tt.data)

			if _, ok := result[constant.FieldModifiedAt].(time.Time); !ok {
				t.Error("expected modified_at to be a time.Time")
			}

			for key, expectedValue := range tt.expected {
				actualValue, exists := result[key]
				if !exists {
					t.Errorf("expected field %s to exist", key)

					continue
				}

				if !reflect.DeepEqual(actualValue, expectedValue) {
					t.Errorf("expected field %s to be %v, got %v", key, expectedValue, actualValue)
				}
			}

			for key := range result {
				if key == constant.FieldModifiedAt {
					continue
				}

				if _, expected := tt.expected[key]; !expected {
					t.Errorf("unexpected field %s in result", key)
				}
			}
		})
	}
}

func TestFilterByOwnerAndID(t *testing.T) {
	filter := shared.FilterByOwnerAndID(10, 2, "id", "user_id", "todos")

	expected := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "id", Value: int64(10), Operator: dto.FilterOperatorEq, Table: "todos"},
			dto.Filter{Field: "user_id", Value: int64(2), Operator: dto.FilterOperatorEq, Table: "todos"},
		},
	}

	if !reflect.DeepEqual(filter, expected) {
		t.Errorf("expected %+v, got %+v", expected, filter)
	}

	where, args := filter.GetWhereClause()
	if where != "(todos.id = :id AND todos.user_id = :user_id)" {
		t.Errorf("unexpected where clause %q", where)
	}

	if args["id"] != int64(10) || args["user_id"] != int64(2) {
		t.Errorf("unexpected args %v", args)
	}
}

func TestBuildCacheKey(t *testing.T) {
	if key := shared.BuildCacheKey("session", "abc"); key != "session:abc" {
		t.Errorf("expected session:abc, got %s", key)
	}

	if key := shared.BuildCacheKey("limiter", "10.0.0.1", "curl"); key != "limiter:10.0.0.1:curl" {
		t.Errorf("expected limiter:10.0.0.1:curl, got %s", key)
	}
}
