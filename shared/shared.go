package shared

import (
	"chore/shared/constant"
	"chore/shared/dto"
	"chore/shared/timezone"
	"reflect"
	"strings"
)

const cacheKeySeparator = ":"

// TransformFields converts the db-tagged fields of a struct into a column map for an update.
// Every tagged field is written, including zero values, so that a form can clear a memo or
// uncheck a flag. Nil pointers are skipped and non-nil pointers are dereferenced.
func TransformFields(data any) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		field := val.Field(index)
		if field.Kind() == reflect.Pointer {
			if field.IsNil() {
				continue
			}

			field = field.Elem()
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()

	return updatedFields
}

// FilterByOwnerAndID matches a single row by primary key only when it belongs to owner.
func FilterByOwnerAndID(id, owner int64, fieldID, fieldOwner, table string) dto.FilterGroup {
	return dto.And(
		dto.Eq(table, fieldID, id),
		dto.Eq(table, fieldOwner, owner),
	)
}

func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, cacheKeySeparator)
}
