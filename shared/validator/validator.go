package validator

import (
	"chore/shared/constant"
	"chore/shared/failure"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/form/v4"
	val "github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var (
	validate    *val.Validate
	formDecoder *form.Decoder
)

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(fieldName)

	if err := validate.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}

	err := validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		return fl.Field().IsZero()
	})
	if err != nil {
		panic(err)
	}

	formDecoder = form.NewDecoder()
}

// fieldName reports a struct field by its form name, then its json name, so that
// messages refer to what the user actually submitted.
func fieldName(field reflect.StructField) string {
	for _, tag := range []string{"form", "json"} {
		name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
		if name != "" && name != "-" {
			return name
		}
	}

	return field.Name
}

// DecodeForm decodes an urlencoded or multipart form body into data using its form tags.
// An unchecked checkbox is absent from the body and decodes to false.
func DecodeForm[T any](r *http.Request, data *T) error {
	var err error
	if strings.HasPrefix(r.Header.Get(constant.RequestHeaderContentType), "multipart/form-data") {
		err = r.ParseMultipartForm(constant.RequestMaxMemory)
	} else {
		err = r.ParseForm()
	}

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to parse form: %w", err)) //nolint:wrapcheck
	}

	if err = formDecoder.Decode(data, r.PostForm); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode form: %w", err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
