package impl

import (
	"reflect"
	"strings"
)

// wireFieldName maps a Go struct field name to the json tag clients actually
// send, so validation errors name fields the caller recognizes.
func wireFieldName(input any, structField string) string {
	t := reflect.TypeOf(input)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return structField
	}

	field, ok := t.FieldByName(structField)
	if !ok {
		return structField
	}

	tag := field.Tag.Get("json")
	if tag == "" || tag == "-" {
		return structField
	}

	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return structField
	}

	return name
}
