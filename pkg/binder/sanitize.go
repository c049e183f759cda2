package binder

import (
	"reflect"

	"github.com/classtym/campaign/pkg/sanitizer"
)

// sanitizeValue walks v and applies sanitizer.FormValue to every settable
// string, including string values held in maps.
func sanitizeValue(v any) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return
	}
	sanitizeReflectValue(rv.Elem())
}

func sanitizeReflectValue(rv reflect.Value) {
	switch rv.Kind() {
	case reflect.String:
		if rv.CanSet() {
			rv.SetString(sanitizer.FormValue(rv.String()))
		}

	case reflect.Struct:
		for i := range rv.NumField() {
			if field := rv.Field(i); field.CanSet() {
				sanitizeReflectValue(field)
			}
		}

	case reflect.Slice, reflect.Array:
		for i := range rv.Len() {
			sanitizeReflectValue(rv.Index(i))
		}

	case reflect.Map:
		if rv.Type().Elem().Kind() != reflect.String {
			return
		}
		iter := rv.MapRange()
		for iter.Next() {
			clean := reflect.ValueOf(sanitizer.FormValue(iter.Value().String())).Convert(rv.Type().Elem())
			rv.SetMapIndex(iter.Key(), clean)
		}

	case reflect.Pointer:
		if !rv.IsNil() {
			sanitizeReflectValue(rv.Elem())
		}
	}
}
