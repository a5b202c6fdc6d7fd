package resource

import (
	"encoding/json"
	"math"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

var dateType = reflect.TypeOf(Date{})

// Assign overwrites every editable field of dst with the matching input
// value. Fields missing from input are reset to their zero value. An empty
// string clears a nullable (pointer) field.
// dst must be a pointer to a struct whose fields carry `form` tags.
func Assign(dst interface{}, schema Schema, input Fields) error {
	values := make(map[string]interface{}, len(schema.fields))
	for _, name := range schema.Fields() {
		values[name] = input[name]
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "form",
		WeaklyTypedInput: true,
		ZeroFields:       true,
		Result:           dst,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			integerHook,
			dateHook,
			// must stay last: it may return nil
			emptyToNilHook,
		),
	})
	if err != nil {
		return errors.Wrap(err, "build field decoder")
	}
	if err := decoder.Decode(values); err != nil {
		return errors.Wrap(err, "assign fields")
	}
	return nil
}

// integerHook accepts integral floats such as 3.0 or "3.0" for integer fields.
func integerHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
	default:
		return data, nil
	}
	var raw string
	switch v := data.(type) {
	case json.Number:
		raw = v.String()
	case string:
		raw = v
	case float64:
		if v == math.Trunc(v) {
			return int64(v), nil
		}
		return data, nil
	default:
		return data, nil
	}
	if i, err := cast.ToInt64E(raw); err == nil {
		return i, nil
	}
	f, err := cast.ToFloat64E(raw)
	if err != nil || f != math.Trunc(f) {
		return data, nil
	}
	return int64(f), nil
}

func dateHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != dateType {
		return data, nil
	}
	switch v := data.(type) {
	case string:
		if v == "" {
			return Date{}, nil
		}
		return ParseDate(v)
	case Date:
		return v, nil
	}
	return data, nil
}

func emptyToNilHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to.Kind() != reflect.Ptr {
		return data, nil
	}
	if s, ok := data.(string); ok && s == "" {
		return nil, nil
	}
	return data, nil
}
