package resource

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Errors maps each failing field to its first validation message. It keeps
// the schema order when serialized.
type Errors struct {
	keys []string
	msgs map[string]string
}

func (e *Errors) add(field, msg string) {
	if e.msgs == nil {
		e.msgs = make(map[string]string)
	}
	if _, ok := e.msgs[field]; ok {
		return
	}
	e.keys = append(e.keys, field)
	e.msgs[field] = msg
}

// Len is the number of failing fields.
func (e Errors) Len() int { return len(e.keys) }

// Get returns the message recorded for field.
func (e Errors) Get(field string) (string, bool) {
	msg, ok := e.msgs[field]
	return msg, ok
}

// Map returns a copy of the field to message mapping.
func (e Errors) Map() map[string]string {
	out := make(map[string]string, len(e.keys))
	for _, k := range e.keys {
		out[k] = e.msgs[k]
	}
	return out
}

func (e Errors) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range e.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := codec.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := codec.Marshal(e.msgs[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ValidationError is returned by Service.Create when the input breaks the schema.
type ValidationError struct {
	Errors Errors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", e.Errors.Len())
}

// Validate checks input against the schema. Only the first failing rule of
// each field is reported.
func (s Schema) Validate(input Fields) Errors {
	var errs Errors
	for _, f := range s.fields {
		value, present := input[f.name]
		if value == nil {
			present = false
		}
		for _, r := range f.rules {
			if r.kind == ruleRequired {
				if !present || isBlank(value) {
					errs.add(f.name, message(f, r, value))
					break
				}
				continue
			}
			if !present {
				break
			}
			if !f.passes(r, value) {
				errs.add(f.name, message(f, r, value))
				break
			}
		}
	}
	return errs
}

func (f fieldRules) passes(r rule, value interface{}) bool {
	switch r.kind {
	case ruleNullable:
		return true
	case ruleString:
		_, ok := value.(string)
		return ok
	case ruleNumeric:
		_, ok := numberValue(value)
		return ok
	case ruleInteger:
		return isInteger(value)
	case ruleDate:
		s, ok := value.(string)
		if !ok || strings.TrimSpace(s) == "" {
			return false
		}
		_, err := ParseDate(s)
		return err == nil
	case ruleMax:
		if n, ok := f.numberSize(value); ok {
			return n <= float64(r.param)
		}
		if s, ok := value.(string); ok {
			return validate.Var(s, "max="+strconv.Itoa(r.param)) == nil
		}
		return otherSize(value) <= r.param
	case ruleMin:
		if n, ok := f.numberSize(value); ok {
			return n >= float64(r.param)
		}
		if s, ok := value.(string); ok {
			return validate.Var(s, "min="+strconv.Itoa(r.param)) == nil
		}
		return otherSize(value) >= r.param
	}
	return false
}

func (f fieldRules) numberSize(value interface{}) (float64, bool) {
	if !f.numeric {
		return 0, false
	}
	return numberValue(value)
}

func otherSize(value interface{}) int {
	switch v := value.(type) {
	case []interface{}:
		return len(v)
	case map[string]interface{}:
		return len(v)
	}
	return utf8.RuneCountInString(fmt.Sprint(value))
}

func isBlank(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []interface{}:
		return len(v) == 0
	case map[string]interface{}:
		return len(v) == 0
	}
	return false
}

func numberValue(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	case string:
		return numericString(v)
	}
	return 0, false
}

// numericString accepts decimal and exponent forms such as "1e3" and ".5".
// Hex, Inf and NaN spellings are not numbers here.
func numericString(v string) (float64, bool) {
	s := strings.TrimSpace(v)
	if s == "" || strings.ContainsAny(s, "xX_") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

func isInteger(value interface{}) bool {
	switch v := value.(type) {
	case json.Number:
		if _, err := v.Int64(); err == nil {
			return true
		}
		f, err := v.Float64()
		return err == nil && f == math.Trunc(f) && !math.IsInf(f, 0)
	case float64:
		return v == math.Trunc(v) && !math.IsInf(v, 0)
	case int, int32, int64:
		return true
	case string:
		_, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		return err == nil
	}
	return false
}

func attributeName(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}

func message(f fieldRules, r rule, value interface{}) string {
	attr := attributeName(f.name)
	switch r.kind {
	case ruleRequired:
		return fmt.Sprintf("The %s field is required.", attr)
	case ruleString:
		return fmt.Sprintf("The %s field must be a string.", attr)
	case ruleNumeric:
		return fmt.Sprintf("The %s field must be a number.", attr)
	case ruleInteger:
		return fmt.Sprintf("The %s field must be an integer.", attr)
	case ruleDate:
		return fmt.Sprintf("The %s field must be a valid date.", attr)
	case ruleMax:
		if _, ok := f.numberSize(value); ok {
			return fmt.Sprintf("The %s field must not be greater than %d.", attr, r.param)
		}
		return fmt.Sprintf("The %s field must not be greater than %d characters.", attr, r.param)
	case ruleMin:
		if _, ok := f.numberSize(value); ok {
			return fmt.Sprintf("The %s field must be at least %d.", attr, r.param)
		}
		return fmt.Sprintf("The %s field must be at least %d characters.", attr, r.param)
	}
	return fmt.Sprintf("The %s field is invalid.", attr)
}
