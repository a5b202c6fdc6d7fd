package resource

import (
	"fmt"
	"strconv"
	"strings"
)

type ruleKind int

const (
	ruleRequired ruleKind = iota
	ruleNullable
	ruleString
	ruleNumeric
	ruleInteger
	ruleDate
	ruleMax
	ruleMin
)

var ruleNames = map[string]ruleKind{
	"required": ruleRequired,
	"nullable": ruleNullable,
	"string":   ruleString,
	"numeric":  ruleNumeric,
	"integer":  ruleInteger,
	"date":     ruleDate,
	"max":      ruleMax,
	"min":      ruleMin,
}

type rule struct {
	kind  ruleKind
	param int
}

// Field declares the validation rules of one request field, e.g.
//
//	Field{Name: "name", Rules: "required,string,max=255"}
type Field struct {
	Name  string
	Rules string
}

type fieldRules struct {
	name     string
	rules    []rule
	required bool
	// numeric fields measure max/min by value instead of length
	numeric bool
}

// Schema is the ordered rule set of an entity. Its field names are also the
// entity's editable fields.
type Schema struct {
	fields []fieldRules
}

// NewSchema parses the rule strings of each field.
func NewSchema(fields ...Field) (Schema, error) {
	var s Schema
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			return Schema{}, fmt.Errorf("resource: schema field without name")
		}
		if seen[f.Name] {
			return Schema{}, fmt.Errorf("resource: duplicate schema field %q", f.Name)
		}
		seen[f.Name] = true

		fr := fieldRules{name: f.Name}
		for _, token := range strings.Split(f.Rules, ",") {
			token = strings.TrimSpace(token)
			if token == "" {
				continue
			}
			r, err := parseRule(token)
			if err != nil {
				return Schema{}, fmt.Errorf("resource: field %q: %w", f.Name, err)
			}
			switch r.kind {
			case ruleRequired:
				fr.required = true
			case ruleNumeric, ruleInteger:
				fr.numeric = true
			}
			fr.rules = append(fr.rules, r)
		}
		s.fields = append(s.fields, fr)
	}
	return s, nil
}

// MustSchema is NewSchema for package-level declarations.
func MustSchema(fields ...Field) Schema {
	s, err := NewSchema(fields...)
	if err != nil {
		panic(err)
	}
	return s
}

func parseRule(token string) (rule, error) {
	name, param, hasParam := strings.Cut(token, "=")
	kind, ok := ruleNames[name]
	if !ok {
		return rule{}, fmt.Errorf("unknown rule %q", name)
	}
	r := rule{kind: kind}
	switch kind {
	case ruleMax, ruleMin:
		if !hasParam {
			return rule{}, fmt.Errorf("rule %q needs a size", name)
		}
		n, err := strconv.Atoi(param)
		if err != nil || n < 0 {
			return rule{}, fmt.Errorf("rule %q: invalid size %q", name, param)
		}
		r.param = n
	default:
		if hasParam {
			return rule{}, fmt.Errorf("rule %q takes no parameter", name)
		}
	}
	return r, nil
}

// Fields returns the editable field names in declaration order.
func (s Schema) Fields() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.name
	}
	return names
}
