package dogs

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const (
	FieldName             = "name"
	FieldBirthDate        = "birth_date"
	FieldIsBirthDateExact = "is_birth_date_exact"
)

// Input son los valores crudos enviados por el cliente (form o JSON).
// Puede venir vacío o incompleto.
type Input map[string]any

// CreateInput es el payload ya validado y normalizado.
type CreateInput struct {
	Name             string
	BirthDate        time.Time
	IsBirthDateExact bool
}

// FieldErrors mapea campo -> mensaje legible.
type FieldErrors map[string]string

func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

// Fields devuelve los campos con error en orden estable.
func (fe FieldErrors) Fields() []string {
	out := make([]string, 0, len(fe))
	for k := range fe {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

type fieldType int

const (
	typeString fieldType = iota
	typeDate
	typeBoolean
)

type rule struct {
	Field    string
	Label    string
	Required bool
	Type     fieldType
	Default  any
}

// createRules es la tabla de reglas para POST /dogs.
var createRules = []rule{
	{Field: FieldName, Label: "name", Required: true, Type: typeString},
	{Field: FieldBirthDate, Label: "birth date", Required: true, Type: typeDate},
	{Field: FieldIsBirthDateExact, Label: "is birth date exact", Type: typeBoolean, Default: false},
}

// Layouts aceptados para birth_date; la parte horaria se descarta.
var dateLayouts = []string{
	DateLayout,
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// Validate aplica createRules sobre in. Es una función pura.
// Si hay errores, el CreateInput devuelto no debe usarse.
func Validate(in Input) (CreateInput, FieldErrors) {
	errs := FieldErrors{}
	values := make(map[string]any, len(createRules))

	for _, r := range createRules {
		raw, present := in[r.Field]
		if !present || isBlank(raw) {
			if r.Required {
				errs[r.Field] = fmt.Sprintf("The %s field is required.", r.Label)
				continue
			}
			values[r.Field] = r.Default
			continue
		}

		v, msg := coerce(r, raw)
		if msg != "" {
			errs[r.Field] = msg
			continue
		}
		values[r.Field] = v
	}

	if len(errs) > 0 {
		return CreateInput{}, errs
	}

	return CreateInput{
		Name:             values[FieldName].(string),
		BirthDate:        values[FieldBirthDate].(time.Time),
		IsBirthDateExact: values[FieldIsBirthDateExact].(bool),
	}, nil
}

func coerce(r rule, raw any) (any, string) {
	switch r.Type {
	case typeString:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Sprintf("The %s field must be a string.", r.Label)
		}
		return strings.TrimSpace(s), ""

	case typeDate:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Sprintf("The %s field must be a valid date.", r.Label)
		}
		t, ok := parseDate(s)
		if !ok {
			return nil, fmt.Sprintf("The %s field must be a valid date.", r.Label)
		}
		return t, ""

	case typeBoolean:
		b, ok := parseBool(raw)
		if !ok {
			return nil, fmt.Sprintf("The %s field must be true or false.", r.Label)
		}
		return b, ""
	}

	return nil, fmt.Sprintf("The %s field is invalid.", r.Label)
}

func isBlank(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(x) == ""
	default:
		return false
	}
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

func parseBool(v any) (bool, bool) {
	switch x := v.(type) {
	case bool:
		return x, true
	case float64:
		// JSON numbers
		switch x {
		case 0:
			return false, true
		case 1:
			return true, true
		}
	case int:
		switch x {
		case 0:
			return false, true
		case 1:
			return true, true
		}
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "1", "true", "on":
			return true, true
		case "0", "false", "off":
			return false, true
		}
	}
	return false, false
}
