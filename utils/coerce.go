package utils

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/spf13/cast"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrMissing  = errors.New("value is required")
	ErrFraction = errors.New("value is not a whole number")
)

type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// ToInt accepts whole numbers and numeric strings ("5", "05", "5.0").
func ToInt(v any) (int, error) {
	switch x := v.(type) {
	case nil:
		return 0, ErrMissing
	case float64:
		if x != math.Trunc(x) {
			return 0, ErrFraction
		}
		return cast.ToIntE(x)
	case float32:
		if float64(x) != math.Trunc(float64(x)) {
			return 0, ErrFraction
		}
		return cast.ToIntE(x)
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, ErrMissing
		}
		// cast reads a leading zero as octal
		if t := strings.TrimLeft(s, "0"); t != s {
			if t == "" || t[0] == '.' {
				t = "0" + t
			}
			s = t
		}
		return cast.ToIntE(s)
	default:
		return cast.ToIntE(v)
	}
}

func ToFloat(v any) (float64, error) {
	if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
		return 0, ErrMissing
	}
	if v == nil {
		return 0, ErrMissing
	}
	return cast.ToFloat64E(v)
}

func ToString(v any) (string, error) {
	if v == nil {
		return "", ErrMissing
	}
	return cast.ToStringE(v)
}

// Layouts browsers commonly send that cast does not know.
var extraDateLayouts = []string{
	"Jan 2, 2006",
	"January 2, 2006",
	"01/02/2006",
	"1/2/2006",
}

// FormatDate renders a date as YYYY-MM-DD.
func FormatDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	t, err := cast.ToTimeE(s)
	if err != nil {
		for _, layout := range extraDateLayouts {
			if pt, perr := time.Parse(layout, s); perr == nil {
				return pt.Format("2006-01-02"), nil
			}
		}
		return "", err
	}
	return t.Format("2006-01-02"), nil
}

func ParseID(s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, &FieldError{Field: "id", Err: err}
	}
	return id, nil
}

// Fields coerces request values one after another and keeps the first
// failure, so callers check a single error at the end.
type Fields struct {
	err error
}

func (f *Fields) fail(name string, err error) {
	if f.err == nil {
		f.err = &FieldError{Field: name, Err: err}
	}
}

func (f *Fields) Int(name string, v any) int {
	n, err := ToInt(v)
	if err != nil {
		f.fail(name, err)
	}
	return n
}

func (f *Fields) Float(name string, v any) float64 {
	n, err := ToFloat(v)
	if err != nil {
		f.fail(name, err)
	}
	return n
}

func (f *Fields) String(name string, v any) string {
	s, err := ToString(v)
	if err != nil {
		f.fail(name, err)
	}
	return s
}

// OptFloat is Float for fields that may be left out; a missing value is 0.
func (f *Fields) OptFloat(name string, v any) float64 {
	n, err := ToFloat(v)
	if err != nil && !errors.Is(err, ErrMissing) {
		f.fail(name, err)
	}
	return n
}

// OptString is String for fields that may be left out; a missing value is "".
func (f *Fields) OptString(name string, v any) string {
	s, err := ToString(v)
	if err != nil && !errors.Is(err, ErrMissing) {
		f.fail(name, err)
	}
	return s
}

// Date canonicalizes v; an empty date stays empty.
func (f *Fields) Date(name, v string) string {
	if strings.TrimSpace(v) == "" {
		return ""
	}
	s, err := FormatDate(v)
	if err != nil {
		f.fail(name, err)
	}
	return s
}

func (f *Fields) Err() error { return f.err }
