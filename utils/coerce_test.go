package utils

import (
	"errors"
	"testing"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    int
		wantErr bool
	}{
		{name: "int", in: 5, want: 5},
		{name: "json number", in: float64(12), want: 12},
		{name: "numeric string", in: "2024", want: 2024},
		{name: "leading zero", in: "08", want: 8},
		{name: "zero string", in: "0", want: 0},
		{name: "zero decimal", in: "5.0", want: 5},
		{name: "padded", in: " 7 ", want: 7},
		{name: "whole float32", in: float32(3), want: 3},
		{name: "fraction", in: 12.7, wantErr: true},
		{name: "float32 fraction", in: float32(0.5), wantErr: true},
		{name: "nil", in: nil, wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "word", in: "June", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToInt(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ToInt(%v) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ToInt(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestToFloatAndString(t *testing.T) {
	if got, err := ToFloat("1000.5"); err != nil || got != 1000.5 {
		t.Errorf("ToFloat(\"1000.5\") = %v, %v", got, err)
	}
	if got, err := ToFloat(float64(1000)); err != nil || got != 1000 {
		t.Errorf("ToFloat(1000) = %v, %v", got, err)
	}
	if _, err := ToFloat(nil); !errors.Is(err, ErrMissing) {
		t.Errorf("ToFloat(nil) err = %v, want ErrMissing", err)
	}
	if got, err := ToString(float64(3)); err != nil || got != "3" {
		t.Errorf("ToString(3) = %q, %v", got, err)
	}
	if got, err := ToString(true); err != nil || got != "true" {
		t.Errorf("ToString(true) = %q, %v", got, err)
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2024-01-05", want: "2024-01-05"},
		{in: "2024-01-05T10:30:00Z", want: "2024-01-05"},
		{in: "2024-01-05T08:00:00", want: "2024-01-05"},
		{in: "Jan 5, 2024", want: "2024-01-05"},
		{in: "January 5, 2024", want: "2024-01-05"},
		{in: "01/05/2024", want: "2024-01-05"},
		{in: "1/5/2024", want: "2024-01-05"},
		{in: "not a date", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := FormatDate(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("FormatDate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("FormatDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseID(t *testing.T) {
	if _, err := ParseID("65a1f0c2e4b0a1b2c3d4e5f6"); err != nil {
		t.Errorf("valid id rejected: %v", err)
	}

	_, err := ParseID("not-an-id")
	var fe *FieldError
	if !errors.As(err, &fe) || fe.Field != "id" {
		t.Errorf("err = %v, want FieldError on id", err)
	}
}

func TestFieldsKeepsFirstError(t *testing.T) {
	var f Fields
	day := f.Int("day", "3")
	f.Int("month", "x")
	f.Float("salary", nil)

	if day != 3 {
		t.Errorf("day = %d, want 3", day)
	}
	var fe *FieldError
	if !errors.As(f.Err(), &fe) || fe.Field != "month" {
		t.Errorf("Err() = %v, want month failure", f.Err())
	}
}

func TestOptionalFields(t *testing.T) {
	var f Fields
	salary := f.OptFloat("salary", nil)
	packed := f.OptString("packed", nil)
	date := f.Date("joiningDate", "")

	if err := f.Err(); err != nil {
		t.Fatalf("missing optional values failed: %v", err)
	}
	if salary != 0 || packed != "" || date != "" {
		t.Errorf("got %v, %q, %q; want zero values", salary, packed, date)
	}

	f.OptFloat("quantity", "lots")
	var fe *FieldError
	if !errors.As(f.Err(), &fe) || fe.Field != "quantity" {
		t.Errorf("Err() = %v, want quantity failure", f.Err())
	}
}
