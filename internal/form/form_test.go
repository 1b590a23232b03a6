package form

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/csheth/homescout/internal/predictor"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		field Field
		value string
		valid bool
	}{
		{"bedrooms ok", FieldBedrooms, "3", true},
		{"bedrooms zero", FieldBedrooms, "0", true},
		{"bedrooms upper bound", FieldBedrooms, "20", true},
		{"bedrooms above range", FieldBedrooms, "21", false},
		{"bedrooms negative", FieldBedrooms, "-1", false},
		{"bedrooms fractional", FieldBedrooms, "2.5", false},
		{"bedrooms not a number", FieldBedrooms, "three", false},
		{"bedrooms empty", FieldBedrooms, "", false},
		{"bathrooms whitespace ok", FieldBathrooms, " 2 ", true},
		{"living area fractional ok", FieldLivingArea, "1800.5", true},
		{"living area upper bound", FieldLivingArea, "100000", true},
		{"living area above range", FieldLivingArea, "100001", false},
		{"condition lower bound", FieldCondition, "1", true},
		{"condition zero", FieldCondition, "0", false},
		{"condition upper bound", FieldCondition, "5", true},
		{"condition above range", FieldCondition, "6", false},
		{"schools ok", FieldSchools, "2", true},
		{"schools above range", FieldSchools, "25", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			msg := Validate(tt.field, tt.value)
			if tt.valid && msg != "" {
				t.Fatalf("Validate(%s, %q) = %q, want no error", tt.field, tt.value, msg)
			}
			if !tt.valid && msg == "" {
				t.Fatalf("Validate(%s, %q) accepted, want error", tt.field, tt.value)
			}
		})
	}
}

func TestValidateAllReportsEveryFailure(t *testing.T) {
	t.Parallel()

	values := map[Field]string{
		FieldBedrooms:   "many",
		FieldBathrooms:  "2",
		FieldLivingArea: "-5",
		FieldCondition:  "9",
		FieldSchools:    "",
	}

	errs := ValidateAll(values)
	if len(errs) != 4 {
		t.Fatalf("expected 4 field errors, got %d: %#v", len(errs), errs)
	}
	for _, f := range []Field{FieldBedrooms, FieldLivingArea, FieldCondition, FieldSchools} {
		if errs[f] == "" {
			t.Fatalf("expected error for %s", f)
		}
	}
	if errs[FieldBathrooms] != "" {
		t.Fatalf("bathrooms should be clean, got %q", errs[FieldBathrooms])
	}
}

func TestParseFeatures(t *testing.T) {
	t.Parallel()

	values := map[Field]string{
		FieldBedrooms:   "3",
		FieldBathrooms:  "2",
		FieldLivingArea: "1800.5",
		FieldCondition:  "3",
		FieldSchools:    "2",
	}

	got, err := ParseFeatures(values)
	if err != nil {
		t.Fatalf("ParseFeatures() error = %v", err)
	}
	want := predictor.Features{Bedrooms: 3, Bathrooms: 2, LivingArea: 1800.5, Condition: 3, Schools: 2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("features mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFeaturesTruncatesIntegers(t *testing.T) {
	t.Parallel()

	values := map[Field]string{
		FieldBedrooms:   "3.9",
		FieldBathrooms:  "2.2",
		FieldLivingArea: "1800",
		FieldCondition:  "3.7",
		FieldSchools:    "2.1",
	}

	got, err := ParseFeatures(values)
	if err != nil {
		t.Fatalf("ParseFeatures() error = %v", err)
	}
	if got.Bedrooms != 3 || got.Bathrooms != 2 || got.Condition != 3 || got.Schools != 2 {
		t.Fatalf("integer fields should truncate, got %+v", got)
	}
}

func TestParseFeaturesRejectsNonNumeric(t *testing.T) {
	t.Parallel()

	values := map[Field]string{
		FieldBedrooms:   "3",
		FieldBathrooms:  "two",
		FieldLivingArea: "1800",
		FieldCondition:  "3",
		FieldSchools:    "2",
	}

	if _, err := ParseFeatures(values); err == nil {
		t.Fatal("expected input error for non-numeric field")
	}
}

func TestSampleValuesAreValid(t *testing.T) {
	t.Parallel()

	if errs := ValidateAll(Sample); len(errs) != 0 {
		t.Fatalf("sample values must validate cleanly, got %#v", errs)
	}
}
