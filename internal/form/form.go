package form

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/csheth/homescout/internal/predictor"
)

// Field identifies one of the five property attributes on the form.
type Field string

const (
	FieldBedrooms   Field = "bedrooms"
	FieldBathrooms  Field = "bathrooms"
	FieldLivingArea Field = "living_area"
	FieldCondition  Field = "condition"
	FieldSchools    Field = "schools"
)

// Fields lists the form attributes in display order.
var Fields = []Field{
	FieldBedrooms,
	FieldBathrooms,
	FieldLivingArea,
	FieldCondition,
	FieldSchools,
}

// Spec describes how a field is labelled and validated.
type Spec struct {
	Label       string
	Placeholder string
	Min         float64
	Max         float64
	Integer     bool
}

var specs = map[Field]Spec{
	FieldBedrooms:   {Label: "Bedrooms", Placeholder: "3", Min: 0, Max: 20, Integer: true},
	FieldBathrooms:  {Label: "Bathrooms", Placeholder: "2", Min: 0, Max: 20, Integer: true},
	FieldLivingArea: {Label: "Living area (sqft)", Placeholder: "1800", Min: 0, Max: 100000},
	FieldCondition:  {Label: "Condition (1-5)", Placeholder: "3", Min: 1, Max: 5, Integer: true},
	FieldSchools:    {Label: "Nearby schools", Placeholder: "2", Min: 0, Max: 20, Integer: true},
}

// SpecFor returns the labelling and validation rules for a field.
func SpecFor(f Field) Spec {
	return specs[f]
}

// Sample is the fixed reference property used by the load-sample action.
var Sample = map[Field]string{
	FieldBedrooms:   "3",
	FieldBathrooms:  "2",
	FieldLivingArea: "1800",
	FieldCondition:  "3",
	FieldSchools:    "2",
}

// Validate checks a single raw value against its field rules and returns a
// user-facing message, or "" when the value is acceptable.
func Validate(f Field, raw string) string {
	spec := specs[f]
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fmt.Sprintf("%s is required", spec.Label)
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Sprintf("%s must be a number", spec.Label)
	}
	if spec.Integer && value != math.Trunc(value) {
		return fmt.Sprintf("%s must be a whole number", spec.Label)
	}
	if value < spec.Min || value > spec.Max {
		if spec.Integer {
			return fmt.Sprintf("%s must be between %d and %d", spec.Label, int(spec.Min), int(spec.Max))
		}
		return fmt.Sprintf("%s must be between %g and %g", spec.Label, spec.Min, spec.Max)
	}
	return ""
}

// ValidateAll checks every field independently and returns one message per
// failing field, so a blocked submission can surface them all at once.
func ValidateAll(values map[Field]string) map[Field]string {
	errs := map[Field]string{}
	for _, f := range Fields {
		if msg := Validate(f, values[f]); msg != "" {
			errs[f] = msg
		}
	}
	return errs
}

// ParseFeatures converts raw form values into the typed request payload.
// Integer fields are truncated from the parsed number; living area keeps
// its fraction. Any non-numeric value aborts with an input error.
func ParseFeatures(values map[Field]string) (predictor.Features, error) {
	parsed := map[Field]float64{}
	for _, f := range Fields {
		value, err := strconv.ParseFloat(strings.TrimSpace(values[f]), 64)
		if err != nil {
			return predictor.Features{}, fmt.Errorf("%s is not a number", specs[f].Label)
		}
		parsed[f] = value
	}
	return predictor.Features{
		Bedrooms:   int(parsed[FieldBedrooms]),
		Bathrooms:  int(parsed[FieldBathrooms]),
		LivingArea: parsed[FieldLivingArea],
		Condition:  int(parsed[FieldCondition]),
		Schools:    int(parsed[FieldSchools]),
	}, nil
}
