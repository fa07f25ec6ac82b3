// Package providerrules holds the field rules every provider record must meet,
// whichever source it was loaded from.
package providerrules

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/ShubhamAnand123/onlawthink/internal/domain"
)

// Rules maps domain.Provider field names to validator tags.
var Rules = map[string]string{
	"ID":            "required",
	"FirstName":     "required",
	"YearOfJoining": "gte=0",
}

// Violation is one failed rule on one field.
type Violation struct {
	Field string // domain.Provider field name
	Tag   string
	Param string
}

// Describe renders the violation using name for the field.
func (v Violation) Describe(name string) string {
	switch v.Tag {
	case "required":
		return fmt.Sprintf("%s is required", name)
	case "gte":
		return fmt.Sprintf("%s must be at least %s", name, v.Param)
	default:
		return fmt.Sprintf("%s is invalid", name)
	}
}

type Checker struct {
	validate *validator.Validate
}

func New() *Checker {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidationMapRules(Rules, domain.Provider{})
	return &Checker{validate: v}
}

// Check returns the violations of p in field order, or nil when p is valid.
func (c *Checker) Check(p domain.Provider) []Violation {
	err := c.validate.Struct(p)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []Violation{{Tag: err.Error()}}
	}
	out := make([]Violation, 0, len(verrs))
	for _, e := range verrs {
		out = append(out, Violation{Field: e.StructField(), Tag: e.Tag(), Param: e.Param()})
	}
	return out
}
