// Package validation provides input validation utilities for the inference
// contract.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection. Struct tag validation is
// recommended for request types.
//
// # Struct Tag Validation
//
//	type Request struct {
//	    Temperature float64 `json:"temperature" validate:"gte=0,lte=2"`
//	}
//	err := validation.Validate(req)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("template", tmpl)
//	err := v.Validate()
package validation
