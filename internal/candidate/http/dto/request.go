// Package dto provides data transfer objects for the candidate endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/resumevault/internal/validation"
)

// AnalyzeResumeRequest points at a resume PDF to analyze.
type AnalyzeResumeRequest struct {
	URL string `json:"url"`
}

// Validate checks that the URL is present and absolute.
func (r *AnalyzeResumeRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.URL, validation.Required, customValidation.NotBlank, customValidation.HTTPURL),
	)
}

// SearchByNameRequest carries a case-insensitive name fragment.
type SearchByNameRequest struct {
	Name string `json:"name"`
}

// Validate checks that the search term is present.
func (r *SearchByNameRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required, customValidation.NotBlank),
	)
}
