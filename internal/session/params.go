package session

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Mode selects how the interview is driven.
type Mode string

const (
	// ModeRoleBased interviews against the selected role's profile.
	ModeRoleBased Mode = "role_based"

	// ModeJobDescription anchors questions to a pasted job description.
	ModeJobDescription Mode = "jd_based"
)

// Params configure one interview session.
type Params struct {
	CandidateName string   `json:"candidate_name" validate:"required"`
	Roles         []string `json:"roles" validate:"required,min=1,dive,required"`
	Company       string   `json:"company,omitempty"`
	Mode          Mode     `json:"mode" validate:"required,oneof=role_based jd_based"`

	// JobDescription is the raw JD text, required in jd_based mode.
	JobDescription string `json:"job_description,omitempty" validate:"required_if=Mode jd_based"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the params, returning a ConfigurationError describing
// the first problem found.
func (p Params) Validate() error {
	if err := validate.Struct(p); err != nil {
		return &ConfigurationError{Err: err}
	}
	return nil
}

// ConfigurationError indicates invalid session parameters.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid session parameters: %v", e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }
