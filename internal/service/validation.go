package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidationError reports request fields that failed validation.
type ValidationError struct {
	Fields []string
	msg    string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func newValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: []string{field}, msg: fmt.Sprintf("%s %s", field, msg)}
}

// validateRequest checks the validate struct tags of msg.
func validateRequest(msg any) error {
	err := validate.Struct(msg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	ve := &ValidationError{}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		ve.Fields = append(ve.Fields, fe.Field())
		parts = append(parts, describe(fe))
	}
	ve.msg = strings.Join(parts, "; ")
	return ve
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	case "email":
		return fe.Field() + " must be a valid email address"
	}
	return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
}

// Tagged views of the wire requests. Generated messages cannot carry
// validate tags, so handlers copy the checked fields into these.
type (
	chamaInput struct {
		Name string `validate:"required,min=3,max=100"`
	}
	contributionInput struct {
		MemberID string  `validate:"required"`
		Amount   float64 `validate:"gt=0"`
	}
	ledgerInput struct {
		Type string `validate:"omitempty,oneof=all contribution loan"`
	}
	loanListInput struct {
		Status string `validate:"omitempty,oneof=Pending Approved Rejected Repaid"`
	}
	loanRequestInput struct {
		MemberID string  `validate:"required"`
		Amount   float64 `validate:"gt=0"`
	}
	decisionInput struct {
		LoanID   string `validate:"required"`
		Decision string `validate:"required,oneof=approve reject"`
	}
	repaymentInput struct {
		LoanID string `validate:"required"`
	}
	registerInput struct {
		Email       string `validate:"required,email"`
		DisplayName string `validate:"required,max=100"`
		Password    string `validate:"required"`
	}
	loginInput struct {
		Email    string `validate:"required"`
		Password string `validate:"required"`
	}
)
