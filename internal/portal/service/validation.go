package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ipfs/go-cid"

	"github.com/aussiebroadwan/carebridge/internal/portal/chain"
	"github.com/aussiebroadwan/carebridge/internal/portal/domain"
)

// NewValidator returns a validator that reports JSON field names and knows
// the portal's custom tags:
//
//	cid    a parseable IPFS content identifier
//	ether  a positive decimal ether amount with at most 18 fractional digits
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	// Both registrations only fail on an empty tag name.
	_ = v.RegisterValidation("cid", func(fl validator.FieldLevel) bool {
		_, err := cid.Decode(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("ether", func(fl validator.FieldLevel) bool {
		_, err := chain.ParseEther(fl.Field().String())
		return err == nil
	})
	return v
}

// validateRequest runs struct validation and converts the first problem
// into a ValidationFailed failure. Every problem is listed in Fields.
func validateRequest(v *validator.Validate, req any) *domain.Failure {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &domain.Failure{Kind: domain.FailureValidation, Reason: err.Error()}
	}

	f := &domain.Failure{Kind: domain.FailureValidation, Fields: make(map[string]string, len(verrs))}
	for i, fe := range verrs {
		field := fieldPath(fe.Namespace())
		msg := fieldMessage(fe)
		f.Fields[field] = msg
		if i == 0 {
			f.Reason = field + " " + msg
		}
	}
	return f
}

// fieldPath drops the struct name from a validator namespace, so
// "CampaignRequest.patient.fullName" becomes "patient.fullName".
func fieldPath(ns string) string {
	_, rest, ok := strings.Cut(ns, ".")
	if !ok {
		return ns
	}
	return rest
}

func fieldMessage(fe validator.FieldError) string {
	text := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required", "required_if":
		return "is required"
	case "min":
		if text {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "max":
		if text {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return "must be at most " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "eth_addr":
		return "must be a 0x-prefixed 20-byte hex address"
	case "cid":
		return "must be a valid content identifier"
	case "ether":
		return "must be a positive ether amount with at most 18 decimals"
	default:
		return "failed " + fe.Tag() + " check"
	}
}
