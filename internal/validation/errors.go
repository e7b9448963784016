package validation

import (
	"errors"
	"fmt"
)

// Code identifies which business rule rejected an operation.
type Code string

const (
	CodeInvalidAmount     Code = "amount_invalid"
	CodeBelowMinimum      Code = "below_minimum"
	CodeAboveMaximum      Code = "above_maximum"
	CodeInsufficientFunds Code = "insufficient_funds"
	CodeLoanLimit         Code = "loan_limit"
	CodeSelfTransfer      Code = "self_transfer"
	CodeUnknownTarget     Code = "unknown_target"
	CodeLoanNotPayable    Code = "loan_not_payable"
	CodeLoanNotPending    Code = "loan_not_pending"
	CodeBalanceOverflow   Code = "balance_overflow"
	CodeInvalidAccount    Code = "account_invalid"
	CodeInvalidDate       Code = "date_invalid"
	CodeInvalidOperation  Code = "operation_invalid"
)

// RuleViolation is a user-correctable rejection. It never indicates a
// storage or system failure.
type RuleViolation struct {
	Code   Code
	Reason string
}

func (v *RuleViolation) Error() string {
	return fmt.Sprintf("rule violation (%s): %s", v.Code, v.Reason)
}

// NewViolation builds a RuleViolation with a formatted reason.
func NewViolation(code Code, format string, args ...any) *RuleViolation {
	return violation(code, format, args...)
}

func violation(code Code, format string, args ...any) *RuleViolation {
	return &RuleViolation{Code: code, Reason: fmt.Sprintf(format, args...)}
}

// AsViolation extracts the RuleViolation from err, if any.
func AsViolation(err error) (*RuleViolation, bool) {
	var v *RuleViolation
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}

// IsViolation reports whether err is a RuleViolation with the given code.
func IsViolation(err error, code Code) bool {
	v, ok := AsViolation(err)
	return ok && v.Code == code
}
