package service

import (
	"github.com/Mahafuj2040/mamar-bank/internal/model"
	"github.com/shopspring/decimal"
)

// Request is one engine operation. Kind is a ledger type from constants, or
// OpLoanPayment / OpLoanApproval for operations on an existing loan.
type Request struct {
	Kind            string
	AccountID       int64
	Amount          decimal.Decimal
	TargetAccountNo string
	LoanID          int64
}

// Result is what a committed operation produced. Entries[0] always belongs to
// the source account; a transfer adds the recipient leg as Entries[1].
type Result struct {
	Kind    string
	Account *model.Account
	Target  *model.Account
	Entries []*model.Transaction
}

// Balance is the source account balance right after the operation.
func (r *Result) Balance() decimal.Decimal {
	return r.Account.Balance
}
