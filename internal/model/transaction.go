package model

import (
	"time"

	"github.com/Mahafuj2040/mamar-bank/internal/constants"
	"github.com/shopspring/decimal"
)

// Transaction is one ledger entry. BalanceAfter is the owning account's balance
// at the instant the entry was committed and is never recomputed.
type Transaction struct {
	ID              int64
	AccountID       int64
	Type            string
	Amount          decimal.Decimal
	BalanceAfter    decimal.Decimal
	Timestamp       time.Time
	LoanApproved    bool
	TargetAccountID *int64
	TransferRef     string
}

// Effect returns the signed change this entry made to its account's balance.
// Pending and approved loans have not moved money yet.
func (t *Transaction) Effect() decimal.Decimal {
	switch t.Type {
	case constants.TypeDeposit, constants.TypeTransfer:
		return t.Amount
	case constants.TypeWithdrawal, constants.TypeLoanPaid:
		return t.Amount.Neg()
	default:
		return decimal.Zero
	}
}

func (t *Transaction) IsPendingLoan() bool {
	return t.Type == constants.TypeLoan && !t.LoanApproved
}

func (t *Transaction) IsPayableLoan() bool {
	return t.Type == constants.TypeLoan && t.LoanApproved
}
