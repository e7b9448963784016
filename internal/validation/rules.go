package validation

import (
	"github.com/Mahafuj2040/mamar-bank/internal/constants"
	"github.com/shopspring/decimal"
)

// Limits are the configurable bounds the validators enforce.
type Limits struct {
	MinDeposit    decimal.Decimal
	MinWithdrawal decimal.Decimal
	MaxWithdrawal decimal.Decimal
	MaxLoans      int
}

func DefaultLimits() Limits {
	return Limits{
		MinDeposit:    decimal.NewFromInt(constants.DefaultMinDeposit),
		MinWithdrawal: decimal.NewFromInt(constants.DefaultMinWithdrawal),
		MaxWithdrawal: decimal.NewFromInt(constants.DefaultMaxWithdrawal),
		MaxLoans:      constants.DefaultMaxLoans,
	}
}

// Snapshot is the committed state of one account, read by the engine while it
// holds the account's lock.
type Snapshot struct {
	AccountID int64
	Balance   decimal.Decimal
	LoanCount int
}

// Request is the tagged input of Validate. Target is only read for transfers
// and is nil when the target account number did not resolve.
type Request struct {
	Kind   string
	Amount decimal.Decimal
	Source Snapshot
	Target *Snapshot
}

var maxBalance = decimal.New(constants.MaxBalanceCents, -2)

// Validate runs the rule set matching req.Kind and returns the accepted amount.
// It never mutates anything.
func (l Limits) Validate(req Request) (decimal.Decimal, error) {
	switch req.Kind {
	case constants.TypeDeposit:
		return l.ValidateDeposit(req.Amount, req.Source)
	case constants.TypeWithdrawal:
		return l.ValidateWithdrawal(req.Amount, req.Source)
	case constants.TypeLoan:
		return l.ValidateLoan(req.Amount, req.Source)
	case constants.TypeTransfer:
		return l.ValidateTransfer(req.Amount, req.Source, req.Target)
	default:
		return decimal.Zero, violation(CodeInvalidOperation, "unsupported operation %q", req.Kind)
	}
}

func (l Limits) ValidateDeposit(amount decimal.Decimal, acc Snapshot) (decimal.Decimal, error) {
	if err := checkPrecision(amount); err != nil {
		return decimal.Zero, err
	}
	if amount.LessThan(l.MinDeposit) {
		return decimal.Zero, violation(CodeBelowMinimum,
			"you need to deposit at least %s", l.MinDeposit.StringFixed(2))
	}
	if err := checkCredit(acc.Balance, amount); err != nil {
		return decimal.Zero, err
	}
	return amount, nil
}

func (l Limits) ValidateWithdrawal(amount decimal.Decimal, acc Snapshot) (decimal.Decimal, error) {
	if err := checkPrecision(amount); err != nil {
		return decimal.Zero, err
	}
	if amount.LessThan(l.MinWithdrawal) {
		return decimal.Zero, violation(CodeBelowMinimum,
			"you can withdraw at least %s", l.MinWithdrawal.StringFixed(2))
	}
	if amount.GreaterThan(l.MaxWithdrawal) {
		return decimal.Zero, violation(CodeAboveMaximum,
			"you can withdraw at most %s", l.MaxWithdrawal.StringFixed(2))
	}
	if amount.GreaterThan(acc.Balance) {
		return decimal.Zero, violation(CodeInsufficientFunds,
			"you have %s in your account, you can not withdraw more than your balance", acc.Balance.StringFixed(2))
	}
	return amount, nil
}

// ValidateLoan only caps the number of loans. A loan request does not move
// money, so the balance is not checked.
func (l Limits) ValidateLoan(amount decimal.Decimal, acc Snapshot) (decimal.Decimal, error) {
	if err := checkPositive(amount); err != nil {
		return decimal.Zero, err
	}
	if acc.LoanCount >= l.MaxLoans {
		return decimal.Zero, violation(CodeLoanLimit,
			"you have reached the limit of %d loans", l.MaxLoans)
	}
	return amount, nil
}

func (l Limits) ValidateTransfer(amount decimal.Decimal, sender Snapshot, target *Snapshot) (decimal.Decimal, error) {
	if err := checkPositive(amount); err != nil {
		return decimal.Zero, err
	}
	if target == nil {
		return decimal.Zero, violation(CodeUnknownTarget, "target account not found")
	}
	if target.AccountID == sender.AccountID {
		return decimal.Zero, violation(CodeSelfTransfer, "you cannot transfer to your own account")
	}
	if amount.GreaterThan(sender.Balance) {
		return decimal.Zero, violation(CodeInsufficientFunds,
			"insufficient balance, your current balance is %s", sender.Balance.StringFixed(2))
	}
	if err := checkCredit(target.Balance, amount); err != nil {
		return decimal.Zero, err
	}
	return amount, nil
}

// ValidateLoanPayment checks a LOAN entry against the paying account. Replaying
// a payment fails here because the entry is no longer an approved LOAN.
func ValidateLoanPayment(entryType string, approved bool, amount decimal.Decimal, acc Snapshot) error {
	if entryType != constants.TypeLoan || !approved {
		return violation(CodeLoanNotPayable, "loan is either already paid or not approved")
	}
	if amount.GreaterThan(acc.Balance) {
		return violation(CodeInsufficientFunds, "insufficient balance to pay the loan")
	}
	return nil
}

func ValidateLoanApproval(entryType string, approved bool) error {
	if entryType != constants.TypeLoan || approved {
		return violation(CodeLoanNotPending, "only a pending loan can be approved")
	}
	return nil
}

func checkPositive(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return violation(CodeInvalidAmount, "amount must be greater than zero")
	}
	return checkPrecision(amount)
}

func checkPrecision(amount decimal.Decimal) error {
	if !amount.Equal(amount.Truncate(2)) {
		return violation(CodeInvalidAmount, "amount %s has more than two decimal places", amount.String())
	}
	if amount.GreaterThan(maxBalance) {
		return violation(CodeInvalidAmount, "amount %s is too large", amount.String())
	}
	return nil
}

func checkCredit(balance, amount decimal.Decimal) error {
	if balance.Add(amount).GreaterThan(maxBalance) {
		return violation(CodeBalanceOverflow, "balance would exceed %s", maxBalance.StringFixed(2))
	}
	return nil
}
