package constants

const (
	// Ledger entry types
	TypeDeposit    = "DEPOSIT"
	TypeWithdrawal = "WITHDRAWAL"
	TypeLoan       = "LOAN"
	TypeLoanPaid   = "LOAN_PAID"
	TypeTransfer   = "TRANSFER"

	// Engine operations that act on an existing LOAN entry
	OpLoanPayment  = TypeLoanPaid
	OpLoanApproval = "LOAN_APPROVAL"

	// Default rule limits, in whole currency units
	DefaultMinDeposit    = 100
	DefaultMinWithdrawal = 500
	DefaultMaxWithdrawal = 20000
	DefaultMaxLoans      = 3

	// Largest balance a decimal(12,2) column can hold, in cents
	MaxBalanceCents = 999999999999

	// Date Layout
	DateFormat = "2006-01-02"
)
