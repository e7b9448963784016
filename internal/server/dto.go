package server

import (
	"time"

	"github.com/Mahafuj2040/mamar-bank/internal/constants"
	"github.com/Mahafuj2040/mamar-bank/internal/model"
	"github.com/Mahafuj2040/mamar-bank/internal/service"
	"github.com/shopspring/decimal"
)

type openAccountRequest struct {
	OwnerRef    string `json:"owner_ref"`
	AccountType string `json:"account_type"`
	Gender      string `json:"gender"`
	BirthDate   string `json:"birth_date"`
}

// amountRequest accepts the amount as a JSON number or string.
type amountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type transferRequest struct {
	Amount          decimal.Decimal `json:"amount"`
	TargetAccountNo string          `json:"target_account_no"`
}

type accountResponse struct {
	ID         int64  `json:"id"`
	AccountNo  string `json:"account_no"`
	OwnerRef   string `json:"owner_ref"`
	Type       string `json:"account_type"`
	Balance    string `json:"balance"`
	OpenedDate string `json:"opened_date"`
	Gender     string `json:"gender,omitempty"`
	BirthDate  string `json:"birth_date,omitempty"`
}

type entryResponse struct {
	ID              int64     `json:"id"`
	AccountID       int64     `json:"account_id"`
	Type            string    `json:"type"`
	Amount          string    `json:"amount"`
	BalanceAfter    string    `json:"balance_after"`
	Timestamp       time.Time `json:"timestamp"`
	LoanApproved    *bool     `json:"loan_approved,omitempty"`
	TargetAccountID *int64    `json:"target_account_id,omitempty"`
	TransferRef     string    `json:"transfer_ref,omitempty"`
}

type operationResponse struct {
	Kind    string          `json:"kind"`
	Balance string          `json:"balance"`
	Entries []entryResponse `json:"entries"`
}

type reportResponse struct {
	AccountNo string          `json:"account_no"`
	Start     string          `json:"start,omitempty"`
	End       string          `json:"end,omitempty"`
	PeriodSum string          `json:"period_sum"`
	Entries   []entryResponse `json:"entries"`
}

func toAccountResponse(acc *model.Account) accountResponse {
	resp := accountResponse{
		ID:         acc.ID,
		AccountNo:  acc.AccountNo,
		OwnerRef:   acc.OwnerRef,
		Type:       acc.Type,
		Balance:    acc.Balance.StringFixed(2),
		OpenedDate: acc.OpenedDate.Format(constants.DateFormat),
		Gender:     acc.Gender,
	}
	if acc.BirthDate != nil {
		resp.BirthDate = acc.BirthDate.Format(constants.DateFormat)
	}
	return resp
}

func toEntryResponse(e *model.Transaction, loc *time.Location) entryResponse {
	resp := entryResponse{
		ID:              e.ID,
		AccountID:       e.AccountID,
		Type:            e.Type,
		Amount:          e.Amount.StringFixed(2),
		BalanceAfter:    e.BalanceAfter.StringFixed(2),
		Timestamp:       e.Timestamp.In(loc),
		TargetAccountID: e.TargetAccountID,
		TransferRef:     e.TransferRef,
	}
	if e.Type == constants.TypeLoan || e.Type == constants.TypeLoanPaid {
		approved := e.LoanApproved
		resp.LoanApproved = &approved
	}
	return resp
}

func toEntryResponses(entries []*model.Transaction, loc *time.Location) []entryResponse {
	out := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntryResponse(e, loc))
	}
	return out
}

func toOperationResponse(res *service.Result, loc *time.Location) operationResponse {
	return operationResponse{
		Kind:    res.Kind,
		Balance: res.Balance().StringFixed(2),
		Entries: toEntryResponses(res.Entries, loc),
	}
}

func toReportResponse(r *service.Report, loc *time.Location) reportResponse {
	resp := reportResponse{
		AccountNo: r.Account.AccountNo,
		PeriodSum: r.PeriodSum.StringFixed(2),
		Entries:   toEntryResponses(r.Entries, loc),
	}
	if r.Start != nil {
		resp.Start = r.Start.Format(constants.DateFormat)
	}
	if r.End != nil {
		resp.End = r.End.Format(constants.DateFormat)
	}
	return resp
}
