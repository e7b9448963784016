package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/Mahafuj2040/mamar-bank/internal/constants"
	"github.com/Mahafuj2040/mamar-bank/internal/model"
	"github.com/Mahafuj2040/mamar-bank/internal/notify"
	"github.com/Mahafuj2040/mamar-bank/internal/store"
	"github.com/Mahafuj2040/mamar-bank/internal/validation"
	"github.com/google/uuid"
)

// apply runs inside ExecTx with the involved accounts locked. Everything it
// reads comes from repo so the snapshot is the committed state.
func (ts *TransactionService) apply(ctx context.Context, repo store.Repository, req Request) (*Result, error) {
	switch req.Kind {
	case constants.OpLoanPayment:
		return ts.applyLoanPayment(ctx, repo, req.LoanID)
	case constants.OpLoanApproval:
		return ts.applyLoanApproval(ctx, repo, req.LoanID)
	}

	acc, err := loadAccount(ctx, repo, req.AccountID)
	if err != nil {
		return nil, err
	}
	snap := validation.Snapshot{AccountID: acc.ID, Balance: acc.Balance}

	switch req.Kind {
	case constants.TypeTransfer:
		return ts.applyTransfer(ctx, repo, acc, req)
	case constants.TypeLoan:
		if snap.LoanCount, err = repo.CountEntriesByType(ctx, acc.ID, constants.TypeLoan); err != nil {
			return nil, err
		}
	}

	amount, err := ts.config.Limits.Validate(validation.Request{Kind: req.Kind, Amount: req.Amount, Source: snap})
	if err != nil {
		return nil, err
	}

	entry := &model.Transaction{
		AccountID: acc.ID,
		Type:      req.Kind,
		Amount:    amount,
		Timestamp: ts.now(),
	}

	switch req.Kind {
	case constants.TypeDeposit:
		acc.Balance, err = repo.ApplyBalanceDelta(ctx, acc.ID, amount)
	case constants.TypeWithdrawal:
		acc.Balance, err = repo.ApplyBalanceDelta(ctx, acc.ID, amount.Neg())
	case constants.TypeLoan:
		// A request only records the loan. Disbursement is outside the ledger.
	}
	if err != nil {
		return nil, err
	}

	entry.BalanceAfter = acc.Balance
	if entry.ID, err = repo.AppendEntry(ctx, entry); err != nil {
		return nil, err
	}

	return &Result{Kind: req.Kind, Account: acc, Entries: []*model.Transaction{entry}}, nil
}

// applyTransfer debits the sender and credits the recipient, then records one
// entry per side. Both entries share a timestamp and a transfer reference.
func (ts *TransactionService) applyTransfer(ctx context.Context, repo store.Repository, sender *model.Account, req Request) (*Result, error) {
	var (
		target     *model.Account
		targetSnap *validation.Snapshot
	)
	if req.TargetAccountNo != "" {
		t, err := repo.GetAccountByNo(ctx, req.TargetAccountNo)
		switch {
		case err == nil:
			target = t
			targetSnap = &validation.Snapshot{AccountID: t.ID, Balance: t.Balance}
		case !errors.Is(err, store.ErrRecordNotFound):
			return nil, err
		}
	}

	amount, err := ts.config.Limits.ValidateTransfer(req.Amount,
		validation.Snapshot{AccountID: sender.ID, Balance: sender.Balance}, targetSnap)
	if err != nil {
		return nil, err
	}

	if sender.Balance, err = repo.ApplyBalanceDelta(ctx, sender.ID, amount.Neg()); err != nil {
		return nil, err
	}
	if target.Balance, err = repo.ApplyBalanceDelta(ctx, target.ID, amount); err != nil {
		return nil, err
	}

	at := ts.now()
	ref := uuid.NewString()
	out := &model.Transaction{
		AccountID:       sender.ID,
		Type:            constants.TypeTransfer,
		Amount:          amount.Neg(),
		BalanceAfter:    sender.Balance,
		Timestamp:       at,
		TargetAccountID: &target.ID,
		TransferRef:     ref,
	}
	in := &model.Transaction{
		AccountID:       target.ID,
		Type:            constants.TypeTransfer,
		Amount:          amount,
		BalanceAfter:    target.Balance,
		Timestamp:       at,
		TargetAccountID: &sender.ID,
		TransferRef:     ref,
	}
	for _, e := range []*model.Transaction{out, in} {
		if e.ID, err = repo.AppendEntry(ctx, e); err != nil {
			return nil, err
		}
	}

	return &Result{
		Kind:    constants.TypeTransfer,
		Account: sender,
		Target:  target,
		Entries: []*model.Transaction{out, in},
	}, nil
}

// applyLoanPayment debits an approved loan and marks it paid. A replay finds
// a LOAN_PAID entry and is rejected before any debit.
func (ts *TransactionService) applyLoanPayment(ctx context.Context, repo store.Repository, loanID int64) (*Result, error) {
	loan, acc, err := loadLoan(ctx, repo, loanID)
	if err != nil {
		return nil, err
	}

	err = validation.ValidateLoanPayment(loan.Type, loan.LoanApproved, loan.Amount,
		validation.Snapshot{AccountID: acc.ID, Balance: acc.Balance})
	if err != nil {
		return nil, err
	}

	if acc.Balance, err = repo.ApplyBalanceDelta(ctx, acc.ID, loan.Amount.Neg()); err != nil {
		return nil, err
	}

	paid, approved := constants.TypeLoanPaid, false
	if err := repo.UpdateEntry(ctx, loan.ID, store.EntryPatch{Type: &paid, LoanApproved: &approved}); err != nil {
		return nil, err
	}
	loan.Type, loan.LoanApproved = paid, approved

	return &Result{Kind: constants.OpLoanPayment, Account: acc, Entries: []*model.Transaction{loan}}, nil
}

func (ts *TransactionService) applyLoanApproval(ctx context.Context, repo store.Repository, loanID int64) (*Result, error) {
	loan, acc, err := loadLoan(ctx, repo, loanID)
	if err != nil {
		return nil, err
	}

	if err := validation.ValidateLoanApproval(loan.Type, loan.LoanApproved); err != nil {
		return nil, err
	}

	approved := true
	if err := repo.UpdateEntry(ctx, loan.ID, store.EntryPatch{LoanApproved: &approved}); err != nil {
		return nil, err
	}
	loan.LoanApproved = approved

	return &Result{Kind: constants.OpLoanApproval, Account: acc, Entries: []*model.Transaction{loan}}, nil
}

func loadAccount(ctx context.Context, repo store.Repository, id int64) (*model.Account, error) {
	acc, err := repo.GetAccountByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, notFound("account", id)
		}
		return nil, err
	}
	return acc, nil
}

func loadLoan(ctx context.Context, repo store.Repository, loanID int64) (*model.Transaction, *model.Account, error) {
	loan, err := repo.GetEntryByID(ctx, loanID)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, nil, notFound("loan", loanID)
		}
		return nil, nil, err
	}
	acc, err := loadAccount(ctx, repo, loan.AccountID)
	if err != nil {
		return nil, nil, err
	}
	return loan, acc, nil
}

// notifyResult queues one notification per affected owner.
func (ts *TransactionService) notifyResult(res *Result) {
	entry := res.Entries[0]
	meta := map[string]string{
		"account_no": res.Account.AccountNo,
		"entry_id":   strconv.FormatInt(entry.ID, 10),
		"balance":    res.Account.Balance.StringFixed(2),
	}
	amount := entry.Amount.Abs()

	switch res.Kind {
	case constants.TypeTransfer:
		meta["to"] = res.Target.AccountNo
		meta["transfer_ref"] = entry.TransferRef
		ts.notifier.Enqueue(notify.Notification{
			UserRef: res.Account.OwnerRef, Amount: amount, Kind: res.Kind, Metadata: meta,
		})
		ts.notifier.Enqueue(notify.Notification{
			UserRef: res.Target.OwnerRef,
			Amount:  amount,
			Kind:    res.Kind,
			Metadata: map[string]string{
				"account_no":   res.Target.AccountNo,
				"entry_id":     strconv.FormatInt(res.Entries[1].ID, 10),
				"balance":      res.Target.Balance.StringFixed(2),
				"from":         res.Account.AccountNo,
				"transfer_ref": entry.TransferRef,
			},
		})
		return

	case constants.OpLoanPayment, constants.OpLoanApproval:
		meta["loan_id"] = strconv.FormatInt(entry.ID, 10)
	}

	ts.notifier.Enqueue(notify.Notification{
		UserRef: res.Account.OwnerRef, Amount: amount, Kind: res.Kind, Metadata: meta,
	})
}
