package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Mahafuj2040/mamar-bank/internal/constants"
	"github.com/Mahafuj2040/mamar-bank/internal/model"
	"github.com/Mahafuj2040/mamar-bank/internal/store"
	"github.com/Mahafuj2040/mamar-bank/internal/validation"
	"github.com/shopspring/decimal"
)

// OpenAccount creates an account with a zero balance. The public account
// number is derived from the new row id inside the same transaction.
func (as *AccountService) OpenAccount(ctx context.Context, in validation.OpenAccountInput) (*model.Account, error) {
	if err := validation.ValidateOpenAccount(&in); err != nil {
		return nil, err
	}

	acc := &model.Account{
		OwnerRef:   in.OwnerRef,
		Type:       in.Type,
		Balance:    decimal.Zero,
		OpenedDate: dateOnly(as.config.Now(), as.config.Location),
		Gender:     in.Gender,
	}
	if in.BirthDate != "" {
		birth, err := time.Parse(constants.DateFormat, in.BirthDate)
		if err != nil {
			return nil, fmt.Errorf("invalid birth date: %w", err)
		}
		acc.BirthDate = &birth
	}

	err := as.repo.ExecTx(ctx, func(repo store.Repository) error {
		id, err := repo.CreateAccount(ctx, acc)
		if err != nil {
			return err
		}
		acc.ID = id
		acc.AccountNo = strconv.FormatInt(constants.AccountNoBase+id, 10)
		return repo.SetAccountNo(ctx, id, acc.AccountNo)
	})
	if err != nil {
		return nil, classify(err)
	}

	return acc, nil
}

// dateOnly returns midnight UTC of t's calendar day in loc.
func dateOnly(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
