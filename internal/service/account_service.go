package service

import (
	"context"
	"errors"

	"github.com/Mahafuj2040/mamar-bank/internal/model"
	"github.com/Mahafuj2040/mamar-bank/internal/store"
)

type AccountService struct {
	repo   store.Repository
	config Config
}

func NewAccountService(repo store.Repository, cfg Config) *AccountService {
	return &AccountService{repo: repo, config: cfg}
}

func (as *AccountService) GetAccount(ctx context.Context, id int64) (*model.Account, error) {
	acc, err := as.repo.GetAccountByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, notFound("account", id)
		}
		return nil, classify(err)
	}
	return acc, nil
}

func (as *AccountService) GetAccountByNo(ctx context.Context, accountNo string) (*model.Account, error) {
	acc, err := as.repo.GetAccountByNo(ctx, accountNo)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, notFound("account", accountNo)
		}
		return nil, classify(err)
	}
	return acc, nil
}

func (as *AccountService) ListAccounts(ctx context.Context) ([]*model.Account, error) {
	accounts, err := as.repo.GetAllAccounts(ctx)
	if err != nil {
		return nil, classify(err)
	}
	return accounts, nil
}
