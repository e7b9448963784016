package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Account struct {
	ID         int64
	AccountNo  string
	OwnerRef   string
	Type       string
	Balance    decimal.Decimal
	OpenedDate time.Time
	Gender     string
	BirthDate  *time.Time
}
