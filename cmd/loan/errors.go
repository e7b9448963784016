package loan

import (
	"errors"
	"fmt"
	"strconv"
)

var errNoLoans = errors.New("no matching loans on this account")

func parseLoanID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid loan ID: %s", s)
	}
	return id, nil
}
