package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Mahafuj2040/mamar-bank/internal/lock"
	"github.com/Mahafuj2040/mamar-bank/internal/service"
	"github.com/Mahafuj2040/mamar-bank/internal/store"
	"github.com/Mahafuj2040/mamar-bank/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	repo, err := store.NewStore(filepath.Join(t.TempDir(), "bank.db"), store.Options{
		BusyTimeout:  5 * time.Second,
		MaxOpenConns: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	svc := service.NewService(repo, lock.NewManager(5*time.Second), nil, zap.NewNop(), service.Config{
		Limits:         validation.DefaultLimits(),
		MaxRetries:     3,
		RetryBaseDelay: time.Millisecond,
		Location:       time.UTC,
	})
	return New(svc, zap.NewNop(), time.UTC)
}

func do(t *testing.T, s *Server, method, path, body string) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

func openTestAccount(t *testing.T, s *Server, owner string) accountResponse {
	t.Helper()
	status, raw := do(t, s, http.MethodPost, "/api/v1/accounts",
		fmt.Sprintf(`{"owner_ref":%q,"account_type":"SAVINGS"}`, owner))
	require.Equal(t, http.StatusCreated, status, string(raw))
	return decode[accountResponse](t, raw)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	status, raw := do(t, s, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok"}`, string(raw))
}

func TestOpenAndGetAccount(t *testing.T) {
	s := newTestServer(t)

	acc := openTestAccount(t, s, "alice")
	assert.Equal(t, "alice", acc.OwnerRef)
	assert.Equal(t, "0.00", acc.Balance)
	assert.NotEmpty(t, acc.AccountNo)

	status, raw := do(t, s, http.MethodGet, fmt.Sprintf("/api/v1/accounts/%d", acc.ID), "")
	require.Equal(t, http.StatusOK, status)
	got := decode[accountResponse](t, raw)
	assert.Equal(t, acc.AccountNo, got.AccountNo)
}

func TestOpenAccountInvalid(t *testing.T) {
	s := newTestServer(t)

	status, raw := do(t, s, http.MethodPost, "/api/v1/accounts", `{"owner_ref":"","account_type":"SAVINGS"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, string(validation.CodeInvalidAccount), decode[ErrorResponse](t, raw).Title)
}

func TestDepositAndWithdraw(t *testing.T) {
	s := newTestServer(t)
	acc := openTestAccount(t, s, "alice")

	status, raw := do(t, s, http.MethodPost, fmt.Sprintf("/api/v1/accounts/%d/deposit", acc.ID), `{"amount":"1000.50"}`)
	require.Equal(t, http.StatusOK, status, string(raw))
	res := decode[operationResponse](t, raw)
	assert.Equal(t, "1000.50", res.Balance)
	require.Len(t, res.Entries, 1)
	assert.Equal(t, "DEPOSIT", res.Entries[0].Type)

	// numeric amounts are accepted too
	status, raw = do(t, s, http.MethodPost, fmt.Sprintf("/api/v1/accounts/%d/withdraw", acc.ID), `{"amount":500}`)
	require.Equal(t, http.StatusOK, status, string(raw))
	assert.Equal(t, "500.50", decode[operationResponse](t, raw).Balance)
}

func TestErrorMapping(t *testing.T) {
	s := newTestServer(t)
	acc := openTestAccount(t, s, "alice")

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		title  string
	}{
		{
			name:   "below minimum deposit",
			method: http.MethodPost,
			path:   fmt.Sprintf("/api/v1/accounts/%d/deposit", acc.ID),
			body:   `{"amount":"10"}`,
			status: http.StatusUnprocessableEntity,
			title:  string(validation.CodeBelowMinimum),
		},
		{
			name:   "insufficient funds",
			method: http.MethodPost,
			path:   fmt.Sprintf("/api/v1/accounts/%d/withdraw", acc.ID),
			body:   `{"amount":"600"}`,
			status: http.StatusUnprocessableEntity,
			title:  string(validation.CodeInsufficientFunds),
		},
		{
			name:   "unknown account",
			method: http.MethodGet,
			path:   "/api/v1/accounts/999",
			status: http.StatusNotFound,
			title:  "not_found",
		},
		{
			name:   "unknown loan",
			method: http.MethodPost,
			path:   "/api/v1/loans/999/pay",
			status: http.StatusNotFound,
			title:  "not_found",
		},
		{
			name:   "bad id",
			method: http.MethodGet,
			path:   "/api/v1/accounts/abc",
			status: http.StatusBadRequest,
			title:  "request_error",
		},
		{
			name:   "malformed body",
			method: http.MethodPost,
			path:   fmt.Sprintf("/api/v1/accounts/%d/deposit", acc.ID),
			body:   `{"amount":`,
			status: http.StatusBadRequest,
			title:  "request_error",
		},
		{
			name:   "bad report date",
			method: http.MethodGet,
			path:   fmt.Sprintf("/api/v1/accounts/%d/report?start=2024-13-01", acc.ID),
			status: http.StatusUnprocessableEntity,
			title:  string(validation.CodeInvalidDate),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, raw := do(t, s, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, status, string(raw))

			body := decode[ErrorResponse](t, raw)
			assert.Equal(t, tt.title, body.Title)
			assert.Equal(t, fmt.Sprint(tt.status), body.Code)
		})
	}
}

func TestTransfer(t *testing.T) {
	s := newTestServer(t)
	alice := openTestAccount(t, s, "alice")
	bob := openTestAccount(t, s, "bob")

	status, _ := do(t, s, http.MethodPost, fmt.Sprintf("/api/v1/accounts/%d/deposit", alice.ID), `{"amount":"1000"}`)
	require.Equal(t, http.StatusOK, status)

	status, raw := do(t, s, http.MethodPost, fmt.Sprintf("/api/v1/accounts/%d/transfer", alice.ID),
		fmt.Sprintf(`{"amount":"250","target_account_no":%q}`, bob.AccountNo))
	require.Equal(t, http.StatusOK, status, string(raw))

	res := decode[operationResponse](t, raw)
	assert.Equal(t, "750.00", res.Balance)
	require.Len(t, res.Entries, 2)
	assert.Equal(t, "-250.00", res.Entries[0].Amount)
	assert.Equal(t, "250.00", res.Entries[1].Amount)
	assert.Equal(t, res.Entries[0].TransferRef, res.Entries[1].TransferRef)

	status, raw = do(t, s, http.MethodPost, fmt.Sprintf("/api/v1/accounts/%d/transfer", alice.ID),
		`{"amount":"10","target_account_no":"000000"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, string(validation.CodeUnknownTarget), decode[ErrorResponse](t, raw).Title)
}

func TestLoanLifecycle(t *testing.T) {
	s := newTestServer(t)
	acc := openTestAccount(t, s, "alice")

	status, _ := do(t, s, http.MethodPost, fmt.Sprintf("/api/v1/accounts/%d/deposit", acc.ID), `{"amount":"1000"}`)
	require.Equal(t, http.StatusOK, status)

	status, raw := do(t, s, http.MethodPost, fmt.Sprintf("/api/v1/accounts/%d/loans", acc.ID), `{"amount":"400"}`)
	require.Equal(t, http.StatusCreated, status, string(raw))
	loan := decode[operationResponse](t, raw).Entries[0]
	require.NotNil(t, loan.LoanApproved)
	assert.False(t, *loan.LoanApproved)

	// pending loans cannot be paid
	status, raw = do(t, s, http.MethodPost, fmt.Sprintf("/api/v1/loans/%d/pay", loan.ID), "")
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, string(validation.CodeLoanNotPayable), decode[ErrorResponse](t, raw).Title)

	status, raw = do(t, s, http.MethodPost, fmt.Sprintf("/api/v1/loans/%d/approve", loan.ID), "")
	require.Equal(t, http.StatusOK, status, string(raw))

	status, raw = do(t, s, http.MethodPost, fmt.Sprintf("/api/v1/loans/%d/pay", loan.ID), "")
	require.Equal(t, http.StatusOK, status, string(raw))
	assert.Equal(t, "600.00", decode[operationResponse](t, raw).Balance)

	status, raw = do(t, s, http.MethodGet, fmt.Sprintf("/api/v1/accounts/%d/loans", acc.ID), "")
	require.Equal(t, http.StatusOK, status)
	loans := decode[struct {
		Loans []entryResponse `json:"loans"`
	}](t, raw).Loans
	assert.Empty(t, loans, "paid loans leave the outstanding list")
}

func TestReport(t *testing.T) {
	s := newTestServer(t)
	acc := openTestAccount(t, s, "alice")

	for _, amount := range []string{"100", "200"} {
		status, _ := do(t, s, http.MethodPost, fmt.Sprintf("/api/v1/accounts/%d/deposit", acc.ID),
			fmt.Sprintf(`{"amount":%q}`, amount))
		require.Equal(t, http.StatusOK, status)
	}

	status, raw := do(t, s, http.MethodGet, fmt.Sprintf("/api/v1/accounts/%d/report", acc.ID), "")
	require.Equal(t, http.StatusOK, status, string(raw))

	r := decode[reportResponse](t, raw)
	assert.Equal(t, acc.AccountNo, r.AccountNo)
	assert.Equal(t, "300.00", r.PeriodSum)
	assert.Len(t, r.Entries, 2)
	assert.Empty(t, r.Start)
}
