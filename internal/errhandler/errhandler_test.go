package errhandler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/Mahafuj2040/mamar-bank/internal/service"
	"github.com/Mahafuj2040/mamar-bank/internal/validation"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
)

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "rule violation shows reason",
			err:  fmt.Errorf("wrapped: %w", validation.NewViolation(validation.CodeSelfTransfer, "you cannot transfer to your own account")),
			want: "you cannot transfer to your own account",
		},
		{
			name: "not found",
			err:  &service.NotFoundError{Entity: "loan", Key: "12"},
			want: "loan '12' not found",
		},
		{
			name: "conflict",
			err:  fmt.Errorf("%w: lock wait timed out", service.ErrConcurrencyConflict),
			want: "the account is busy, please try again",
		},
		{
			name: "persistence hides detail",
			err:  fmt.Errorf("%w: disk I/O error", service.ErrPersistence),
			want: "the operation could not be saved, nothing was changed",
		},
		{
			name: "other",
			err:  errors.New("boom"),
			want: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Message(tt.err))
		})
	}
}

func TestIsInterrupt(t *testing.T) {
	assert.True(t, IsInterrupt(terminal.InterruptErr))
	assert.True(t, IsInterrupt(fmt.Errorf("prompt: %w", huh.ErrUserAborted)))
	assert.False(t, IsInterrupt(errors.New("disk full")))
}
