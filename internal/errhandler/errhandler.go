package errhandler

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/Mahafuj2040/mamar-bank/internal/service"
	"github.com/Mahafuj2040/mamar-bank/internal/validation"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
)

// Message translates an engine error into what the user should read.
// Storage failures are reduced to a generic message.
func Message(err error) string {
	if v, ok := validation.AsViolation(err); ok {
		return v.Reason
	}

	var nf *service.NotFoundError
	switch {
	case errors.As(err, &nf):
		return fmt.Sprintf("%s '%s' not found", nf.Entity, nf.Key)
	case errors.Is(err, service.ErrConcurrencyConflict):
		return "the account is busy, please try again"
	case errors.Is(err, service.ErrPersistence):
		return "the operation could not be saved, nothing was changed"
	}
	return err.Error()
}

func IsInterrupt(err error) bool {
	return errors.Is(err, terminal.InterruptErr) ||
		errors.Is(err, huh.ErrUserAborted) ||
		strings.Contains(err.Error(), "interrupt")
}

func HandleError(err error) {
	if IsInterrupt(err) {
		pterm.Warning.Println("Operation Cancelled")
		os.Exit(0)
	}

	if _, ok := validation.AsViolation(err); ok {
		pterm.Warning.Println(Message(err))
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Error: %s\n", Message(err))
	os.Exit(1)
}
