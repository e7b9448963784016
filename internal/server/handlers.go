package server

import (
	"strconv"

	"github.com/Mahafuj2040/mamar-bank/internal/validation"
	"github.com/gofiber/fiber/v2"
)

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) openAccount(c *fiber.Ctx) error {
	var req openAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	acc, err := s.svc.Account.OpenAccount(c.UserContext(), validation.OpenAccountInput{
		OwnerRef:  req.OwnerRef,
		Type:      req.AccountType,
		Gender:    req.Gender,
		BirthDate: req.BirthDate,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(toAccountResponse(acc))
}

func (s *Server) getAccount(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	acc, err := s.svc.Account.GetAccount(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(toAccountResponse(acc))
}

func (s *Server) deposit(c *fiber.Ctx) error {
	id, req, err := parseAmountRequest(c)
	if err != nil {
		return err
	}

	res, err := s.svc.Transaction.Deposit(c.UserContext(), id, req.Amount)
	if err != nil {
		return err
	}
	return c.JSON(toOperationResponse(res, s.loc))
}

func (s *Server) withdraw(c *fiber.Ctx) error {
	id, req, err := parseAmountRequest(c)
	if err != nil {
		return err
	}

	res, err := s.svc.Transaction.Withdraw(c.UserContext(), id, req.Amount)
	if err != nil {
		return err
	}
	return c.JSON(toOperationResponse(res, s.loc))
}

func (s *Server) requestLoan(c *fiber.Ctx) error {
	id, req, err := parseAmountRequest(c)
	if err != nil {
		return err
	}

	res, err := s.svc.Transaction.RequestLoan(c.UserContext(), id, req.Amount)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(toOperationResponse(res, s.loc))
}

func (s *Server) listLoans(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	loans, err := s.svc.Transaction.ListLoans(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"loans": toEntryResponses(loans, s.loc)})
}

func (s *Server) transfer(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req transferRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	res, err := s.svc.Transaction.Transfer(c.UserContext(), id, req.Amount, req.TargetAccountNo)
	if err != nil {
		return err
	}
	return c.JSON(toOperationResponse(res, s.loc))
}

func (s *Server) report(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	r, err := s.svc.Report.RangeFromStrings(c.UserContext(), id, c.Query("start"), c.Query("end"))
	if err != nil {
		return err
	}
	return c.JSON(toReportResponse(r, s.loc))
}

func (s *Server) payLoan(c *fiber.Ctx) error {
	loanID, err := paramID(c, "loanID")
	if err != nil {
		return err
	}

	res, err := s.svc.Transaction.PayLoan(c.UserContext(), loanID)
	if err != nil {
		return err
	}
	return c.JSON(toOperationResponse(res, s.loc))
}

func (s *Server) approveLoan(c *fiber.Ctx) error {
	loanID, err := paramID(c, "loanID")
	if err != nil {
		return err
	}

	res, err := s.svc.Transaction.ApproveLoan(c.UserContext(), loanID)
	if err != nil {
		return err
	}
	return c.JSON(toOperationResponse(res, s.loc))
}

func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

func parseAmountRequest(c *fiber.Ctx) (int64, amountRequest, error) {
	var req amountRequest

	id, err := paramID(c, "id")
	if err != nil {
		return 0, req, err
	}
	if err := c.BodyParser(&req); err != nil {
		return 0, req, fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	return id, req, nil
}
