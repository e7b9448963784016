// Package server exposes the banking operations over HTTP/JSON.
package server

import (
	"context"
	"time"

	"github.com/Mahafuj2040/mamar-bank/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

type Server struct {
	app *fiber.App
	svc *service.Service
	log *zap.Logger
	loc *time.Location
}

func New(svc *service.Service, log *zap.Logger, loc *time.Location) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	if loc == nil {
		loc = time.UTC
	}

	s := &Server{svc: svc, log: log.Named("http"), loc: loc}
	s.app = fiber.New(fiber.Config{
		AppName:               "mamar",
		DisableStartupMessage: true,
		ErrorHandler:          s.handleError,
	})
	s.app.Use(recover.New())
	s.app.Use(s.withLogging)
	s.routes()

	return s
}

func (s *Server) routes() {
	s.app.Get("/health", s.health)

	api := s.app.Group("/api/v1")

	api.Post("/accounts", s.openAccount)
	api.Get("/accounts/:id", s.getAccount)
	api.Post("/accounts/:id/deposit", s.deposit)
	api.Post("/accounts/:id/withdraw", s.withdraw)
	api.Post("/accounts/:id/loans", s.requestLoan)
	api.Get("/accounts/:id/loans", s.listLoans)
	api.Post("/accounts/:id/transfer", s.transfer)
	api.Get("/accounts/:id/report", s.report)

	api.Post("/loans/:loanID/pay", s.payLoan)
	api.Post("/loans/:loanID/approve", s.approveLoan)
}

// App returns the underlying fiber app.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen blocks serving addr until Shutdown is called.
func (s *Server) Listen(addr string) error {
	s.log.Info("listening", zap.String("addr", addr))
	return s.app.Listen(addr)
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func (s *Server) withLogging(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	status := c.Response().StatusCode()
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
	}
	s.log.Info("request",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Int("status", status),
		zap.Duration("duration", time.Since(start)),
	)
	return err
}
