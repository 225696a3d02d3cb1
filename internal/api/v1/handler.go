package v1

import (
	"github.com/Calvin-77/movie-store-app/internal/api/validator"
	"github.com/Calvin-77/movie-store-app/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handler struct {
	logger     *zap.Logger
	balance    service.BalanceService
	movies     service.MovieService
	reports    service.ReportService
	users      service.UserService
	auth       service.AuthService
	XValidator validator.IXValidator
}

func NewHandler(logger *zap.Logger, balance service.BalanceService, movies service.MovieService,
	reports service.ReportService, users service.UserService, auth service.AuthService,
	XValidator validator.IXValidator) *Handler {
	return &Handler{
		logger:     logger,
		balance:    balance,
		movies:     movies,
		reports:    reports,
		users:      users,
		auth:       auth,
		XValidator: XValidator,
	}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}
