package v1

import (
	"github.com/Calvin-77/movie-store-app/internal/api/contract"
	"github.com/Calvin-77/movie-store-app/internal/auth"
	"github.com/Calvin-77/movie-store-app/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (h *Handler) TopupBalance(c *fiber.Ctx) error {
	var req TopupRequest
	if err := h.XValidator.ParseAndValidate(c, &req); err != nil {
		return err
	}

	cmd := service.TopupCommand{
		UserID: auth.UserID(c),
		Amount: req.Amount,
	}

	result, err := h.balance.Topup(c.UserContext(), cmd)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(contract.Success(fiber.Map{
		"transactionId": result.TransactionID,
	}))
}

func (h *Handler) PurchaseMovie(c *fiber.Ctx) error {
	var req PurchaseRequest
	if err := h.XValidator.ParseAndValidate(c, &req); err != nil {
		return err
	}

	cmd := service.PurchaseCommand{
		UserID:  auth.UserID(c),
		MovieID: req.MovieID,
	}

	result, err := h.balance.Purchase(c.UserContext(), cmd)
	if err != nil {
		h.logger.Error("Error purchasing movie",
			zap.String("movie_id", req.MovieID),
			zap.Error(err),
		)
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(contract.Success(fiber.Map{
		"transactionId": result.TransactionID,
	}))
}

func (h *Handler) GetUserTopupHistory(c *fiber.Ctx) error {
	transactions, err := h.reports.GetUserTopupHistory(c.UserContext(), auth.UserID(c))
	if err != nil {
		return err
	}

	return c.JSON(contract.Success(fiber.Map{"transactions": transactions}))
}

func (h *Handler) GetUserTransactionHistory(c *fiber.Ctx) error {
	transactions, err := h.reports.GetUserTransactionHistory(c.UserContext(), auth.UserID(c))
	if err != nil {
		return err
	}

	return c.JSON(contract.Success(fiber.Map{"transactions": transactions}))
}

func (h *Handler) GetAllSalesData(c *fiber.Ctx) error {
	salesData, err := h.reports.GetAllSalesData(c.UserContext(), auth.UserID(c))
	if err != nil {
		return err
	}

	return c.JSON(contract.Success(fiber.Map{"salesData": salesData}))
}
