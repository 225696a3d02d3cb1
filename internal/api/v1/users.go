package v1

import (
	"github.com/Calvin-77/movie-store-app/internal/api/contract"
	"github.com/Calvin-77/movie-store-app/internal/auth"
	"github.com/Calvin-77/movie-store-app/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (h *Handler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := h.XValidator.ParseAndValidate(c, &req); err != nil {
		return err
	}

	cmd := service.RegisterCommand{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}

	profile, err := h.users.Register(c.UserContext(), cmd)
	if err != nil {
		h.logger.Error("Error registering user",
			zap.String("username", req.Username),
			zap.Error(err),
		)
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(contract.Success(fiber.Map{"addedUser": profile}))
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := h.XValidator.ParseAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.auth.Login(c.UserContext(), service.LoginCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(contract.Success(result))
}

func (h *Handler) GetUserProfile(c *fiber.Ctx) error {
	profile, err := h.users.GetProfile(c.UserContext(), auth.UserID(c))
	if err != nil {
		return err
	}

	return c.JSON(contract.Success(fiber.Map{"user": profile}))
}

func (h *Handler) UpdateUserProfile(c *fiber.Ctx) error {
	var req UpdateProfileRequest
	if err := h.XValidator.ParseAndValidate(c, &req); err != nil {
		return err
	}

	cmd := service.UpdateProfileCommand{
		UserID:   auth.UserID(c),
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}

	if err := h.users.UpdateProfile(c.UserContext(), cmd); err != nil {
		return err
	}

	return c.JSON(contract.Response{Status: "success", Message: "profile updated"})
}
