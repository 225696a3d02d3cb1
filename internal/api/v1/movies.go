package v1

import (
	"encoding/base64"

	"github.com/Calvin-77/movie-store-app/internal/api/contract"
	"github.com/Calvin-77/movie-store-app/internal/auth"
	"github.com/Calvin-77/movie-store-app/internal/service"
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetAllMovies(c *fiber.Ctx) error {
	movies, err := h.movies.GetAllMovies(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(contract.Success(fiber.Map{"movies": movies}))
}

func (h *Handler) GetMovieDetails(c *fiber.Ctx) error {
	details, err := h.movies.GetMovieDetails(c.UserContext(), c.Params("movieId"), auth.UserID(c))
	if err != nil {
		return err
	}

	return c.JSON(contract.Success(fiber.Map{"movie": details}))
}

func (h *Handler) AddMovie(c *fiber.Ctx) error {
	var req AddMovieRequest
	if err := h.XValidator.ParseAndValidate(c, &req); err != nil {
		return err
	}

	cmd := service.AddMovieCommand{
		RequesterID: auth.UserID(c),
		Title:       req.Title,
		Synopsis:    req.Synopsis,
		Price:       req.Price,
		Year:        req.Year,
		Video:       req.Video,
		Image:       decodeImage(req.Image),
	}

	movieID, err := h.movies.AddMovie(c.UserContext(), cmd)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(contract.Success(fiber.Map{"movieId": movieID}))
}

func (h *Handler) UpdateMovie(c *fiber.Ctx) error {
	var req UpdateMovieRequest
	if err := h.XValidator.ParseAndValidate(c, &req); err != nil {
		return err
	}

	cmd := service.UpdateMovieCommand{
		RequesterID: auth.UserID(c),
		MovieID:     c.Params("movieId"),
		Title:       req.Title,
		Synopsis:    req.Synopsis,
		Price:       req.Price,
		Year:        req.Year,
		Video:       req.Video,
		Image:       decodeImage(req.Image),
	}

	if err := h.movies.UpdateMovie(c.UserContext(), cmd); err != nil {
		return err
	}

	return c.JSON(contract.Response{Status: "success", Message: "movie updated"})
}

func (h *Handler) DeleteMovie(c *fiber.Ctx) error {
	if err := h.movies.DeleteMovie(c.UserContext(), auth.UserID(c), c.Params("movieId")); err != nil {
		return err
	}

	return c.JSON(contract.Response{Status: "success", Message: "movie deleted"})
}

func (h *Handler) GetUserPurchasedMovies(c *fiber.Ctx) error {
	movies, err := h.movies.GetUserPurchasedMovies(c.UserContext(), auth.UserID(c))
	if err != nil {
		return err
	}

	return c.JSON(contract.Success(fiber.Map{"movies": movies}))
}

func decodeImage(encoded string) []byte {
	if encoded == "" {
		return nil
	}
	image, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil
	}
	return image
}
