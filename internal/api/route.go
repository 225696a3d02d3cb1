package api

import (
	v1 "github.com/Calvin-77/movie-store-app/internal/api/v1"
	"github.com/Calvin-77/movie-store-app/internal/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, handler *v1.Handler, tokens *auth.TokenManager) {
	authRequired := auth.Required(tokens)
	authOptional := auth.Optional(tokens)

	app.Get("/ping", handler.Pong)

	app.Post("/users", handler.Register)
	app.Post("/authentications", handler.Login)
	app.Get("/users/profile", authRequired, handler.GetUserProfile)
	app.Put("/users/profile", authRequired, handler.UpdateUserProfile)
	app.Get("/users/purchased-movies", authRequired, handler.GetUserPurchasedMovies)

	app.Get("/movies", handler.GetAllMovies)
	app.Get("/movies/:movieId", authOptional, handler.GetMovieDetails)
	app.Post("/movies", authRequired, handler.AddMovie)
	app.Put("/movies/:movieId", authRequired, handler.UpdateMovie)
	app.Delete("/movies/:movieId", authRequired, handler.DeleteMovie)

	app.Post("/topup", authRequired, handler.TopupBalance)
	app.Post("/purchase", authRequired, handler.PurchaseMovie)
	app.Get("/topup/history", authRequired, handler.GetUserTopupHistory)
	app.Get("/transactions/history", authRequired, handler.GetUserTransactionHistory)
	app.Get("/sales", authRequired, handler.GetAllSalesData)
}
