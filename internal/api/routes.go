package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	api.Get("/health", handler.Health)

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Get("/me", handler.AuthRequired, handler.CurrentUser)

	api.Get("/users", handler.ListUsers)
	api.Get("/users/me", handler.AuthRequired, handler.CurrentUser)
	api.Get("/users/:id", handler.GetUser)

	admin := api.Group("/admin")
	admin.Post("/login", handler.AdminLogin)
	admin.Post("/register", handler.AdminRegister)
	admin.Get("/users-stats", handler.AdminStats)
	admin.Post("/eco-actions", handler.AuthRequired, handler.AdminRequired, handler.CreateEcoAction)

	settings := api.Group("/user-settings", handler.AuthRequired)
	settings.Get("", handler.GetSettings)
	settings.Post("", handler.UpdateSettings)

	simulations := api.Group("/simulations", handler.AuthRequired)
	simulations.Get("", handler.ListSimulations)
	simulations.Post("", handler.CreateSimulation)
	simulations.Delete("/:id", handler.DeleteSimulation)

	locations := api.Group("/locations", handler.AuthRequired)
	locations.Get("", handler.ListLocations)
	locations.Post("", handler.CreateLocation)
	locations.Delete("/:id", handler.DeleteLocation)

	api.Get("/environment/current", handler.CurrentEnvironment)

	ecoActions := api.Group("/eco-actions")
	ecoActions.Get("", handler.ListEcoActions)
	ecoActions.Post("/complete", handler.AuthRequired, handler.CompleteEcoAction)
	ecoActions.Get("/history", handler.AuthRequired, handler.ActionHistory)
}
