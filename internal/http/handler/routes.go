package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"coffeeapi/internal/model"
	"coffeeapi/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// db may be nil when the catalog is not backed by SQL.
func RegisterRoutes(app *fiber.App, db *sql.DB, coffeeSvc service.CoffeeService, snapSvc service.SnapshotService, greeting model.Greeting) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Get("/coffees", ListCoffees(coffeeSvc))
	app.Post("/coffees", CreateCoffee(coffeeSvc))
	app.Get("/coffees/:id", GetCoffee(coffeeSvc))
	app.Put("/coffees/:id", ReplaceCoffee(coffeeSvc))
	app.Delete("/coffees/:id", DeleteCoffee(coffeeSvc))

	app.Get("/greeting", GetGreeting(greeting))
	app.Get("/greeting/coffee", GetGreetingCoffee(greeting))

	app.Post("/snapshots", CreateSnapshot(snapSvc))
}
