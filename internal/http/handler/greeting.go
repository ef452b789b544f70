package handler

import (
	"github.com/gofiber/fiber/v2"

	"coffeeapi/internal/model"
)

// GetGreeting returns greeting.name as plain text.
//
// @Summary Configured greeting
// @Tags greeting
// @Produce plain
// @Success 200 {string} string
// @Router /greeting [get]
func GetGreeting(g model.Greeting) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Type("txt", "utf-8")
		return c.SendString(g.Name)
	}
}

// GetGreetingCoffee returns greeting.coffee as plain text.
//
// @Summary Configured coffee
// @Tags greeting
// @Produce plain
// @Success 200 {string} string
// @Router /greeting/coffee [get]
func GetGreetingCoffee(g model.Greeting) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Type("txt", "utf-8")
		return c.SendString(g.Coffee)
	}
}
