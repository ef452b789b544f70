package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"coffeeapi/internal/model"
	"coffeeapi/internal/service"
)

// pathID copies the :id param out of the request buffer, which fasthttp
// reuses once the handler returns.
func pathID(c *fiber.Ctx) string {
	return utils.CopyString(c.Params("id"))
}

// ListCoffees returns the whole catalog.
//
// @Summary List coffees
// @Tags coffees
// @Produce json
// @Success 200 {array} model.Coffee
// @Router /coffees [get]
func ListCoffees(svc service.CoffeeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			return internalError(c)
		}
		return c.JSON(items)
	}
}

// GetCoffee returns the coffee or JSON null when the id is unknown.
//
// @Summary Get a coffee
// @Tags coffees
// @Produce json
// @Param id path string true "Coffee ID"
// @Success 200 {object} model.Coffee "null when absent"
// @Router /coffees/{id} [get]
func GetCoffee(svc service.CoffeeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		coffee, err := svc.Get(c.UserContext(), pathID(c))
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return c.JSON(nil)
			}
			if errors.Is(err, service.ErrIDRequired) {
				return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "id is required")
			}
			return internalError(c)
		}
		return c.JSON(coffee)
	}
}

// CreateCoffee stores the body. A missing id is assigned by the server.
//
// @Summary Create a coffee
// @Tags coffees
// @Accept json
// @Produce json
// @Param coffee body model.Coffee true "Coffee; id optional"
// @Success 200 {object} model.Coffee
// @Failure 400 {object} errorPayload
// @Router /coffees [post]
func CreateCoffee(svc service.CoffeeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.Coffee
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}

		stored, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return internalError(c)
		}
		return c.JSON(stored)
	}
}

// ReplaceCoffee echoes the body with 200 when the path id exists, otherwise
// stores it and answers 201. The stored key is the body id, not the path id.
//
// @Summary Replace or create a coffee
// @Tags coffees
// @Accept json
// @Produce json
// @Param id path string true "Coffee ID"
// @Param coffee body model.Coffee true "Coffee"
// @Success 200 {object} model.Coffee
// @Success 201 {object} model.Coffee
// @Failure 400 {object} errorPayload
// @Router /coffees/{id} [put]
func ReplaceCoffee(svc service.CoffeeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.Coffee
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}

		out, created, err := svc.Replace(c.UserContext(), pathID(c), in)
		if err != nil {
			if errors.Is(err, service.ErrIDRequired) {
				return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "id is required")
			}
			return internalError(c)
		}

		status := fiber.StatusOK
		if created {
			status = fiber.StatusCreated
		}
		return c.Status(status).JSON(out)
	}
}

// DeleteCoffee removes a coffee. Unknown ids still answer 200.
//
// @Summary Delete a coffee
// @Tags coffees
// @Param id path string true "Coffee ID"
// @Success 200
// @Router /coffees/{id} [delete]
func DeleteCoffee(svc service.CoffeeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), pathID(c)); err != nil {
			if errors.Is(err, service.ErrIDRequired) {
				return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "id is required")
			}
			return internalError(c)
		}
		c.Status(fiber.StatusOK)
		return nil
	}
}
