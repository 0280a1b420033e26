package handler

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"campusdocs/internal/model"
	"campusdocs/internal/service"
)

// CreateEvent registers an event for the upcoming-event notifier.
//
// @Summary Register an event
// @Tags events
// @Accept json
// @Produce json
// @Param body body model.EventRequest true "event"
// @Success 201 {object} model.Event
// @Failure 400 {object} errorPayload
// @Router /events [post]
func CreateEvent(svc service.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.EventRequest
		if err := json.Unmarshal(c.Body(), &req); err != nil {
			return badBody(c, "request body must be a JSON object")
		}
		ev, err := svc.Create(c.UserContext(), req)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(ev)
	}
}

// ListEvents lists registered events by start time.
//
// @Summary List events
// @Tags events
// @Param limit query int false "page size" default(10)
// @Param offset query int false "page offset" default(0)
// @Success 200 {object} service.EventListResult
// @Router /events [get]
func ListEvents(svc service.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, code, msg := pagination(c)
		if code != "" {
			return writeError(c, fiber.StatusBadRequest, code, msg)
		}
		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}
