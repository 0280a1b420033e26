package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"campusdocs/internal/model"
	"campusdocs/internal/service"
)

// pagination reads limit & offset query parameters. A non-empty code names the bad parameter.
func pagination(c *fiber.Ctx) (limit, offset int, code, msg string) {
	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil {
		return 0, 0, "INVALID_LIMIT", "invalid limit"
	}
	offset, err = strconv.Atoi(c.Query("offset", "0"))
	if err != nil {
		return 0, 0, "INVALID_OFFSET", "invalid offset"
	}
	return limit, offset, "", ""
}

// ListDocuments lists rendered documents with limit & offset, optionally filtered by kind.
//
// @Summary List rendered documents
// @Tags documents
// @Param kind query string false "certificate, id_card or invitation"
// @Param limit query int false "page size" default(10)
// @Param offset query int false "page offset" default(0)
// @Success 200 {object} service.DocumentListResult
// @Router /documents [get]
func ListDocuments(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, code, msg := pagination(c)
		if code != "" {
			return writeError(c, fiber.StatusBadRequest, code, msg)
		}
		res, err := docSvc.List(c.UserContext(), model.Kind(c.Query("kind")), limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetDocument returns one rendered document record.
//
// @Summary Get a rendered document
// @Tags documents
// @Param id path string true "document id"
// @Success 200 {object} model.RenderedDocument
// @Router /documents/{id} [get]
func GetDocument(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		doc, err := docSvc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(doc)
	}
}

// DeleteDocument removes a rendered document's file and record.
//
// @Summary Delete a rendered document
// @Tags documents
// @Param id path string true "document id"
// @Success 204
// @Router /documents/{id} [delete]
func DeleteDocument(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := docSvc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
