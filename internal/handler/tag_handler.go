package handler

import (
	"errors"
	"strconv"
	"strings"

	"devicehub-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type TagHandler struct {
	repo repository.TagRepository
}

func NewTagHandler(repo repository.TagRepository) *TagHandler {
	return &TagHandler{repo: repo}
}

// UpdateAttrRequest renames a tag or sensor. The pointer keeps an omitted
// name distinguishable from a blank one.
type UpdateAttrRequest struct {
	Name *string `json:"name"`
}

func (h *TagHandler) GetAll(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	assignedOnly, err := parseAssignedOnly(c.Query("assigned_only"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": fiber.Map{"assigned_only": "assigned_only must be an integer"},
		})
	}

	tags, err := h.repo.GetAllByUser(userID, assignedOnly)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch tags"})
	}

	return c.JSON(fiber.Map{"data": tagResponses(tags)})
}

func (h *TagHandler) Update(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tag not found"})
	}

	tag, err := h.repo.FindByIDAndUser(uint(id), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tag not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch tag"})
	}

	var req UpdateAttrRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if c.Method() == fiber.MethodPut && req.Name == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": fiber.Map{"name": "name is required"},
		})
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"errors": fiber.Map{"name": "name may not be blank"},
			})
		}
		tag.Name = name
	}

	if err := h.repo.Update(tag); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update tag"})
	}

	return c.JSON(fiber.Map{
		"message": "Tag updated",
		"data":    AttrResponse{ID: tag.ID, Name: tag.Name},
	})
}

func (h *TagHandler) Delete(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tag not found"})
	}

	tag, err := h.repo.FindByIDAndUser(uint(id), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tag not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch tag"})
	}

	if err := h.repo.Delete(tag); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete tag"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// parseAssignedOnly reads the 0/1 filter flag. Any nonzero integer enables it.
func parseAssignedOnly(raw string) (bool, error) {
	if raw == "" {
		return false, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return false, err
	}
	return n != 0, nil
}
