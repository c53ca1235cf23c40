package handler

import (
	"errors"
	"strconv"
	"strings"

	"devicehub-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SensorHandler struct {
	repo repository.SensorRepository
}

func NewSensorHandler(repo repository.SensorRepository) *SensorHandler {
	return &SensorHandler{repo: repo}
}

func (h *SensorHandler) GetAll(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	assignedOnly, err := parseAssignedOnly(c.Query("assigned_only"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": fiber.Map{"assigned_only": "assigned_only must be an integer"},
		})
	}

	sensors, err := h.repo.GetAllByUser(userID, assignedOnly)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch sensors"})
	}

	return c.JSON(fiber.Map{"data": sensorResponses(sensors)})
}

func (h *SensorHandler) Update(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Sensor not found"})
	}

	sensor, err := h.repo.FindByIDAndUser(uint(id), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Sensor not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch sensor"})
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
		sensor.Name = name
	}

	if err := h.repo.Update(sensor); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update sensor"})
	}

	return c.JSON(fiber.Map{
		"message": "Sensor updated",
		"data":    AttrResponse{ID: sensor.ID, Name: sensor.Name},
	})
}

func (h *SensorHandler) Delete(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Sensor not found"})
	}

	sensor, err := h.repo.FindByIDAndUser(uint(id), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Sensor not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch sensor"})
	}

	if err := h.repo.Delete(sensor); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete sensor"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
