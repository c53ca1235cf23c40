package handler

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"devicehub-backend/config"
	"devicehub-backend/internal/model"
	"devicehub-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// maxDeviceValue mirrors the decimal(5,2) column: 3 integer digits, 2 fractional.
const maxDeviceValue = 999.99

type DeviceHandler struct {
	repo repository.DeviceRepository
}

func NewDeviceHandler(repo repository.DeviceRepository) *DeviceHandler {
	return &DeviceHandler{repo: repo}
}

// AttrInput names a tag or sensor in a device payload. Unknown names are
// created for the requesting user, known ones are reused.
type AttrInput struct {
	Name string `json:"name"`
}

type CreateDeviceRequest struct {
	Title       string      `json:"title"`
	TimeMinutes int         `json:"time_minutes"`
	Value       float64     `json:"value"`
	Link        string      `json:"link"`
	Description string      `json:"description"`
	Tags        []AttrInput `json:"tags"`
	Sensors     []AttrInput `json:"sensors"`
}

// UpdateDeviceRequest uses pointers so an omitted field can be told apart
// from a zero value. A nil Tags leaves assignments alone, an empty slice
// clears them.
type UpdateDeviceRequest struct {
	Title       *string      `json:"title"`
	TimeMinutes *int         `json:"time_minutes"`
	Value       *float64     `json:"value"`
	Link        *string      `json:"link"`
	Description *string      `json:"description"`
	Tags        *[]AttrInput `json:"tags"`
	Sensors     *[]AttrInput `json:"sensors"`
}

func (h *DeviceHandler) GetAll(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	tagIDs, err := parseIDList(c.Query("tags"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": fiber.Map{"tags": "tags must be a comma separated list of ids"},
		})
	}
	sensorIDs, err := parseIDList(c.Query("sensors"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": fiber.Map{"sensors": "sensors must be a comma separated list of ids"},
		})
	}

	devices, err := h.repo.GetAllByUser(userID, tagIDs, sensorIDs)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch devices"})
	}

	return c.JSON(fiber.Map{"data": toDeviceResponses(devices)})
}

func (h *DeviceHandler) GetByID(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Device not found"})
	}

	device, err := h.repo.FindByIDAndUser(uint(id), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Device not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch device"})
	}

	return c.JSON(fiber.Map{"data": toDeviceDetailResponse(*device, c.BaseURL())})
}

func (h *DeviceHandler) Create(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	var req CreateDeviceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	fieldErrors := validateDeviceFields(req.Title, req.TimeMinutes, req.Value)
	validateAttrInputs(fieldErrors, "tags", req.Tags)
	validateAttrInputs(fieldErrors, "sensors", req.Sensors)
	if len(fieldErrors) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": fieldErrors})
	}

	device := &model.Device{
		UserID:      userID,
		Title:       strings.TrimSpace(req.Title),
		TimeMinutes: req.TimeMinutes,
		Value:       roundValue(req.Value),
		Link:        req.Link,
		Description: req.Description,
	}
	if err := h.repo.CreateWithAttrs(device, attrNames(req.Tags), attrNames(req.Sensors)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create device"})
	}

	created, err := h.repo.FindByIDAndUser(device.ID, userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch device"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Device created",
		"data":    toDeviceDetailResponse(*created, c.BaseURL()),
	})
}

func (h *DeviceHandler) Update(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Device not found"})
	}

	device, err := h.repo.FindByIDAndUser(uint(id), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Device not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch device"})
	}

	var req UpdateDeviceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	fieldErrors := fiber.Map{}
	if c.Method() == fiber.MethodPut {
		// A full update must carry every required field.
		if req.Title == nil {
			fieldErrors["title"] = "title is required"
		}
		if req.TimeMinutes == nil {
			fieldErrors["time_minutes"] = "time_minutes is required"
		}
		if req.Value == nil {
			fieldErrors["value"] = "value is required"
		}
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		fieldErrors["title"] = "title may not be blank"
	}
	if req.TimeMinutes != nil && *req.TimeMinutes < 0 {
		fieldErrors["time_minutes"] = "time_minutes must not be negative"
	}
	if req.Value != nil && math.Abs(*req.Value) > maxDeviceValue {
		fieldErrors["value"] = "value must have no more than 5 digits in total"
	}
	if req.Tags != nil {
		validateAttrInputs(fieldErrors, "tags", *req.Tags)
	}
	if req.Sensors != nil {
		validateAttrInputs(fieldErrors, "sensors", *req.Sensors)
	}
	if len(fieldErrors) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": fieldErrors})
	}

	if req.Title != nil {
		device.Title = strings.TrimSpace(*req.Title)
	}
	if req.TimeMinutes != nil {
		device.TimeMinutes = *req.TimeMinutes
	}
	if req.Value != nil {
		device.Value = roundValue(*req.Value)
	}
	if req.Link != nil {
		device.Link = *req.Link
	}
	if req.Description != nil {
		device.Description = *req.Description
	}

	var tagNames, sensorNames []string
	if req.Tags != nil {
		tagNames = attrNames(*req.Tags)
	}
	if req.Sensors != nil {
		sensorNames = attrNames(*req.Sensors)
	}
	if err := h.repo.SaveWithAttrs(device, tagNames, sensorNames); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update device"})
	}

	updated, err := h.repo.FindByIDAndUser(device.ID, userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch device"})
	}

	return c.JSON(fiber.Map{
		"message": "Device updated",
		"data":    toDeviceDetailResponse(*updated, c.BaseURL()),
	})
}

func (h *DeviceHandler) Delete(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Device not found"})
	}

	device, err := h.repo.FindByIDAndUser(uint(id), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Device not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch device"})
	}

	if err := h.repo.Delete(device); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete device"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *DeviceHandler) UploadImage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Device not found"})
	}

	device, err := h.repo.FindByIDAndUser(uint(id), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Device not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch device"})
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": fiber.Map{"image": "No image was submitted"},
		})
	}
	if !isImageFilename(file.Filename) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": fiber.Map{"image": "Upload a valid image"},
		})
	}

	relPath := model.DeviceImageFilePath(file.Filename)
	destPath := filepath.Join(config.UploadDir(), strings.TrimPrefix(relPath, "uploads/"))

	if _, err := os.Stat(filepath.Dir(destPath)); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store image"})
		}
	}
	if err := c.SaveFile(file, destPath); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store image"})
	}

	device.Image = relPath
	if err := h.repo.Save(device); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update device"})
	}

	return c.JSON(fiber.Map{
		"message": "Image uploaded",
		"data": fiber.Map{
			"id":    device.ID,
			"image": c.BaseURL() + "/" + relPath,
		},
	})
}

// attrNames extracts the trimmed names from a tag or sensor payload. A nil
// input stays nil so the repository can tell "leave alone" from "clear".
func attrNames(inputs []AttrInput) []string {
	if inputs == nil {
		return nil
	}
	names := make([]string, 0, len(inputs))
	for _, in := range inputs {
		names = append(names, strings.TrimSpace(in.Name))
	}
	return names
}

func validateDeviceFields(title string, timeMinutes int, value float64) fiber.Map {
	fieldErrors := fiber.Map{}
	if strings.TrimSpace(title) == "" {
		fieldErrors["title"] = "title is required"
	}
	if timeMinutes < 0 {
		fieldErrors["time_minutes"] = "time_minutes must not be negative"
	}
	if math.Abs(value) > maxDeviceValue {
		fieldErrors["value"] = "value must have no more than 5 digits in total"
	}
	return fieldErrors
}

func validateAttrInputs(fieldErrors fiber.Map, field string, inputs []AttrInput) {
	for _, in := range inputs {
		if strings.TrimSpace(in.Name) == "" {
			fieldErrors[field] = "name may not be blank"
			return
		}
	}
}

func roundValue(v float64) float64 {
	return math.Round(v*100) / 100
}

// parseIDList splits a comma separated query value into ids. An empty
// value means no filter.
func parseIDList(raw string) ([]uint, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
		if err != nil {
			return nil, err
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}

func isImageFilename(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp":
		return true
	}
	return false
}
