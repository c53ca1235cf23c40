package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"devicehub-backend/config"
	"devicehub-backend/internal/model"
	"devicehub-backend/internal/repository"
	"devicehub-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestApp wires the full router against an in-memory database.
func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A second connection would see its own empty in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Tag{}, &model.Sensor{}, &model.Device{}))

	app := fiber.New()
	routes.SetupHealthRoutes(app)
	routes.SetupUserRoutes(app, db)
	routes.SetupDeviceRoutes(app, db)
	routes.SetupTagRoutes(app, db)
	routes.SetupSensorRoutes(app, db)

	return app, db
}

func createUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()

	user, err := repository.NewUserRepository(db).CreateUser(email, "Test User", "testpass123")
	require.NoError(t, err)
	return user
}

func authToken(t *testing.T, user *model.User) string {
	t.Helper()

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(config.JWTSecret())
	require.NoError(t, err)
	return token
}

// doJSON sends a JSON request, with a bearer token when one is given.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func dataObject(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	body := decodeBody(t, resp)
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok, "response should carry a data object, got %v", body)
	return data
}

func dataList(t *testing.T, resp *http.Response) []interface{} {
	t.Helper()

	body := decodeBody(t, resp)
	data, ok := body["data"].([]interface{})
	require.True(t, ok, "response should carry a data list, got %v", body)
	return data
}

func fieldErrors(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	body := decodeBody(t, resp)
	errs, ok := body["errors"].(map[string]interface{})
	require.True(t, ok, "response should carry field errors, got %v", body)
	return errs
}
