package config

import (
	"os"
	"strconv"
)

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// JWTSecret is shared by the login handler and the auth middleware. Override
// it in production; the fallback is only meant for local development.
func JWTSecret() []byte {
	return []byte(GetEnv("JWT_SECRET", "devicehub-dev-secret"))
}

// UploadDir is the root directory for stored device images. It is also the
// directory served at /uploads by the API binary.
func UploadDir() string {
	return GetEnv("UPLOAD_DIR", "./uploads")
}
