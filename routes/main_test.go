package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"checkmate/config"
	"checkmate/storage"
	"checkmate/utils"
)

var (
	app *fiber.App
	cfg *config.Config
)

func TestMain(m *testing.M) {
	cfg = &config.Config{
		DBHost:     "localhost",
		DBPort:     "5432",
		DBUser:     "postgres",
		DBPassword: "postgres",
		DBName:     "checkmate_test",
		JWTSecret:  "testsecret",
		ServerPort: "8080",
	}

	db, err := utils.InitDB(cfg)
	if err != nil {
		panic(err)
	}

	app = fiber.New()
	SetupRoutes(app, storage.NewGormStorage(db), cfg)

	os.Exit(m.Run())
}

func doRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	var decoded map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

// registerUser creates an account through the API and returns the token
// and the created user payload.
func registerUser(t *testing.T, role string) (string, map[string]interface{}) {
	t.Helper()

	resp, body := doRequest(t, "POST", "/api/auth/register", "", map[string]interface{}{
		"firstName": "Test",
		"lastName":  "User",
		"email":     fmt.Sprintf("%s-%s@example.com", role, uuid.NewString()[:8]),
		"password":  "secret123",
		"role":      role,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	data := body["data"].(map[string]interface{})
	token := data["token"].(string)
	user := data["user"].(map[string]interface{})
	return token, user
}
