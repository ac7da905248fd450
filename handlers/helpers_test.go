package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/taskforge/go-tasks/auth"
	"github.com/taskforge/go-tasks/handlers"
	"github.com/taskforge/go-tasks/middleware"
	"github.com/taskforge/go-tasks/repository"
)

const (
	testSecret   = "0123456789abcdef0123456789abcdef"
	testIssuer   = "tasks-api"
	testAudience = "tasks-client"
)

func newTestIssuer() *auth.TokenIssuer {
	return auth.NewTokenIssuer(testSecret, testIssuer, testAudience)
}

// newTestApp dựng app với route giống production, nhưng trên repo giả
func newTestApp(users repository.UserRepository, tasks repository.TaskRepository, issuer *auth.TokenIssuer) *fiber.App {
	app := fiber.New()

	authHandler := &handlers.AuthHandler{Users: users, Issuer: issuer}
	taskHandler := &handlers.TaskHandler{Tasks: tasks}
	protected := middleware.Protected(auth.NewVerifier(testSecret, testIssuer, testAudience))

	authGroup := app.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/all-users", protected, authHandler.AllUsers)

	taskGroup := app.Group("/tasks", protected)
	taskGroup.Get("/", taskHandler.GetAll)
	taskGroup.Post("/", taskHandler.Create)
	taskGroup.Get("/categoria/:categoria", taskHandler.GetByCategory)
	taskGroup.Get("/:id", taskHandler.GetByID)
	taskGroup.Put("/:id", taskHandler.Update)
	taskGroup.Delete("/:id", taskHandler.Delete)

	return app
}

func issueToken(t *testing.T, userID int64, username string) string {
	t.Helper()
	token, _, err := newTestIssuer().Issue(userID, username)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	return token
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	return resp
}

// envelope là khung response {status, message, data} dùng chung
type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return env
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(raw)
}
