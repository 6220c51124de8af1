package controllers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prometheus-first/worldguide/internal/pkg/usercontext"
)

type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func loggedInAs(userID uint, username string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(usercontext.KeyUserContext, usercontext.UserContext{
			UserID:     userID,
			Username:   username,
			IsLoggedIn: true,
		})
		return c.Next()
	}
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (*apiResponse, int) {
	t.Helper()

	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed apiResponse
	require.NoError(t, json.Unmarshal(raw, &parsed))

	return &parsed, resp.StatusCode
}

func postForm(t *testing.T, app *fiber.App, path, form string) (*apiResponse, int) {
	t.Helper()

	req := httptest.NewRequest("POST", path, strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var parsed apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))

	return &parsed, resp.StatusCode
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	app := fiber.New()
	app.Post("/api/register", HandleAPIRegister)

	body, status := postForm(t, app, "/api/register", "username=tester&email=t@example.com")

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.False(t, body.Success)
}

func TestRegisterRejectsPasswordMismatch(t *testing.T) {
	app := fiber.New()
	app.Post("/api/register", HandleAPIRegister)

	form := "username=tester&email=t@example.com&password=abc123&confirm_password=xyz789"
	body, status := postForm(t, app, "/api/register", form)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.False(t, body.Success)
	assert.Equal(t, "passwords do not match", body.Message)
}

func TestLoginRejectsMissingFields(t *testing.T) {
	app := fiber.New()
	app.Post("/api/login", HandleAPILogin)

	body, status := postForm(t, app, "/api/login", "username=tester")

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.False(t, body.Success)
}

func TestPublishRejectsMissingBody(t *testing.T) {
	app := fiber.New()
	app.Post("/api/article/publish", loggedInAs(1, "tester"), HandleAPIArticlePublish)

	body, status := postJSON(t, app, "/api/article/publish", "not json")

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.False(t, body.Success)
}

func TestPublishRejectsMissingFields(t *testing.T) {
	app := fiber.New()
	app.Post("/api/article/publish", loggedInAs(1, "tester"), HandleAPIArticlePublish)

	body, status := postJSON(t, app, "/api/article/publish", `{"title":"Valid title","content":"","category":"tech"}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.False(t, body.Success)
}

func TestPublishRejectsTitleOutOfBounds(t *testing.T) {
	app := fiber.New()
	app.Post("/api/article/publish", loggedInAs(1, "tester"), HandleAPIArticlePublish)

	short := `{"title":"abcd","content":"x","category":"tech","tags":[]}`
	body, status := postJSON(t, app, "/api/article/publish", short)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, titleLengthMessage, body.Message)

	long := `{"title":"` + strings.Repeat("x", 101) + `","content":"x","category":"tech","tags":[]}`
	body, status = postJSON(t, app, "/api/article/publish", long)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, titleLengthMessage, body.Message)
}

func TestUpdateRejectsInvalidArticleID(t *testing.T) {
	app := fiber.New()
	app.Post("/api/article/update/:id", loggedInAs(1, "tester"), HandleAPIArticleUpdate)

	body, status := postJSON(t, app, "/api/article/update/not-a-uuid", `{"title":"Valid title","content":"x","category":"tech"}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "invalid article id", body.Message)
}

func TestDeleteRejectsInvalidArticleID(t *testing.T) {
	app := fiber.New()
	app.Post("/api/article/delete/:id", loggedInAs(1, "tester"), HandleAPIArticleDelete)

	body, status := postJSON(t, app, "/api/article/delete/123", `{}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.False(t, body.Success)
}

func TestDraftDeleteRejectsInvalidID(t *testing.T) {
	app := fiber.New()
	app.Post("/api/draft/delete/:id", loggedInAs(1, "tester"), HandleAPIDraftDelete)

	body, status := postJSON(t, app, "/api/draft/delete/nope", `{}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "invalid draft id", body.Message)
}
