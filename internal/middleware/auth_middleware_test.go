package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"troli/internal/middleware"
	"troli/internal/models"
	"troli/internal/repositories"
	"troli/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func setupGate(t *testing.T) (*fiber.App, *services.TokenService, *repositories.MockUserRepository) {
	t.Helper()

	tokenService, err := services.NewTokenService("test_jwt_secret")
	assert.NoError(t, err)

	userRepo := repositories.NewMockUserRepository()
	authService := services.NewAuthService(userRepo, tokenService)

	app := fiber.New()
	app.Get("/protected", middleware.AuthRequired(authService), func(c *fiber.Ctx) error {
		user := c.Locals(middleware.UserKey).(*models.User)
		return c.JSON(fiber.Map{"nickname": user.Nickname})
	})
	return app, tokenService, userRepo
}

func request(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	assert.NoError(t, err)
	return resp
}

func TestAuthRequired_MissingHeader(t *testing.T) {
	app, _, _ := setupGate(t)

	// No Authorization header at all must be a clean 401, never a crash.
	resp := request(t, app, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthRequired_MalformedHeader(t *testing.T) {
	app, tokenService, _ := setupGate(t)

	token, _ := tokenService.Issue("user-123")

	headers := []string{
		"BearerTokenWithoutSpace",
		token,             // credential with no scheme
		"Basic dXNlcjpw",  // wrong scheme
		"bearer " + token, // scheme match is case-sensitive
	}
	for _, h := range headers {
		resp := request(t, app, h)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "header %q", h)
	}
}

func TestAuthRequired_InvalidToken(t *testing.T) {
	app, _, _ := setupGate(t)

	resp := request(t, app, "Bearer not.a.valid.token")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthRequired_UnknownUser(t *testing.T) {
	app, tokenService, _ := setupGate(t)

	// Validly signed token, but no such user record exists.
	token, err := tokenService.Issue("ghost-user")
	assert.NoError(t, err)

	resp := request(t, app, "Bearer "+token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthRequired_ValidToken(t *testing.T) {
	app, tokenService, userRepo := setupGate(t)

	user := &models.User{ID: "user-123", Email: "test@example.com", Nickname: "tester", Password: "x"}
	assert.NoError(t, userRepo.Create(user))

	token, err := tokenService.Issue(user.ID)
	assert.NoError(t, err)

	resp := request(t, app, "Bearer "+token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	assert.Contains(t, string(body), "tester")
}
