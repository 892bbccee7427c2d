package http_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpiface "github.com/jhoicas/Facturas-api/internal/interfaces/http"
	"github.com/jhoicas/Facturas-api/pkg/jwt"
)

const testSecret = "secret-de-test"

func protectedApp(handlers ...fiber.Handler) *fiber.App {
	app := fiber.New()
	chain := append([]fiber.Handler{httpiface.AuthMiddleware(testSecret)}, handlers...)
	chain = append(chain, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": httpiface.GetUserID(c),
			"role":    httpiface.GetRole(c),
		})
	})
	app.Get("/protegido", chain...)
	return app
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinHeader(t *testing.T) {
	app := protectedApp()

	req := httptest.NewRequest("GET", "/protegido", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := protectedApp()

	for _, header := range []string{"Basic abc123", "Bearer", "solo-el-token"} {
		req := httptest.NewRequest("GET", "/protegido", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "header: %q", header)
	}
}

func TestAuthMiddleware_TokenValidoExtraeClaims(t *testing.T) {
	token, err := jwt.Generate(testSecret, "u-1", "admin", "facturas-api", 60)
	require.NoError(t, err)

	app := protectedApp()
	req := httptest.NewRequest("GET", "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_SecretIncorrecto(t *testing.T) {
	token, err := jwt.Generate("otro-secret", "u-1", "admin", "facturas-api", 60)
	require.NoError(t, err)

	app := protectedApp()
	req := httptest.NewRequest("GET", "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	token, err := jwt.Generate(testSecret, "u-1", "admin", "facturas-api", -1)
	require.NoError(t, err)

	app := protectedApp()
	req := httptest.NewRequest("GET", "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_PermiteRolAutorizado(t *testing.T) {
	token, err := jwt.Generate(testSecret, "u-1", "admin", "facturas-api", 60)
	require.NoError(t, err)

	app := protectedApp(httpiface.RequireRole("admin"))
	req := httptest.NewRequest("GET", "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRole_RechazaRolSinPermiso(t *testing.T) {
	token, err := jwt.Generate(testSecret, "u-2", "viewer", "facturas-api", 60)
	require.NoError(t, err)

	app := protectedApp(httpiface.RequireRole("admin"))
	req := httptest.NewRequest("GET", "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// pkg/jwt
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateYParse(t *testing.T) {
	token, err := jwt.Generate(testSecret, "u-42", "viewer", "facturas-api", 60)
	require.NoError(t, err)

	userID, role, err := jwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "u-42", userID)
	assert.Equal(t, "viewer", role)
}

func TestJWT_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "u-1", "admin", "facturas-api", 60)
	assert.Error(t, err)

	_, _, err = jwt.Parse("", "lo-que-sea")
	assert.Error(t, err)
}

func TestJWT_ExpiracionSeRespeta(t *testing.T) {
	token, err := jwt.Generate(testSecret, "u-1", "admin", "facturas-api", -5)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, _, err = jwt.Parse(testSecret, token)
	assert.Error(t, err, "un token vencido no debe parsear")
}
