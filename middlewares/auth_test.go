package middlewares

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"tiklabakim.com/models"
	"tiklabakim.com/pkg/session"
	"tiklabakim.com/pkg/testdb"
	"tiklabakim.com/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type authEnv struct {
	app     *fiber.App
	db      *gorm.DB
	manager *session.Manager
}

func newAuthEnv(t *testing.T) *authEnv {
	t.Helper()
	db := testdb.Open(t)
	manager := session.NewManager("test-secret", "sid", time.Hour)

	app := fiber.New()
	app.Use(Session(manager, repositories.NewUserRepository(db)))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		return c.SendString(strconv.FormatUint(uint64(CurrentUserID(c)), 10))
	})
	app.Get("/private", RequireAuth(), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })
	app.Get("/owners", RequireAuth(), RequireRole(models.RoleBusinessOwner), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	return &authEnv{app: app, db: db, manager: manager}
}

// user veritabanına kullanıcı ekler ve verilen rol iddiasıyla belirteç üretir.
func (e *authEnv) user(t *testing.T, email string, role, claimed models.UserRole) (models.User, string) {
	t.Helper()
	u := models.User{Name: "Test", Email: email, Role: role, IsActive: true}
	require.NoError(t, e.db.Create(&u).Error)
	token, err := e.manager.Issue(u.ID, claimed)
	require.NoError(t, err)
	return u, token
}

func do(t *testing.T, app *fiber.App, path string, decorate func(*http.Request)) *http.Response {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, path, nil)
	if decorate != nil {
		decorate(req)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func bearer(token string) func(*http.Request) {
	return func(r *http.Request) { r.Header.Set(fiber.HeaderAuthorization, "Bearer "+token) }
}

func cookie(name, token string) func(*http.Request) {
	return func(r *http.Request) { r.AddCookie(&http.Cookie{Name: name, Value: token}) }
}

func whoami(t *testing.T, app *fiber.App, decorate func(*http.Request)) string {
	t.Helper()
	body, err := io.ReadAll(do(t, app, "/whoami", decorate).Body)
	require.NoError(t, err)
	return string(body)
}

func TestSession_ResolvesIdentity(t *testing.T) {
	env := newAuthEnv(t)
	u, token := env.user(t, "user@example.com", models.RoleUser, models.RoleUser)
	want := strconv.FormatUint(uint64(u.ID), 10)

	assert.Equal(t, want, whoami(t, env.app, bearer(token)))
	assert.Equal(t, want, whoami(t, env.app, cookie("sid", token)))
	assert.Equal(t, "0", whoami(t, env.app, bearer("bozuk")))
}

func TestSession_UnknownUserIsAnonymous(t *testing.T) {
	env := newAuthEnv(t)
	token, err := env.manager.Issue(404, models.RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, "0", whoami(t, env.app, bearer(token)))
	assert.Equal(t, fiber.StatusUnauthorized, do(t, env.app, "/private", bearer(token)).StatusCode)
}

func TestSession_DeactivatedUserLosesAccess(t *testing.T) {
	env := newAuthEnv(t)
	u, token := env.user(t, "user@example.com", models.RoleUser, models.RoleUser)
	require.Equal(t, fiber.StatusNoContent, do(t, env.app, "/private", bearer(token)).StatusCode)

	require.NoError(t, env.db.Model(&models.User{}).Where("id = ?", u.ID).Update("is_active", false).Error)
	assert.Equal(t, fiber.StatusUnauthorized, do(t, env.app, "/private", bearer(token)).StatusCode)
}

func TestSession_RoleComesFromDatabase(t *testing.T) {
	env := newAuthEnv(t)

	// belirteç USER diyor, veritabanı BUSINESS_OWNER
	_, promoted := env.user(t, "promoted@example.com", models.RoleBusinessOwner, models.RoleUser)
	assert.Equal(t, fiber.StatusNoContent, do(t, env.app, "/owners", bearer(promoted)).StatusCode)

	// belirteç BUSINESS_OWNER diyor, veritabanı USER
	_, demoted := env.user(t, "demoted@example.com", models.RoleUser, models.RoleBusinessOwner)
	assert.Equal(t, fiber.StatusForbidden, do(t, env.app, "/owners", bearer(demoted)).StatusCode)
}

func TestRequireAuthAndRole(t *testing.T) {
	env := newAuthEnv(t)
	_, userToken := env.user(t, "user@example.com", models.RoleUser, models.RoleUser)
	_, ownerToken := env.user(t, "owner@example.com", models.RoleBusinessOwner, models.RoleBusinessOwner)
	_, adminToken := env.user(t, "admin@example.com", models.RoleAdmin, models.RoleAdmin)

	tests := []struct {
		name     string
		path     string
		decorate func(*http.Request)
		want     int
	}{
		{"oturumsuz", "/private", nil, fiber.StatusUnauthorized},
		{"oturumsuz rol", "/owners", nil, fiber.StatusUnauthorized},
		{"geçersiz belirteç", "/private", bearer("gecersiz"), fiber.StatusUnauthorized},
		{"kullanıcı", "/private", bearer(userToken), fiber.StatusNoContent},
		{"yetkisiz rol", "/owners", bearer(userToken), fiber.StatusForbidden},
		{"işletme sahibi", "/owners", bearer(ownerToken), fiber.StatusNoContent},
		{"çerez ile sahip", "/owners", cookie("sid", ownerToken), fiber.StatusNoContent},
		{"yönetici her gruba girer", "/owners", bearer(adminToken), fiber.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, do(t, env.app, tt.path, tt.decorate).StatusCode)
		})
	}
}
