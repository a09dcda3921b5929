package middlewares

import (
	"errors"

	"tiklabakim.com/configs/configslog"
	"tiklabakim.com/models"
	"tiklabakim.com/pkg/response"
	"tiklabakim.com/pkg/session"
	"tiklabakim.com/repositories"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	LocalsUserID = "userID"
	LocalsRole   = "role"
)

// Session istekteki belirteci (önce Authorization başlığı, sonra çerez) çözer ve kimliği
// Locals'a yazar. Rol belirteçten değil veritabanındaki kullanıcıdan alınır; silinmiş ya da pasif
// hesaplar oturumsuz sayılır. Geçersiz ya da eksik belirteç isteği durdurmaz; yetki kontrolü gruplarda yapılır.
func Session(manager *session.Manager, users repositories.IUserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := session.TokenFromHeader(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			token = c.Cookies(manager.CookieName())
		}
		if token == "" {
			return c.Next()
		}
		identity, err := manager.Parse(token)
		if err != nil {
			return c.Next()
		}
		user, err := users.FindByID(c.UserContext(), identity.UserID)
		if err != nil {
			if !errors.Is(err, repositories.ErrNotFound) {
				configslog.Log.Error("Oturum kullanıcısı yüklenemedi", zap.Uint("userID", identity.UserID), zap.Error(err))
			}
			return c.Next()
		}
		if !user.IsActive {
			return c.Next()
		}
		c.Locals(LocalsUserID, user.ID)
		c.Locals(LocalsRole, user.Role)
		return c.Next()
	}
}

// CurrentIdentity oturumdaki kimliği döndürür.
func CurrentIdentity(c *fiber.Ctx) (session.Identity, bool) {
	userID, ok := c.Locals(LocalsUserID).(uint)
	if !ok || userID == 0 {
		return session.Identity{}, false
	}
	role, _ := c.Locals(LocalsRole).(models.UserRole)
	return session.Identity{UserID: userID, Role: role}, true
}

// CurrentUserID oturumdaki kullanıcı ID'sini döndürür; oturum yoksa 0.
func CurrentUserID(c *fiber.Ctx) uint {
	identity, _ := CurrentIdentity(c)
	return identity.UserID
}

// RequireAuth oturum yoksa 401 döndürür.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := CurrentIdentity(c); !ok {
			return response.Unauthorized(c, "Bu işlem için giriş yapmanız gerekiyor")
		}
		return c.Next()
	}
}

// RequireRole oturumdaki rol izin listesinde değilse 403 döndürür. Yöneticiler her gruba erişebilir.
// RequireAuth'tan sonra kullanılır.
func RequireRole(roles ...models.UserRole) fiber.Handler {
	allowed := make(map[models.UserRole]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		identity, ok := CurrentIdentity(c)
		if !ok {
			return response.Unauthorized(c, "Bu işlem için giriş yapmanız gerekiyor")
		}
		if identity.IsAdmin() {
			return c.Next()
		}
		if _, ok := allowed[identity.Role]; !ok {
			return response.Forbidden(c, "Bu işlem için yetkiniz yok")
		}
		return c.Next()
	}
}
