// Package session istekteki oturum belirtecini kimliğe çözer.
// Belirteçler HS256 imzalı JWT'dir; Authorization başlığında ya da oturum çerezinde taşınır.
package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tiklabakim.com/models"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoToken      = errors.New("oturum belirteci bulunamadı")
	ErrInvalidToken = errors.New("oturum belirteci geçersiz")
)

// Identity oturumdan çözülen kullanıcı kimliğidir.
type Identity struct {
	UserID uint
	Role   models.UserRole
}

func (i Identity) IsAdmin() bool {
	return i.Role == models.RoleAdmin
}

// Claims JWT içinde taşınan alanlardır.
type Claims struct {
	UserID uint   `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Manager belirteç üretir ve doğrular.
type Manager struct {
	secret     []byte
	cookieName string
	ttl        time.Duration
}

func NewManager(secret, cookieName string, ttl time.Duration) *Manager {
	if cookieName == "" {
		cookieName = "session"
	}
	return &Manager{secret: []byte(secret), cookieName: cookieName, ttl: ttl}
}

func (m *Manager) CookieName() string {
	return m.cookieName
}

// Issue kullanıcı için imzalı belirteç üretir.
func (m *Manager) Issue(userID uint, role models.UserRole) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Role:   string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Parse belirteci doğrular ve kimliği döndürür.
func (m *Manager) Parse(token string) (Identity, error) {
	if token == "" {
		return Identity{}, ErrNoToken
	}
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("beklenmeyen imzalama yöntemi: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return Identity{}, ErrInvalidToken
	}

	role := models.UserRole(claims.Role)
	if claims.UserID == 0 || !role.Valid() {
		return Identity{}, ErrInvalidToken
	}
	return Identity{UserID: claims.UserID, Role: role}, nil
}

// TokenFromHeader "Bearer <token>" biçimindeki başlıktan belirteci ayıklar.
func TokenFromHeader(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
