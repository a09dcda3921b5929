package session

import (
	"testing"
	"time"

	"tiklabakim.com/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_IssueAndParse(t *testing.T) {
	m := NewManager("test-secret", "", time.Hour)
	assert.Equal(t, "session", m.CookieName())

	token, err := m.Issue(42, models.RoleBusinessOwner)
	require.NoError(t, err)

	identity, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), identity.UserID)
	assert.Equal(t, models.RoleBusinessOwner, identity.Role)
	assert.False(t, identity.IsAdmin())
}

func TestManager_ParseRejects(t *testing.T) {
	m := NewManager("test-secret", "sid", time.Hour)

	_, err := m.Parse("")
	assert.ErrorIs(t, err, ErrNoToken)

	_, err = m.Parse("bozuk.belirtec.degeri")
	assert.ErrorIs(t, err, ErrInvalidToken)

	foreign, err := NewManager("baska-secret", "sid", time.Hour).Issue(1, models.RoleAdmin)
	require.NoError(t, err)
	_, err = m.Parse(foreign)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, err := NewManager("test-secret", "sid", -time.Minute).Issue(1, models.RoleUser)
	require.NoError(t, err)
	_, err = m.Parse(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)

	badRole, err := m.Issue(1, models.UserRole("ROOT"))
	require.NoError(t, err)
	_, err = m.Parse(badRole)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenFromHeader(t *testing.T) {
	assert.Equal(t, "abc", TokenFromHeader("Bearer abc"))
	assert.Equal(t, "abc", TokenFromHeader("bearer  abc "))
	assert.Empty(t, TokenFromHeader("Basic abc"))
	assert.Empty(t, TokenFromHeader("Bearer "))
}
