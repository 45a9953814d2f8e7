package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gymhub/internal/model"
)

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTService("test-secret", time.Minute)
	user := &model.User{ID: 42, Email: "a@x.com", Role: model.RoleTrainer}

	token, err := svc.GenerateAccessToken(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, model.RoleTrainer, claims.Role)
	assert.Equal(t, "a@x.com", claims.Subject)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := NewJWTService("test-secret", -time.Minute)
	user := &model.User{ID: 1, Email: "a@x.com", Role: model.RoleMember}

	token, err := svc.GenerateAccessToken(user)
	assert.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a", time.Minute)
	verifier := NewJWTService("secret-b", time.Minute)
	user := &model.User{ID: 1, Email: "a@x.com", Role: model.RoleMember}

	token, err := issuer.GenerateAccessToken(user)
	assert.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc := NewJWTService("test-secret", time.Minute)

	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		claims, err := svc.ValidateToken(raw)
		assert.Error(t, err)
		assert.Nil(t, claims)
	}
}

func TestJWTService_TamperedToken(t *testing.T) {
	svc := NewJWTService("test-secret", time.Minute)
	user := &model.User{ID: 1, Email: "a@x.com", Role: model.RoleMember}

	token, err := svc.GenerateAccessToken(user)
	assert.NoError(t, err)

	claims, err := svc.ValidateToken(token + "x")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
