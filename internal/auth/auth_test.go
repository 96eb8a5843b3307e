package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestGate() *Gate {
	return NewGate(DefaultCredentials("admin", "password", "user", "password"))
}

func TestGate_Authenticate(t *testing.T) {
	gate := newTestGate()

	tests := []struct {
		name     string
		username string
		password string
		want     Role
	}{
		{"admin credentials", "admin", "password", RoleAdmin},
		{"user credentials", "user", "password", RoleUser},
		{"wrong password", "admin", "Password", RoleAnonymous},
		{"wrong username", "Admin", "password", RoleAnonymous},
		{"unknown user", "nobody", "password", RoleAnonymous},
		{"empty credentials", "", "", RoleAnonymous},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gate.Authenticate(tt.username, tt.password))
		})
	}
}

func TestGate_CustomTable(t *testing.T) {
	gate := NewGate(map[Credential]Role{
		{Username: "librarian", Password: "s3cret"}: RoleAdmin,
	})

	assert.Equal(t, RoleAdmin, gate.Authenticate("librarian", "s3cret"))
	assert.Equal(t, RoleAnonymous, gate.Authenticate("admin", "password"))
}

func TestRole_Authenticated(t *testing.T) {
	assert.True(t, RoleAdmin.Authenticated())
	assert.True(t, RoleUser.Authenticated())
	assert.False(t, RoleAnonymous.Authenticated())
}
