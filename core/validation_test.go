package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProfile(t *testing.T) {
	t.Run("valid profile", func(t *testing.T) {
		profile := &Profile{
			Name:      "Consultoria Horizonte",
			Role:      RoleMember,
			WhatISell: "Consultoria em expansão de negócios",
		}
		require.NoError(t, ValidateProfile(profile))
	})

	t.Run("empty text fields are valid", func(t *testing.T) {
		profile := &Profile{Name: "Sem Sinal Ltda", Role: RoleMember}
		require.NoError(t, ValidateProfile(profile))
	})

	t.Run("nil profile", func(t *testing.T) {
		err := ValidateProfile(nil)
		assert.ErrorIs(t, err, ErrInvalidProfile)
	})

	t.Run("empty name", func(t *testing.T) {
		err := ValidateProfile(&Profile{Role: RoleMember})
		assert.ErrorIs(t, err, ErrInvalidProfile)
		assert.ErrorIs(t, err, ErrEmptyProfileName)
	})

	t.Run("invalid role", func(t *testing.T) {
		err := ValidateProfile(&Profile{Name: "X Corp", Role: Role(99)})
		assert.ErrorIs(t, err, ErrInvalidProfile)
		assert.ErrorIs(t, err, ErrInvalidRole)
	})
}

func TestValidateRole(t *testing.T) {
	assert.NoError(t, ValidateRole(RoleMember))
	assert.NoError(t, ValidateRole(RoleStaff))
	assert.ErrorIs(t, ValidateRole(Role(0)), ErrInvalidRole)
	assert.ErrorIs(t, ValidateRole(Role(3)), ErrInvalidRole)
}
