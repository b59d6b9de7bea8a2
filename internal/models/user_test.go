package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ann@example.com", NormalizeEmail("  Ann@Example.COM "))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleMentor.Valid())
	assert.True(t, RoleMentoree.Valid())
	assert.False(t, Role("admin").Valid())
	assert.False(t, Role("").Valid())
}

func TestContact_HasParty(t *testing.T) {
	c := &Contact{UserID1: 1, UserID2: 2}
	assert.True(t, c.HasParty(1))
	assert.True(t, c.HasParty(2))
	assert.False(t, c.HasParty(3))
}
