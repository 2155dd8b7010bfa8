package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProvenance(t *testing.T) {
	var id Identity = NewSession(7, RoleMember)
	_, _, ok := Provenance(id)
	assert.False(t, ok)

	id = NewImpersonation(NewSession(7, RoleMember), 1, RoleAdmin)
	adminID, adminRole, ok := Provenance(id)
	assert.True(t, ok)
	assert.Equal(t, 1, adminID)
	assert.Equal(t, RoleAdmin, adminRole)
	assert.Equal(t, 7, id.UserID())
	assert.Equal(t, RoleMember, id.Role())
}
