package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRolesFromStrings(t *testing.T) {
	roles := RolesFromStrings([]string{"Admin", "shopkeeper", "merchant", "admin", ""})

	assert.Equal(t, Roles{RoleAdmin, RoleShopkeeper}, roles)
	assert.Equal(t, []string{"admin", "shopkeeper"}, roles.ToStrings())
}

func TestRoleOrShopkeeper(t *testing.T) {
	assert.Equal(t, RoleAdmin, RoleAdmin.OrShopkeeper())
	assert.Equal(t, RoleShopkeeper, Role("").OrShopkeeper())
	assert.Equal(t, RoleShopkeeper, Role("visitor").OrShopkeeper())
}
