package dashboard

import (
	"testing"

	"eventnomous/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigationFor_EveryRoleHasItems(t *testing.T) {
	for _, role := range domain.ValidUserRoles() {
		items := NavigationFor(role)
		assert.NotEmpty(t, items, "role %s", role)
		for _, item := range items {
			assert.NotEmpty(t, item.Title)
			assert.NotEmpty(t, item.Path)
		}
	}
}

func TestNavigationFor_CustomerSet(t *testing.T) {
	items := NavigationFor(domain.RoleCustomer)

	require.Len(t, items, 5)
	assert.Equal(t, "Overview", items[0].Title)
	assert.Equal(t, "/dashboard/customer/budget", items[2].Path)
	assert.Equal(t, "/marketplace", items[3].Path)
}

func TestNavigationFor_UnknownRole(t *testing.T) {
	items := NavigationFor(domain.UserRole("SUPERUSER"))

	assert.NotNil(t, items)
	assert.Empty(t, items)
}
