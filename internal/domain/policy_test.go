package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/caseritos/caseritos-api/internal/domain"
)

var (
	owner    = domain.Identity{ID: "u-1", Role: domain.RoleUser}
	stranger = domain.Identity{ID: "u-2", Role: domain.RoleUser}
	admin    = domain.Identity{ID: "u-3", Role: domain.RoleAdmin}

	offer = domain.Resource{Kind: "offer", OwnerID: "u-1"}
)

func TestAuthorize_Update_SoloElDueno(t *testing.T) {
	assert.NoError(t, domain.Authorize(owner, offer, domain.ActionUpdate))
	assert.ErrorIs(t, domain.Authorize(stranger, offer, domain.ActionUpdate), domain.ErrForbidden)
	assert.ErrorIs(t, domain.Authorize(admin, offer, domain.ActionUpdate), domain.ErrForbidden,
		"el admin no edita ofertas ajenas, solo las elimina")
}

func TestAuthorize_Delete_DuenoOAdmin(t *testing.T) {
	assert.NoError(t, domain.Authorize(owner, offer, domain.ActionDelete))
	assert.NoError(t, domain.Authorize(admin, offer, domain.ActionDelete))
	assert.ErrorIs(t, domain.Authorize(stranger, offer, domain.ActionDelete), domain.ErrForbidden)
}

func TestAuthorize_AccionDesconocida_Prohibida(t *testing.T) {
	assert.ErrorIs(t, domain.Authorize(owner, offer, domain.Action("publish")), domain.ErrForbidden)
}
