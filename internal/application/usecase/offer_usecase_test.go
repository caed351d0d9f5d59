package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caseritos/caseritos-api/internal/application/dto"
	"github.com/caseritos/caseritos-api/internal/application/usecase"
	"github.com/caseritos/caseritos-api/internal/domain"
	"github.com/caseritos/caseritos-api/internal/domain/entity"
	"github.com/caseritos/caseritos-api/internal/domain/repository"
)

// stubOfferRepo solo lo que OfferUseCase necesita; el resto no se usa.
type stubOfferRepo struct {
	offers map[string]*entity.Offer
}

func newStubOfferRepo() *stubOfferRepo {
	return &stubOfferRepo{offers: make(map[string]*entity.Offer)}
}

func (r *stubOfferRepo) Create(o *entity.Offer) error { r.offers[o.ID] = o; return nil }

func (r *stubOfferRepo) GetByID(id string) (*entity.Offer, error) {
	o, ok := r.offers[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *stubOfferRepo) GetForUpdate(id string) (*entity.Offer, error)      { return r.GetByID(id) }
func (r *stubOfferRepo) GetDetail(id string) (*entity.OfferDetail, error)   { return nil, nil }
func (r *stubOfferRepo) Search(repository.OfferFilter) ([]*entity.OfferSummary, error) {
	return nil, nil
}
func (r *stubOfferRepo) UpdateListing(o *entity.Offer) error { r.offers[o.ID] = o; return nil }
func (r *stubOfferRepo) UpdateQty(id string, qty int) error  { return nil }
func (r *stubOfferRepo) MarkSold(id, buyerID string, soldAt time.Time) error { return nil }
func (r *stubOfferRepo) ListByBuyer(string) ([]*entity.Offer, error)         { return nil, nil }
func (r *stubOfferRepo) ListAll() ([]*entity.OfferSummary, error)            { return nil, nil }
func (r *stubOfferRepo) Delete(id string) error                              { delete(r.offers, id); return nil }

var (
	sellerID = domain.Identity{ID: "u-seller", Role: domain.RoleUser}
	otherID  = domain.Identity{ID: "u-otro", Role: domain.RoleUser}
	admID    = domain.Identity{ID: "u-adm", Role: domain.RoleAdmin}
)

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func TestOfferCreate_QtyPorDefectoEsUno(t *testing.T) {
	repo := newStubOfferRepo()
	uc := usecase.NewOfferUseCase(repo)

	out, err := uc.Create(sellerID, dto.CreateOfferRequest{
		Title:       "Quesillo fresco",
		Description: "Quesillo de cabra, 500g",
		Price:       decPtr(25),
		Location:    "Cajamarca",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, out.Qty)
	assert.Equal(t, entity.OfferStatusActive, out.Status)
	assert.Equal(t, sellerID.ID, out.SellerID)
	assert.NotEmpty(t, out.ID)
}

func TestOfferCreate_CamposRequeridos(t *testing.T) {
	uc := usecase.NewOfferUseCase(newStubOfferRepo())

	_, err := uc.Create(sellerID, dto.CreateOfferRequest{Description: "x", Price: decPtr(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(sellerID, dto.CreateOfferRequest{Title: "x", Price: decPtr(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(sellerID, dto.CreateOfferRequest{Title: "x", Description: "y"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOfferCreate_PrecioNegativo_Rechazado(t *testing.T) {
	uc := usecase.NewOfferUseCase(newStubOfferRepo())

	_, err := uc.Create(sellerID, dto.CreateOfferRequest{Title: "x", Description: "y", Price: decPtr(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOfferUpdate_SoloCamposPresentes(t *testing.T) {
	repo := newStubOfferRepo()
	repo.offers["of-1"] = &entity.Offer{
		ID:          "of-1",
		SellerID:    sellerID.ID,
		Title:       "Quesillo fresco",
		Description: "500g",
		Price:       decimal.NewFromInt(25),
		Qty:         3,
		Status:      entity.OfferStatusActive,
	}
	uc := usecase.NewOfferUseCase(repo)

	out, err := uc.Update(sellerID, "of-1", dto.UpdateOfferRequest{
		Price: decPtr(30),
		Qty:   intPtr(5),
	})
	require.NoError(t, err)

	assert.Equal(t, "Quesillo fresco", out.Title, "los campos ausentes se conservan")
	assert.True(t, out.Price.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, 5, out.Qty)
}

func TestOfferUpdate_NoDueno_Prohibido(t *testing.T) {
	repo := newStubOfferRepo()
	repo.offers["of-1"] = &entity.Offer{ID: "of-1", SellerID: sellerID.ID}
	uc := usecase.NewOfferUseCase(repo)

	_, err := uc.Update(otherID, "of-1", dto.UpdateOfferRequest{Title: strPtr("otro")})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// El admin tampoco edita publicaciones ajenas.
	_, err = uc.Update(admID, "of-1", dto.UpdateOfferRequest{Title: strPtr("otro")})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestOfferUpdate_Inexistente_Retorna404(t *testing.T) {
	uc := usecase.NewOfferUseCase(newStubOfferRepo())

	_, err := uc.Update(sellerID, "no-existe", dto.UpdateOfferRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOfferDelete_DuenoYAdminPueden(t *testing.T) {
	repo := newStubOfferRepo()
	repo.offers["of-1"] = &entity.Offer{ID: "of-1", SellerID: sellerID.ID}
	repo.offers["of-2"] = &entity.Offer{ID: "of-2", SellerID: sellerID.ID}
	uc := usecase.NewOfferUseCase(repo)

	require.NoError(t, uc.Delete(sellerID, "of-1"))
	_, ok := repo.offers["of-1"]
	assert.False(t, ok)

	require.NoError(t, uc.Delete(admID, "of-2"))

	err := uc.Delete(otherID, "of-2")
	assert.ErrorIs(t, err, domain.ErrNotFound, "ya eliminada")
}

func TestOfferDelete_NoDuenoNoAdmin_Prohibido(t *testing.T) {
	repo := newStubOfferRepo()
	repo.offers["of-1"] = &entity.Offer{ID: "of-1", SellerID: sellerID.ID}
	uc := usecase.NewOfferUseCase(repo)

	err := uc.Delete(otherID, "of-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
