package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caseritos/caseritos-api/internal/application/usecase"
	"github.com/caseritos/caseritos-api/internal/domain/entity"
)

func TestRenderMessage_Puja(t *testing.T) {
	msg := usecase.RenderMessage(entity.NotificationPayload{
		Type:         entity.NotificationBid,
		OfferTitle:   "Quesillo fresco",
		Price:        decimal.NewFromInt(30),
		ContactPhone: "987555666",
	})
	assert.Equal(t, `Nueva puja de $30 en "Quesillo fresco". Teléfono del pujador: 987555666`, msg)
}

func TestRenderMessage_SinTelefono_UsaFallback(t *testing.T) {
	msg := usecase.RenderMessage(entity.NotificationPayload{
		Type:       entity.NotificationBid,
		OfferTitle: "Quesillo fresco",
		Price:      decimal.NewFromInt(30),
	})
	assert.Contains(t, msg, "No indicado")
}

func TestRenderMessage_VentaTotalYParcial(t *testing.T) {
	total := usecase.RenderMessage(entity.NotificationPayload{
		Type:         entity.NotificationSale,
		OfferTitle:   "Quesillo fresco",
		ContactPhone: "987333444",
	})
	assert.Contains(t, total, "vendida por compra directa")
	assert.Contains(t, total, "987333444")

	parcial := usecase.RenderMessage(entity.NotificationPayload{
		Type:         entity.NotificationPartialSale,
		OfferTitle:   "Quesillo fresco",
		Remaining:    2,
		ContactPhone: "987333444",
	})
	assert.Contains(t, parcial, "Quedan 2")
}

func TestRenderMessage_CompraConYSinRemanente(t *testing.T) {
	conStock := usecase.RenderMessage(entity.NotificationPayload{
		Type:       entity.NotificationPurchase,
		OfferTitle: "Quesillo fresco",
		Remaining:  1,
	})
	assert.Contains(t, conStock, "Quedan 1")

	agotada := usecase.RenderMessage(entity.NotificationPayload{
		Type:       entity.NotificationPurchase,
		OfferTitle: "Quesillo fresco",
	})
	assert.NotContains(t, agotada, "Quedan")
	assert.Contains(t, agotada, "Compraste")
}

func TestRenderMessage_PujaAceptadaYConfirmada(t *testing.T) {
	aceptada := usecase.RenderMessage(entity.NotificationPayload{
		Type:       entity.NotificationBidAccepted,
		OfferTitle: "Quesillo fresco",
		Price:      decimal.NewFromInt(28),
	})
	assert.Contains(t, aceptada, "fue aceptada")

	confirmada := usecase.RenderMessage(entity.NotificationPayload{
		Type:       entity.NotificationBidConfirmed,
		OfferTitle: "Quesillo fresco",
		Price:      decimal.NewFromInt(28),
	})
	assert.Contains(t, confirmada, "Aceptaste la puja")
}

func TestRenderMessage_TipoDesconocido_DevuelveElTipo(t *testing.T) {
	msg := usecase.RenderMessage(entity.NotificationPayload{Type: "algo_nuevo"})
	assert.Equal(t, "algo_nuevo", msg)
}

// memNotificationRepo store en memoria para el feed.
type memNotificationRepo struct {
	items []*entity.Notification
	read  map[string]string // id → userID con el que se marcó
}

func (r *memNotificationRepo) Create(n *entity.Notification) error {
	r.items = append(r.items, n)
	return nil
}

func (r *memNotificationRepo) ListByUser(userID string) ([]*entity.Notification, error) {
	var out []*entity.Notification
	for _, n := range r.items {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *memNotificationRepo) MarkRead(id, userID string) error {
	if r.read == nil {
		r.read = make(map[string]string)
	}
	r.read[id] = userID
	return nil
}

func TestListForUser_RenderizaYFiltraPorDestinatario(t *testing.T) {
	repo := &memNotificationRepo{}
	repo.items = []*entity.Notification{
		{
			ID:     "n-1",
			UserID: "u-seller",
			Payload: entity.NotificationPayload{
				Type:       entity.NotificationBid,
				OfferID:    "of-1",
				OfferTitle: "Quesillo fresco",
				Price:      decimal.NewFromInt(30),
			},
			CreatedAt: time.Now(),
		},
		{
			ID:        "n-2",
			UserID:    "u-otro",
			Payload:   entity.NotificationPayload{Type: entity.NotificationSale},
			CreatedAt: time.Now(),
		},
	}
	uc := usecase.NewNotificationUseCase(repo)

	out, err := uc.ListForUser("u-seller")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "n-1", out[0].ID)
	assert.Equal(t, entity.NotificationBid, out[0].Type)
	assert.Equal(t, "of-1", out[0].OfferID)
	assert.Contains(t, out[0].Message, "Nueva puja")
}

func TestMarkRead_AlcanzaSoloAlDestinatario(t *testing.T) {
	repo := &memNotificationRepo{}
	uc := usecase.NewNotificationUseCase(repo)

	require.NoError(t, uc.MarkRead("u-seller", "n-1"))
	assert.Equal(t, "u-seller", repo.read["n-1"], "el repo recibe el destinatario como guarda")
}
