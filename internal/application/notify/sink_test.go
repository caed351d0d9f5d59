package notify_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caseritos/caseritos-api/internal/application/notify"
	"github.com/caseritos/caseritos-api/internal/domain/entity"
	"github.com/caseritos/caseritos-api/pkg/logger"
)

type captureRepo struct {
	created []*entity.Notification
	fail    error
}

func (r *captureRepo) Create(n *entity.Notification) error {
	if r.fail != nil {
		return r.fail
	}
	r.created = append(r.created, n)
	return nil
}

func (r *captureRepo) ListByUser(string) ([]*entity.Notification, error) { return nil, nil }
func (r *captureRepo) MarkRead(string, string) error                     { return nil }

func TestAppend_PersisteDirigidaAlDestinatario(t *testing.T) {
	repo := &captureRepo{}
	sink := notify.NewSink(repo, logger.New(logger.Config{Env: "test", Level: "error"}))

	sink.Append("u-seller", entity.NotificationPayload{
		Type:       entity.NotificationBid,
		OfferID:    "of-1",
		OfferTitle: "Quesillo fresco",
	})

	require.Len(t, repo.created, 1)
	n := repo.created[0]
	assert.NotEmpty(t, n.ID)
	assert.Equal(t, "u-seller", n.UserID)
	assert.Equal(t, entity.NotificationBid, n.Payload.Type)
	assert.False(t, n.Read)
	assert.False(t, n.CreatedAt.IsZero())
}

func TestAppend_FalloDeEscritura_SeAbsorbe(t *testing.T) {
	repo := &captureRepo{fail: errors.New("db caída")}
	sink := notify.NewSink(repo, logger.New(logger.Config{Env: "test", Level: "error"}))

	// No hay error que propagar: el append es fire-and-forget.
	assert.NotPanics(t, func() {
		sink.Append("u-seller", entity.NotificationPayload{Type: entity.NotificationSale})
	})
	assert.Empty(t, repo.created)
}
