package inbox

import (
	"context"
	"testing"

	"github.com/Domenick1991/eventbooking/internal/domain"
	"github.com/Domenick1991/eventbooking/internal/service/servicetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInboxService(t *testing.T) {
	env := servicetest.New(t)
	svc := NewInboxService(env.Store)
	ctx := context.Background()

	sent := env.Notifier.Send(ctx,
		domain.Notification{RecipientID: servicetest.Alice.UserID, Title: "first"},
		domain.Notification{RecipientID: servicetest.Alice.UserID, Title: "second"},
		domain.Notification{RecipientID: servicetest.Bob.UserID, Title: "bob's"},
	)
	require.Equal(t, 3, sent)

	notes, err := svc.List(ctx, servicetest.Alice, false)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "second", notes[0].Title, "newest first")

	require.NoError(t, svc.MarkRead(ctx, servicetest.Alice, notes[1].ID))
	unread, err := svc.List(ctx, servicetest.Alice, true)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, "second", unread[0].Title)

	bobs, _ := svc.List(ctx, servicetest.Bob, false)
	err = svc.MarkRead(ctx, servicetest.Alice, bobs[0].ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.List(ctx, domain.Identity{}, false)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestInboxService_BannedUserCanStillRead(t *testing.T) {
	env := servicetest.New(t)
	svc := NewInboxService(env.Store)
	banned := domain.Identity{UserID: "gone", Role: domain.RoleBanned}
	env.Notifier.Send(context.Background(), domain.Notification{RecipientID: banned.UserID, Title: "Event cancelled"})

	notes, err := svc.List(context.Background(), banned, false)
	require.NoError(t, err)
	assert.Len(t, notes, 1)
}
