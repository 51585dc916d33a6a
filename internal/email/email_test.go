package email

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/Domenick1991/eventbooking/internal/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSender_Send(t *testing.T) {
	var buf bytes.Buffer
	s := NewSender("tickets@example.org", "users.example.org", slog.New(slog.NewJSONHandler(&buf, nil)))

	require.NoError(t, s.Send(context.Background(), notify.Message{ID: 3, RecipientID: "alice", Title: "Event reminder"}))
	assert.Contains(t, buf.String(), `"to":"alice@users.example.org"`)
	assert.Contains(t, buf.String(), `"subject":"Event reminder"`)
}
