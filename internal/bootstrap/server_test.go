package bootstrap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Domenick1991/eventbooking/config"
	"github.com/Domenick1991/eventbooking/internal/payment"
	"github.com/Domenick1991/eventbooking/internal/service/booking"
	"github.com/Domenick1991/eventbooking/internal/service/checkin"
	"github.com/Domenick1991/eventbooking/internal/service/events"
	"github.com/Domenick1991/eventbooking/internal/service/servicetest"
	"github.com/Domenick1991/eventbooking/internal/service/waitlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
)

func TestHTTPHandler(t *testing.T) {
	spec := filepath.Join(t.TempDir(), "openapi.yaml")
	require.NoError(t, os.WriteFile(spec, []byte("openapi: 3.0.3\n"), 0o600))

	h := HTTPHandler(config.HTTPConfig{SwaggerSpec: spec}, slog.New(slog.NewTextHandler(io.Discard, nil)), Services{}, nil)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, specPath, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "openapi: 3.0.3")

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHTTPHandler_NoSwagger(t *testing.T) {
	h := HTTPHandler(config.HTTPConfig{}, slog.New(slog.NewTextHandler(io.Discard, nil)), Services{}, nil)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, specPath, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func newGatewayHandler(t *testing.T) (http.Handler, *servicetest.Env) {
	t.Helper()
	env := servicetest.New(t)
	wl := waitlist.NewWaitlistService(env.Store, env.Notifier, env.Clock, env.Log)
	svc := Services{
		Events: events.NewEventService(env.Store, nil, nil, env.Notifier, env.Clock, env.Log),
		Bookings: booking.NewBookingService(env.Store, payment.Sandbox{}, wl, env.Notifier, env.Clock, env.Log,
			booking.WithCodeGenerator(env.Code)),
		CheckIn:  checkin.NewCheckInService(env.Store, env.Clock, env.Log),
		Waitlist: wl,
	}

	lis := bufconn.Listen(1 << 20)
	srv := NewGRPCServer(env.Log, svc)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	gw, err := NewGateway(t.Context(), "passthrough:///bufnet", []grpc.DialOption{
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	})
	require.NoError(t, err)

	return HTTPHandler(config.HTTPConfig{}, env.Log, svc, gw), env
}

func TestGateway_ReserveTickets(t *testing.T) {
	h, env := newGatewayHandler(t)
	event := env.Event(t)

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/v1/events/%d/tickets", event.ID), strings.NewReader(`{"quantity":2}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "alice")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Tickets []struct {
			HolderID string `json:"holder_id"`
			Status   string `json:"status"`
		} `json:"tickets"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Tickets, 2)
	assert.Equal(t, "alice", body.Tickets[0].HolderID)
	assert.Equal(t, "TICKET_STATUS_ACTIVE", body.Tickets[0].Status)
}

func TestGateway_MapsErrors(t *testing.T) {
	h, env := newGatewayHandler(t)
	event := env.Event(t)

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/v1/events/%d/tickets", event.ID), strings.NewReader(`{"quantity":1}`))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/events/999", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/v1/events/%d", event.ID), nil))
	require.Equal(t, http.StatusOK, w.Code)
	var got struct {
		Event struct {
			Title  string `json:"title"`
			Status string `json:"status"`
		} `json:"event"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, event.Title, got.Event.Title)
	assert.Equal(t, "EVENT_STATUS_ACTIVE", got.Event.Status)
}

func TestNewPublisher_None(t *testing.T) {
	cfg := &config.Config{Notifications: config.NotificationsConfig{Broker: config.BrokerNone}}

	pub, closeFn, err := NewPublisher(t.Context(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	assert.Nil(t, pub)
	closeFn()
}

func TestOpenStore_Memory(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: config.StorageMemory}}

	store, closeFn, err := OpenStore(t.Context(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	assert.NotNil(t, store)
	closeFn()
}
