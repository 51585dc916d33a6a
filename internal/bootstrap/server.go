package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/Domenick1991/eventbooking/api"
	"github.com/Domenick1991/eventbooking/config"
	eventsapi "github.com/Domenick1991/eventbooking/internal/api/events_service_api"
	"github.com/Domenick1991/eventbooking/internal/api/rpc"
	ticketsapi "github.com/Domenick1991/eventbooking/internal/api/tickets_service_api"
	"github.com/Domenick1991/eventbooking/internal/pb/events_api"
	"github.com/Domenick1991/eventbooking/internal/pb/tickets_api"
	"github.com/Domenick1991/eventbooking/internal/service/admin"
	"github.com/Domenick1991/eventbooking/internal/service/booking"
	"github.com/Domenick1991/eventbooking/internal/service/checkin"
	"github.com/Domenick1991/eventbooking/internal/service/events"
	"github.com/Domenick1991/eventbooking/internal/service/inbox"
	"github.com/Domenick1991/eventbooking/internal/service/waitlist"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
)

const (
	specPath    = "/docs/openapi.yaml"
	gatewayPath = "/v1/"
)

// Services are the use cases exposed by the API process.
type Services struct {
	Events   events.EventUseCase
	Bookings booking.BookingUseCase
	CheckIn  checkin.CheckInUseCase
	Waitlist waitlist.WaitlistUseCase
	Admin    admin.AdminUseCase
	Inbox    inbox.InboxUseCase
}

type Servers struct {
	grpcServer *grpc.Server
	httpServer *http.Server
}

// Run starts gRPC and HTTP (gin + grpc-gateway + swagger) servers and blocks until context is canceled or a server fails.
func Run(ctx context.Context, cfg *config.Config, log *slog.Logger, svc Services) error {
	s, err := newServers(ctx, cfg, log, svc)
	if err != nil {
		return err
	}

	errCh := make(chan error, 2)

	lis, err := net.Listen("tcp", cfg.GRPC.Address)
	if err != nil {
		return fmt.Errorf("listen gRPC %s: %w", cfg.GRPC.Address, err)
	}
	go func() { errCh <- s.grpcServer.Serve(lis) }()

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	log.Info("api started", slog.String("http", cfg.HTTP.Address), slog.String("grpc", cfg.GRPC.Address))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.grpcServer.GracefulStop()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newServers(ctx context.Context, cfg *config.Config, log *slog.Logger, svc Services) (*Servers, error) {
	grpcSrv := NewGRPCServer(log, svc)

	opts := []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}
	gateway, err := NewGateway(ctx, cfg.GRPC.Address, opts)
	if err != nil {
		return nil, err
	}

	return &Servers{
		grpcServer: grpcSrv,
		httpServer: &http.Server{
			Addr:              cfg.HTTP.Address,
			Handler:           HTTPHandler(cfg.HTTP, log, svc, gateway),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// NewGRPCServer registers the tickets and events services behind the error
// mapping interceptor.
func NewGRPCServer(log *slog.Logger, svc Services) *grpc.Server {
	grpcSrv := grpc.NewServer(grpc.ChainUnaryInterceptor(rpc.UnaryInterceptor(log)))
	tickets_api.RegisterTicketsServiceServer(grpcSrv, ticketsapi.NewServer(svc.Bookings, svc.CheckIn, svc.Waitlist))
	events_api.RegisterEventsServiceServer(grpcSrv, eventsapi.NewServer(svc.Events))
	return grpcSrv
}

// NewGateway builds the REST gateway that transcodes /v1 calls into gRPC
// calls against endpoint. Connections close when ctx ends.
func NewGateway(ctx context.Context, endpoint string, opts []grpc.DialOption) (*runtime.ServeMux, error) {
	mux := runtime.NewServeMux(
		runtime.WithIncomingHeaderMatcher(rpc.HeaderMatcher),
		runtime.WithMarshalerOption(runtime.MIMEWildcard, &runtime.JSONPb{
			MarshalOptions:   protojson.MarshalOptions{UseProtoNames: true, EmitUnpopulated: true},
			UnmarshalOptions: protojson.UnmarshalOptions{DiscardUnknown: true},
		}),
	)
	if err := tickets_api.RegisterTicketsServiceHandlerFromEndpoint(ctx, mux, endpoint, opts); err != nil {
		return nil, fmt.Errorf("register tickets gateway: %w", err)
	}
	if err := events_api.RegisterEventsServiceHandlerFromEndpoint(ctx, mux, endpoint, opts); err != nil {
		return nil, fmt.Errorf("register events gateway: %w", err)
	}
	return mux, nil
}

// HTTPHandler mounts the REST API, the gRPC gateway under /v1/ when one is
// given and, when a spec file is configured, the swagger UI next to them.
func HTTPHandler(cfg config.HTTPConfig, log *slog.Logger, svc Services, gateway http.Handler) http.Handler {
	router := api.NewRouter(log, api.Handlers{
		Events:   api.NewEventHandler(svc.Events),
		Bookings: api.NewBookingHandler(svc.Bookings),
		CheckIn:  api.NewCheckInHandler(svc.CheckIn),
		Waitlist: api.NewWaitlistHandler(svc.Waitlist),
		Admin:    api.NewAdminHandler(svc.Admin),
		Inbox:    api.NewInboxHandler(svc.Inbox),
	})

	mux := http.NewServeMux()
	mux.Handle("/", router)
	if gateway != nil {
		mux.Handle(gatewayPath, gateway)
	}
	if cfg.SwaggerSpec != "" {
		mux.HandleFunc(specPath, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/yaml")
			http.ServeFile(w, r, cfg.SwaggerSpec)
		})
		mux.Handle("/swagger/", httpSwagger.Handler(httpSwagger.URL(specPath)))
	}
	return mux
}
