// Package rpc holds the pieces shared by the gRPC services and the REST
// gateway in front of them: the identity carried in metadata and the domain
// error mapping.
package rpc

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Domenick1991/eventbooking/internal/domain"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var codeBySentinel = []struct {
	err  error
	code codes.Code
}{
	{domain.ErrUnauthorized, codes.Unauthenticated},
	{domain.ErrForbidden, codes.PermissionDenied},
	{domain.ErrNotFound, codes.NotFound},
	{domain.ErrValidation, codes.InvalidArgument},
	{domain.ErrCapacityExceeded, codes.ResourceExhausted},
	{domain.ErrAlreadyCheckedIn, codes.AlreadyExists},
	{domain.ErrPaymentDeclined, codes.FailedPrecondition},
	{domain.ErrTicketCancelled, codes.FailedPrecondition},
	{domain.ErrAlreadyFinal, codes.FailedPrecondition},
	{domain.ErrTooLateToCancel, codes.FailedPrecondition},
	{domain.ErrEventNotActive, codes.FailedPrecondition},
	{domain.ErrConflict, codes.Aborted},
	{context.Canceled, codes.Canceled},
	{context.DeadlineExceeded, codes.DeadlineExceeded},
}

// Status converts a service error into a gRPC status error. Errors that
// already carry a status pass through unchanged.
func Status(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	for _, m := range codeBySentinel {
		if errors.Is(err, m.err) {
			return status.Error(m.code, err.Error())
		}
	}
	return status.Error(codes.Internal, "internal error")
}

// UnaryInterceptor maps handler errors to status codes and logs each call.
func UnaryInterceptor(log *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		if err != nil {
			mapped := Status(err)
			code := status.Code(mapped)
			level := slog.LevelInfo
			if code == codes.Internal {
				level = slog.LevelError
			}
			log.Log(ctx, level, "grpc request",
				slog.String("method", info.FullMethod),
				slog.String("code", code.String()),
				slog.Duration("latency", time.Since(start)),
				slog.String("error", err.Error()),
			)
			return nil, mapped
		}
		log.Info("grpc request",
			slog.String("method", info.FullMethod),
			slog.String("code", codes.OK.String()),
			slog.Duration("latency", time.Since(start)),
		)
		return resp, nil
	}
}
