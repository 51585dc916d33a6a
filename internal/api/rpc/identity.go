package rpc

import (
	"context"
	"strings"

	"github.com/Domenick1991/eventbooking/internal/domain"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc/metadata"
)

const (
	MetadataUserID   = "x-user-id"
	MetadataUserRole = "x-user-role"
)

// Identity reads the caller from incoming metadata. Unknown roles fall back
// to a plain user.
func Identity(ctx context.Context) domain.Identity {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return domain.Identity{}
	}
	role := domain.Role(strings.ToLower(first(md, MetadataUserRole)))
	if !role.Valid() {
		role = domain.RoleUser
	}
	return domain.Identity{UserID: first(md, MetadataUserID), Role: role}
}

// WithIdentity attaches who to an outgoing call.
func WithIdentity(ctx context.Context, who domain.Identity) context.Context {
	return metadata.AppendToOutgoingContext(ctx,
		MetadataUserID, who.UserID,
		MetadataUserRole, string(who.Role),
	)
}

func first(md metadata.MD, key string) string {
	if v := md.Get(key); len(v) > 0 {
		return strings.TrimSpace(v[0])
	}
	return ""
}

// HeaderMatcher forwards the identity headers of a REST call through the
// gateway as the metadata keys Identity reads. Other headers follow the
// gateway's default rules.
func HeaderMatcher(key string) (string, bool) {
	switch {
	case strings.EqualFold(key, MetadataUserID):
		return MetadataUserID, true
	case strings.EqualFold(key, MetadataUserRole):
		return MetadataUserRole, true
	}
	return runtime.DefaultHeaderMatcher(key)
}
