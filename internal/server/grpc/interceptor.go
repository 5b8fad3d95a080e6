package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/voxkeeper/internal/common"
	pb "github.com/dmitrijs2005/voxkeeper/internal/proto"
	"github.com/dmitrijs2005/voxkeeper/internal/server/auth"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const (
	UsernameKey  ctxKey = "username"
	RequestIDKey ctxKey = "requestID"
)

// protected lists the methods that need a verified access token.
var protected = map[string]bool{
	pb.VoxKeeper_CreateSession_FullMethodName: true,
	pb.VoxKeeper_ListSessions_FullMethodName:  true,
	pb.VoxKeeper_GetSession_FullMethodName:    true,
	pb.VoxKeeper_ListMessages_FullMethodName:  true,
	pb.VoxKeeper_SendMessage_FullMethodName:   true,
	pb.VoxKeeper_DeleteSession_FullMethodName: true,
}

func firstValue(ctx context.Context, key string) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(key); len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

// requestIDInterceptor tags every call with a request id, taken from the
// caller's metadata or freshly generated, and echoes it in the response header.
func (s *GRPCServer) requestIDInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	id := firstValue(ctx, common.RequestIDHeaderName)
	if id == "" {
		id = uuid.NewString()
	}
	_ = grpc.SetHeader(ctx, metadata.Pairs(common.RequestIDHeaderName, id))

	ctx = context.WithValue(ctx, RequestIDKey, id)
	s.logger.Debug(ctx, "Request", "method", info.FullMethod, "request_id", id)

	return handler(ctx, req)
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if protected[info.FullMethod] {

		accessToken := firstValue(ctx, common.AccessTokenHeaderName)
		if len(accessToken) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		username, err := auth.GetUsernameFromToken(accessToken, s.jwtSecret)
		if err != nil {
			if errors.Is(err, common.ErrTokenExpired) {
				return nil, status.Error(codes.Unauthenticated, "token expired")
			}
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}

		ctx = context.WithValue(ctx, UsernameKey, username)

	}

	return handler(ctx, req)
}

// authorize checks that the token subject owns username.
func authorize(ctx context.Context, username string) error {
	subject, _ := ctx.Value(UsernameKey).(string)
	if subject == "" || subject != username {
		return status.Error(codes.PermissionDenied, "token does not belong to this user")
	}
	return nil
}
