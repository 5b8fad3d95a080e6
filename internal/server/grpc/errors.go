package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/voxkeeper/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var statusMap = []struct {
	err  error
	code codes.Code
	msg  string
}{
	{common.ErrorNotFound, codes.NotFound, "user not enrolled"},
	{common.ErrSessionNotFound, codes.NotFound, "session not found"},
	{common.ErrorAlreadyExists, codes.AlreadyExists, "username already exists"},
	{common.ErrInvalidCredential, codes.Unauthenticated, "invalid password"},
	{common.ErrLowSimilarity, codes.Unauthenticated, "voice verification failed"},
	{common.ErrSpoofDetected, codes.PermissionDenied, "spoofed or synthetic voice detected"},
	{common.ErrInsufficientInput, codes.InvalidArgument, "password or voice sample required"},
	{common.ErrSignatureMissing, codes.FailedPrecondition, "no voice signature enrolled"},
	{common.ErrorValidation, codes.InvalidArgument, ""},
	// relay before processing: it wraps it
	{common.ErrRelayUnavailable, codes.Unavailable, "chat relay unavailable"},
	{common.ErrProcessingFailure, codes.Internal, "failed to process voice sample"},
	{common.ErrPersistenceFailure, codes.Internal, "failed to persist store"},
}

// toStatus converts a service error to a gRPC status. The services log
// their own failures; only errors missing from statusMap are logged here.
func (s *GRPCServer) toStatus(ctx context.Context, method string, err error) error {
	if _, ok := status.FromError(err); ok {
		return err
	}

	for _, m := range statusMap {
		if errors.Is(err, m.err) {
			msg := m.msg
			if msg == "" {
				msg = err.Error()
			}
			return status.Error(m.code, msg)
		}
	}

	s.logger.Error(ctx, "Unexpected error", "method", method, "request_id", ctx.Value(RequestIDKey), "error", err)
	return status.Error(codes.Internal, "internal error")
}
