package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/voxkeeper/internal/common"
	pb "github.com/dmitrijs2005/voxkeeper/internal/proto"
	"github.com/dmitrijs2005/voxkeeper/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func newTestServer(secret string) *GRPCServer {
	return NewGRPCServer("", nopLogger{}, Services{}, secret, time.Minute)
}

func withToken(token string) context.Context {
	md := metadata.New(map[string]string{common.AccessTokenHeaderName: token})
	return metadata.NewIncomingContext(context.Background(), md)
}

func TestInterceptor_Unprotected_AllowsWithoutToken(t *testing.T) {
	s := newTestServer("secret")

	info := &grpc.UnaryServerInfo{FullMethod: pb.VoxKeeper_Verify_FullMethodName}
	handlerCalled := false

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		handlerCalled = true
		return "ok", nil
	}

	resp, err := s.accessTokenInterceptor(context.Background(), nil, info, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !handlerCalled {
		t.Fatal("handler was not called")
	}
	if resp != "ok" {
		t.Fatalf("unexpected handler resp: %v", resp)
	}
}

func TestInterceptor_Protected_MissingToken(t *testing.T) {
	s := newTestServer("secret")

	info := &grpc.UnaryServerInfo{FullMethod: pb.VoxKeeper_SendMessage_FullMethodName}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called when token missing")
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(context.Background(), nil, info, h)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != "missing token" {
		t.Fatalf("expected 'missing token', got %q", status.Convert(err).Message())
	}
}

func TestInterceptor_Protected_InvalidToken(t *testing.T) {
	s := newTestServer("secret")

	info := &grpc.UnaryServerInfo{FullMethod: pb.VoxKeeper_ListSessions_FullMethodName}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called for invalid token")
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(withToken("not-a-valid-jwt"), nil, info, h)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
}

func TestInterceptor_Protected_ExpiredToken(t *testing.T) {
	secret := "secret"
	s := newTestServer(secret)

	token, err := auth.GenerateToken("alice", "password", []byte(secret), -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	info := &grpc.UnaryServerInfo{FullMethod: pb.VoxKeeper_GetSession_FullMethodName}
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called for expired token")
		return nil, nil
	}

	_, err = s.accessTokenInterceptor(withToken(token), nil, info, h)
	if status.Convert(err).Message() != "token expired" {
		t.Fatalf("expected 'token expired', got %q", status.Convert(err).Message())
	}
}

func TestInterceptor_Protected_ValidToken_SetsUsername(t *testing.T) {
	secret := "super-secret"
	s := newTestServer(secret)

	token, err := auth.GenerateToken("alice", "password+voice", []byte(secret), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	info := &grpc.UnaryServerInfo{FullMethod: pb.VoxKeeper_CreateSession_FullMethodName}

	var gotFromCtx any
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		gotFromCtx = ctx.Value(UsernameKey)
		return "ok", nil
	}

	if _, err := s.accessTokenInterceptor(withToken(token), nil, info, h); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotFromCtx != "alice" {
		t.Fatalf("expected username in ctx, got %v", gotFromCtx)
	}
}

func TestRequestIDInterceptor(t *testing.T) {
	s := newTestServer("secret")
	info := &grpc.UnaryServerInfo{FullMethod: pb.VoxKeeper_Ping_FullMethodName}

	var got any
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		got = ctx.Value(RequestIDKey)
		return nil, nil
	}

	md := metadata.New(map[string]string{common.RequestIDHeaderName: "req-42"})
	if _, err := s.requestIDInterceptor(metadata.NewIncomingContext(context.Background(), md), nil, info, h); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "req-42" {
		t.Fatalf("expected caller request id, got %v", got)
	}

	if _, err := s.requestIDInterceptor(context.Background(), nil, info, h); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id, _ := got.(string); len(id) != 36 {
		t.Fatalf("expected generated uuid, got %v", got)
	}
}

func TestAuthorize(t *testing.T) {
	ctx := context.WithValue(context.Background(), UsernameKey, "alice")

	if err := authorize(ctx, "alice"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := authorize(ctx, "bob"); status.Code(err) != codes.PermissionDenied {
		t.Fatalf("expected PermissionDenied, got %v", err)
	}
	if err := authorize(context.Background(), "alice"); status.Code(err) != codes.PermissionDenied {
		t.Fatalf("expected PermissionDenied without token, got %v", err)
	}
}
