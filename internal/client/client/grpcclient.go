package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/voxkeeper/internal/common"
	pb "github.com/dmitrijs2005/voxkeeper/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// GRPCClient talks to the VoxKeeper server and remembers the access token
// from the last accepted verification.
type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      pb.VoxKeeperClient

	mu          sync.RWMutex
	username    string
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	if _, token := s.Identity(); token != "" {
		ctx = withAccessToken(ctx, token)
	}

	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewVoxKeeperClient connects lazily to endpointURL. Every call is bounded
// by timeout.
func NewVoxKeeperClient(endpointURL string, timeout time.Duration) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewVoxKeeperClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

// Identity returns the verified username and its token, if any.
func (s *GRPCClient) Identity() (string, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.username, s.accessToken
}

// Forget drops the remembered identity.
func (s *GRPCClient) Forget() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.username, s.accessToken = "", ""
}

func (s *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *GRPCClient) verifiedUser() (string, error) {
	username, token := s.Identity()
	if token == "" {
		return "", ErrNotVerified
	}
	return username, nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) Enroll(ctx context.Context, username, password string, audio []byte) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err := s.client.Enroll(ctx, &pb.EnrollRequest{Username: username, Password: password, Audio: audio})
	return s.mapError(err)
}

func (s *GRPCClient) Reenroll(ctx context.Context, username, password string, audio []byte) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err := s.client.Reenroll(ctx, &pb.ReenrollRequest{Username: username, Password: password, Audio: audio})
	return s.mapError(err)
}

// Verify submits whichever factors are set. On acceptance the returned
// token is kept for the session calls; a rejected response leaves the
// current identity untouched.
func (s *GRPCClient) Verify(ctx context.Context, username string, password *string, audio []byte) (*pb.VerifyResponse, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Verify(ctx, &pb.VerifyRequest{Username: username, Password: password, Audio: audio})
	if err != nil {
		return nil, s.mapError(err)
	}
	if resp.AccessToken == "" {
		return resp, nil
	}

	s.mu.Lock()
	s.username, s.accessToken = resp.Username, resp.AccessToken
	s.mu.Unlock()

	return resp, nil
}

func (s *GRPCClient) SpoofCheck(ctx context.Context, audio []byte) (*pb.SpoofCheckResponse, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.SpoofCheck(ctx, &pb.SpoofCheckRequest{Audio: audio})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) ListUsers(ctx context.Context) ([]string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.ListUsers(ctx, &pb.ListUsersRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Users, nil
}

func (s *GRPCClient) CreateSession(ctx context.Context, name string) (string, error) {
	username, err := s.verifiedUser()
	if err != nil {
		return "", err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.CreateSession(ctx, &pb.CreateSessionRequest{Username: username, Name: name})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.SessionId, nil
}

func (s *GRPCClient) ListSessions(ctx context.Context) ([]*pb.SessionInfo, error) {
	username, err := s.verifiedUser()
	if err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.ListSessions(ctx, &pb.ListSessionsRequest{Username: username})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Sessions, nil
}

func (s *GRPCClient) GetSession(ctx context.Context, sessionID string) (*pb.GetSessionResponse, error) {
	username, err := s.verifiedUser()
	if err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.GetSession(ctx, &pb.GetSessionRequest{Username: username, SessionId: sessionID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) ListMessages(ctx context.Context, sessionID string) ([]*pb.Message, error) {
	username, err := s.verifiedUser()
	if err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.ListMessages(ctx, &pb.ListMessagesRequest{Username: username, SessionId: sessionID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Messages, nil
}

func (s *GRPCClient) SendMessage(ctx context.Context, sessionID, message string) (string, error) {
	username, err := s.verifiedUser()
	if err != nil {
		return "", err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.SendMessage(ctx, &pb.SendMessageRequest{Username: username, SessionId: sessionID, Message: message})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.Reply, nil
}

func (s *GRPCClient) DeleteSession(ctx context.Context, sessionID string) error {
	username, err := s.verifiedUser()
	if err != nil {
		return err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err = s.client.DeleteSession(ctx, &pb.DeleteSessionRequest{Username: username, SessionId: sessionID})
	return s.mapError(err)
}

// mapError turns a gRPC status into a client error that keeps the server's
// message, e.g. "unauthorized: invalid password".
func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrForbidden, st.Message())
	case codes.NotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, st.Message())
	case codes.AlreadyExists:
		return fmt.Errorf("%w: %s", ErrAlreadyExists, st.Message())
	case codes.InvalidArgument, codes.FailedPrecondition:
		return fmt.Errorf("%w: %s", ErrInvalidInput, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%w: %s", ErrUnavailable, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
