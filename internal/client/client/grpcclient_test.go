package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/voxkeeper/internal/common"
	pb "github.com/dmitrijs2005/voxkeeper/internal/proto"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
)

/*************
 * Fake rpc client
 *************/

type fakeRPC struct {
	lastEnroll   *pb.EnrollRequest
	lastReenroll *pb.ReenrollRequest
	lastVerify   *pb.VerifyRequest
	lastCreate   *pb.CreateSessionRequest
	lastList     *pb.ListSessionsRequest
	lastGet      *pb.GetSessionRequest
	lastMessages *pb.ListMessagesRequest
	lastSend     *pb.SendMessageRequest
	lastDelete   *pb.DeleteSessionRequest
	hadDeadline  bool

	pingResp   *pb.PingResponse
	verifyResp *pb.VerifyResponse
	spoofResp  *pb.SpoofCheckResponse
	usersResp  *pb.ListUsersResponse
	createResp *pb.CreateSessionResponse
	listResp   *pb.ListSessionsResponse
	getResp    *pb.GetSessionResponse
	msgsResp   *pb.ListMessagesResponse
	sendResp   *pb.SendMessageResponse

	err error
}

var _ pb.VoxKeeperClient = (*fakeRPC)(nil)

func (f *fakeRPC) Ping(ctx context.Context, in *pb.PingRequest, opts ...grpc.CallOption) (*pb.PingResponse, error) {
	_, f.hadDeadline = ctx.Deadline()
	return f.pingResp, f.err
}
func (f *fakeRPC) Enroll(ctx context.Context, in *pb.EnrollRequest, opts ...grpc.CallOption) (*pb.EnrollResponse, error) {
	f.lastEnroll = in
	return &pb.EnrollResponse{Status: "enrolled", Username: in.Username}, f.err
}
func (f *fakeRPC) Reenroll(ctx context.Context, in *pb.ReenrollRequest, opts ...grpc.CallOption) (*pb.ReenrollResponse, error) {
	f.lastReenroll = in
	return &pb.ReenrollResponse{Status: "reenrolled", Username: in.Username}, f.err
}
func (f *fakeRPC) Verify(ctx context.Context, in *pb.VerifyRequest, opts ...grpc.CallOption) (*pb.VerifyResponse, error) {
	f.lastVerify = in
	return f.verifyResp, f.err
}
func (f *fakeRPC) SpoofCheck(ctx context.Context, in *pb.SpoofCheckRequest, opts ...grpc.CallOption) (*pb.SpoofCheckResponse, error) {
	return f.spoofResp, f.err
}
func (f *fakeRPC) ListUsers(ctx context.Context, in *pb.ListUsersRequest, opts ...grpc.CallOption) (*pb.ListUsersResponse, error) {
	return f.usersResp, f.err
}
func (f *fakeRPC) CreateSession(ctx context.Context, in *pb.CreateSessionRequest, opts ...grpc.CallOption) (*pb.CreateSessionResponse, error) {
	f.lastCreate = in
	return f.createResp, f.err
}
func (f *fakeRPC) ListSessions(ctx context.Context, in *pb.ListSessionsRequest, opts ...grpc.CallOption) (*pb.ListSessionsResponse, error) {
	f.lastList = in
	return f.listResp, f.err
}
func (f *fakeRPC) GetSession(ctx context.Context, in *pb.GetSessionRequest, opts ...grpc.CallOption) (*pb.GetSessionResponse, error) {
	f.lastGet = in
	return f.getResp, f.err
}
func (f *fakeRPC) ListMessages(ctx context.Context, in *pb.ListMessagesRequest, opts ...grpc.CallOption) (*pb.ListMessagesResponse, error) {
	f.lastMessages = in
	return f.msgsResp, f.err
}
func (f *fakeRPC) SendMessage(ctx context.Context, in *pb.SendMessageRequest, opts ...grpc.CallOption) (*pb.SendMessageResponse, error) {
	f.lastSend = in
	return f.sendResp, f.err
}
func (f *fakeRPC) DeleteSession(ctx context.Context, in *pb.DeleteSessionRequest, opts ...grpc.CallOption) (*pb.DeleteSessionResponse, error) {
	f.lastDelete = in
	return &pb.DeleteSessionResponse{Status: "deleted"}, f.err
}

func verified(f *fakeRPC) *GRPCClient {
	return &GRPCClient{client: f, username: "alice", accessToken: "tok"}
}

/*************
 * accessTokenInterceptor tests
 *************/

func TestInterceptor_AttachesToken(t *testing.T) {
	c := &GRPCClient{accessToken: "A1"}

	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		toks := md.Get(common.AccessTokenHeaderName)
		require.Equal(t, []string{"A1"}, toks)
		return nil
	}

	require.NoError(t, c.accessTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker))
}

func TestInterceptor_ReplacesExistingToken(t *testing.T) {
	c := &GRPCClient{accessToken: "new"}
	ctx := metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, "old")

	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		require.Equal(t, []string{"new"}, md.Get(common.AccessTokenHeaderName))
		return nil
	}

	require.NoError(t, c.accessTokenInterceptor(ctx, "/svc/Method", nil, nil, nil, invoker))
}

func TestInterceptor_NoTokenNoHeader(t *testing.T) {
	c := &GRPCClient{}
	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		require.Empty(t, md.Get(common.AccessTokenHeaderName))
		return status.Error(codes.Internal, "boom")
	}
	err := c.accessTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker)
	require.Error(t, err)
}

/*************
 * mapError tests
 *************/

func TestMapError(t *testing.T) {
	c := &GRPCClient{}

	cases := []struct {
		code codes.Code
		want error
	}{
		{codes.Unauthenticated, ErrUnauthorized},
		{codes.PermissionDenied, ErrForbidden},
		{codes.NotFound, ErrNotFound},
		{codes.AlreadyExists, ErrAlreadyExists},
		{codes.InvalidArgument, ErrInvalidInput},
		{codes.Unavailable, ErrUnavailable},
		{codes.DeadlineExceeded, ErrUnavailable},
	}
	for _, tc := range cases {
		err := c.mapError(status.Error(tc.code, "detail"))
		require.ErrorIs(t, err, tc.want, tc.code.String())
		require.ErrorContains(t, err, "detail")
	}

	require.NoError(t, c.mapError(nil))
	require.ErrorContains(t, c.mapError(errors.New("plain")), "rpc error:")
}

/*************
 * RPC wrappers
 *************/

func TestPing_OK(t *testing.T) {
	f := &fakeRPC{pingResp: &pb.PingResponse{Status: "OK"}}
	c := &GRPCClient{client: f, timeout: time.Second}
	require.NoError(t, c.Ping(context.Background()))
	require.True(t, f.hadDeadline)
}

func TestPing_NotOK_ReturnsUnavailable(t *testing.T) {
	f := &fakeRPC{pingResp: &pb.PingResponse{Status: "NOT_OK"}}
	c := &GRPCClient{client: f}
	require.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}

func TestPing_MapsRPCError(t *testing.T) {
	f := &fakeRPC{err: status.Error(codes.Unavailable, "down")}
	c := &GRPCClient{client: f}
	require.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}

func TestEnroll_PassesFields(t *testing.T) {
	f := &fakeRPC{}
	c := &GRPCClient{client: f}
	require.NoError(t, c.Enroll(context.Background(), "bob", "pw", []byte{1, 2}))
	require.True(t, proto.Equal(&pb.EnrollRequest{Username: "bob", Password: "pw", Audio: []byte{1, 2}}, f.lastEnroll))
}

func TestEnroll_MapsDuplicate(t *testing.T) {
	f := &fakeRPC{err: status.Error(codes.AlreadyExists, "username already exists")}
	c := &GRPCClient{client: f}
	require.ErrorIs(t, c.Enroll(context.Background(), "bob", "pw", []byte{1}), ErrAlreadyExists)
}

func TestReenroll_MapsUnauthorized(t *testing.T) {
	f := &fakeRPC{err: status.Error(codes.Unauthenticated, "invalid password")}
	c := &GRPCClient{client: f}
	err := c.Reenroll(context.Background(), "bob", "bad", []byte{1})
	require.ErrorIs(t, err, ErrUnauthorized)
	require.Equal(t, "bob", f.lastReenroll.Username)
}

func TestVerify_StoresIdentity(t *testing.T) {
	pw := "pw"
	f := &fakeRPC{verifyResp: &pb.VerifyResponse{Username: "alice", Result: "accepted", AccessToken: "T"}}
	c := &GRPCClient{client: f}

	resp, err := c.Verify(context.Background(), "alice", &pw, nil)
	require.NoError(t, err)
	require.Equal(t, "accepted", resp.Result)
	require.Equal(t, &pw, f.lastVerify.Password)

	user, tok := c.Identity()
	require.Equal(t, "alice", user)
	require.Equal(t, "T", tok)

	c.Forget()
	user, tok = c.Identity()
	require.Empty(t, user)
	require.Empty(t, tok)
}

func TestVerify_RejectedKeepsPreviousIdentity(t *testing.T) {
	f := &fakeRPC{err: status.Error(codes.Unauthenticated, "voice verification failed")}
	c := verified(f)

	_, err := c.Verify(context.Background(), "alice", nil, []byte{1})
	require.ErrorIs(t, err, ErrUnauthorized)

	_, tok := c.Identity()
	require.Equal(t, "tok", tok)
}

func TestVerify_RejectedResponseKeepsPreviousIdentity(t *testing.T) {
	score := 0.12
	f := &fakeRPC{verifyResp: &pb.VerifyResponse{Username: "alice", Method: "voice", Result: "rejected", Score: &score}}
	c := verified(f)

	resp, err := c.Verify(context.Background(), "alice", nil, []byte{1})
	require.NoError(t, err)
	require.Equal(t, "rejected", resp.Result)
	require.InDelta(t, 0.12, resp.GetScore(), 1e-12)

	user, tok := c.Identity()
	require.Equal(t, "alice", user)
	require.Equal(t, "tok", tok)
}

func TestSpoofCheckAndListUsers(t *testing.T) {
	f := &fakeRPC{
		spoofResp: &pb.SpoofCheckResponse{Result: "bonafide"},
		usersResp: &pb.ListUsersResponse{Count: 2, Users: []string{"a", "b"}},
	}
	c := &GRPCClient{client: f}

	sc, err := c.SpoofCheck(context.Background(), []byte{1})
	require.NoError(t, err)
	require.Equal(t, "bonafide", sc.Result)

	users, err := c.ListUsers(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, users)
}

func TestSessionCalls_RequireVerification(t *testing.T) {
	c := &GRPCClient{client: &fakeRPC{}}
	ctx := context.Background()

	_, err := c.CreateSession(ctx, "x")
	require.ErrorIs(t, err, ErrNotVerified)
	_, err = c.ListSessions(ctx)
	require.ErrorIs(t, err, ErrNotVerified)
	_, err = c.GetSession(ctx, "id")
	require.ErrorIs(t, err, ErrNotVerified)
	_, err = c.ListMessages(ctx, "id")
	require.ErrorIs(t, err, ErrNotVerified)
	_, err = c.SendMessage(ctx, "id", "hi")
	require.ErrorIs(t, err, ErrNotVerified)
	require.ErrorIs(t, c.DeleteSession(ctx, "id"), ErrNotVerified)
}

func TestSessionCalls_UseVerifiedUsername(t *testing.T) {
	f := &fakeRPC{
		createResp: &pb.CreateSessionResponse{SessionId: "s1"},
		listResp:   &pb.ListSessionsResponse{Sessions: []*pb.SessionInfo{{SessionId: "s1"}}},
		getResp:    &pb.GetSessionResponse{SessionId: "s1"},
		msgsResp:   &pb.ListMessagesResponse{Messages: []*pb.Message{{Role: "human", Message: "hi"}}},
		sendResp:   &pb.SendMessageResponse{Reply: "hello"},
	}
	c := verified(f)
	ctx := context.Background()

	id, err := c.CreateSession(ctx, "chat")
	require.NoError(t, err)
	require.Equal(t, "s1", id)
	require.Equal(t, "alice", f.lastCreate.Username)
	require.Equal(t, "chat", f.lastCreate.Name)

	list, err := c.ListSessions(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "alice", f.lastList.Username)

	s, err := c.GetSession(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, "s1", s.SessionId)

	msgs, err := c.ListMessages(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	require.Equal(t, "s1", f.lastMessages.SessionId)

	reply, err := c.SendMessage(ctx, "s1", "hi")
	require.NoError(t, err)
	require.Equal(t, "hello", reply)
	require.True(t, proto.Equal(&pb.SendMessageRequest{Username: "alice", SessionId: "s1", Message: "hi"}, f.lastSend))

	require.NoError(t, c.DeleteSession(ctx, "s1"))
	require.Equal(t, "s1", f.lastDelete.SessionId)
}

func TestSessionCalls_MapErrors(t *testing.T) {
	f := &fakeRPC{err: status.Error(codes.NotFound, "session not found")}
	c := verified(f)

	_, err := c.GetSession(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)

	f.err = status.Error(codes.Unavailable, "chat relay unavailable")
	_, err = c.SendMessage(context.Background(), "s1", "hi")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestNewVoxKeeperClient_LazyConnect(t *testing.T) {
	c, err := NewVoxKeeperClient("127.0.0.1:1", time.Second)
	require.NoError(t, err)
	require.NotNil(t, c.client)
	require.NoError(t, c.Close())
}
