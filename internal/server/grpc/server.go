// Package grpc is the serving layer: it exposes the identity, verification
// and session services over gRPC and maps their errors to status codes.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/voxkeeper/internal/biometrics"
	"github.com/dmitrijs2005/voxkeeper/internal/logging"
	pb "github.com/dmitrijs2005/voxkeeper/internal/proto"
	"github.com/dmitrijs2005/voxkeeper/internal/server/models"
	"github.com/dmitrijs2005/voxkeeper/internal/server/sessions"
	"github.com/dmitrijs2005/voxkeeper/internal/server/verification"
	"google.golang.org/grpc"
)

type Enroller interface {
	Enroll(ctx context.Context, username, secret string, audio []byte) error
	Reenroll(ctx context.Context, username, secret string, audio []byte) error
}

type Verifier interface {
	Verify(ctx context.Context, req verification.Request) (*verification.Decision, error)
	CheckLiveness(ctx context.Context, audio []byte) (biometrics.Verdict, error)
	Threshold() float64
}

type Directory interface {
	ListUsernames(ctx context.Context) []string
}

type Transcripts interface {
	CreateSession(ctx context.Context, username, name string) (string, error)
	ListSessions(ctx context.Context, username string) ([]sessions.Summary, error)
	GetSession(ctx context.Context, username, sessionID string) (*models.Session, error)
	ListMessages(ctx context.Context, username, sessionID string) ([]models.ChatMessage, error)
	Send(ctx context.Context, username, sessionID, text string) (string, error)
	DeleteSession(ctx context.Context, username, sessionID string) error
}

// Services groups the collaborators behind the RPC handlers.
type Services struct {
	Enrollment   Enroller
	Verification Verifier
	Users        Directory
	Sessions     Transcripts
}

type GRPCServer struct {
	pb.UnimplementedVoxKeeperServer
	address   string
	svc       Services
	logger    logging.Logger
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewGRPCServer(a string, l logging.Logger, svc Services, secretKey string, tokenTTL time.Duration) *GRPCServer {
	return &GRPCServer{
		address:   a,
		svc:       svc,
		logger:    l.With("module", "grpc_server"),
		jwtSecret: []byte(secretKey),
		tokenTTL:  tokenTTL,
	}
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.requestIDInterceptor, s.accessTokenInterceptor))

	// registers service
	pb.RegisterVoxKeeperServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
