package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dmitrijs2005/voxkeeper/internal/client/client"
	"github.com/dmitrijs2005/voxkeeper/internal/client/config"
	pb "github.com/dmitrijs2005/voxkeeper/internal/proto"
)

// Backend is the server surface the CLI drives. *client.GRPCClient
// implements it.
type Backend interface {
	Ping(ctx context.Context) error
	Enroll(ctx context.Context, username, password string, audio []byte) error
	Reenroll(ctx context.Context, username, password string, audio []byte) error
	Verify(ctx context.Context, username string, password *string, audio []byte) (*pb.VerifyResponse, error)
	SpoofCheck(ctx context.Context, audio []byte) (*pb.SpoofCheckResponse, error)
	ListUsers(ctx context.Context) ([]string, error)
	CreateSession(ctx context.Context, name string) (string, error)
	ListSessions(ctx context.Context) ([]*pb.SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*pb.GetSessionResponse, error)
	ListMessages(ctx context.Context, sessionID string) ([]*pb.Message, error)
	SendMessage(ctx context.Context, sessionID, message string) (string, error)
	DeleteSession(ctx context.Context, sessionID string) error
	Identity() (string, string)
	Forget()
	Close() error
}

type App struct {
	config  *config.Config
	backend Backend
	reader  *bufio.Reader
	out     io.Writer

	// currentSession is the chat session used when a command omits an id.
	currentSession string
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewVoxKeeperClient(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	return &App{config: c, backend: apiClient, reader: bufio.NewReader(os.Stdin), out: os.Stdout}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.backend.Close()

	log.Println("Welcome to VoxKeeper CLI (type 'help' for commands)")

	if err := a.backend.Ping(ctx); err != nil {
		log.Printf("server %s not reachable: %v", a.config.ServerEndpointAddr, err)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isVerified() bool {
	_, token := a.backend.Identity()
	return token != ""
}

func (a *App) getStatus() string {
	user, _ := a.backend.Identity()
	s := user
	if a.currentSession != "" {
		if s != "" {
			s += " "
		}
		s += shortID(a.currentSession)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
