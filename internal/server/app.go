// Package server wires the VoxKeeper server together: it opens the storage
// backend, builds the services around the shared store, and runs the gRPC
// endpoint until a shutdown signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/voxkeeper/internal/cryptox"
	"github.com/dmitrijs2005/voxkeeper/internal/logging"
	"github.com/dmitrijs2005/voxkeeper/internal/server/config"
	"github.com/dmitrijs2005/voxkeeper/internal/server/enrollment"
	"github.com/dmitrijs2005/voxkeeper/internal/server/inference"
	"github.com/dmitrijs2005/voxkeeper/internal/server/persistence"
	"github.com/dmitrijs2005/voxkeeper/internal/server/relay"
	"github.com/dmitrijs2005/voxkeeper/internal/server/sessions"
	"github.com/dmitrijs2005/voxkeeper/internal/server/store"
	"github.com/dmitrijs2005/voxkeeper/internal/server/users"
	"github.com/dmitrijs2005/voxkeeper/internal/server/verification"

	gs "github.com/dmitrijs2005/voxkeeper/internal/server/grpc"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	services gs.Services
	db       *sql.DB
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	app := &App{config: c, logger: logger}

	gw, err := app.openGateway(ctx)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	st, err := store.Open(ctx, gw, logger)
	if err != nil {
		app.close()
		return nil, err
	}

	sidecar := inference.New(c.InferenceEndpoint, c.InferenceTimeout, c.LivenessCutoff)
	us := users.NewService(st, cryptox.DefaultParams(), c.EmbeddingDim, logger)

	app.services = gs.Services{
		Enrollment:   enrollment.NewService(us, sidecar, sidecar, logger),
		Verification: verification.NewOrchestrator(us, sidecar, sidecar, c.SimilarityThreshold, logger),
		Users:        us,
		Sessions:     sessions.NewService(st, relay.New(c.RelayURL, c.RelayTimeout), logger),
	}

	return app, nil
}

func (app *App) openGateway(ctx context.Context) (persistence.Gateway, error) {
	c := app.config

	switch c.StorageBackend {
	case config.BackendFile:
		return persistence.NewFileGateway(c.StoragePath), nil

	case config.BackendPostgres:
		db, err := persistence.OpenPostgres(ctx, c.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		app.db = db
		gw := persistence.NewPostgresGateway(db)
		if err := gw.RunMigrations(ctx); err != nil {
			app.close()
			return nil, err
		}
		return gw, nil

	case config.BackendS3:
		client, err := persistence.NewS3Client(ctx, persistence.S3Options{
			AccessKey:    c.S3RootUser,
			SecretKey:    c.S3RootPassword,
			Region:       c.S3Region,
			BaseEndpoint: c.S3BaseEndpoint,
		})
		if err != nil {
			return nil, err
		}
		return persistence.NewS3Gateway(client, c.S3Bucket, c.S3ObjectKey), nil
	}

	return nil, fmt.Errorf("unknown storage backend %q", c.StorageBackend)
}

func (app *App) close() {
	if app.db != nil {
		_ = app.db.Close()
		app.db = nil
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.services, app.config.SecretKey, app.config.AccessTokenValidityDuration)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()
	defer app.close()

	app.logger.Info(ctx, "Starting app...", "backend", app.config.StorageBackend)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

}
