package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/voxkeeper/internal/dbx"
	"github.com/dmitrijs2005/voxkeeper/internal/server/migrations"
	"github.com/dmitrijs2005/voxkeeper/internal/server/models"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// documentID is the primary key of the single row holding the store.
const documentID = 1

// PostgresGateway keeps the document as one jsonb row. Saves are upserts
// inside a transaction, so concurrent readers see one version or the other.
type PostgresGateway struct {
	db *sql.DB
}

func NewPostgresGateway(db *sql.DB) *PostgresGateway {
	return &PostgresGateway{db: db}
}

// OpenPostgres opens a pgx-backed *sql.DB and verifies connectivity.
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded goose migrations.
func (g *PostgresGateway) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, g.db, "."); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func (g *PostgresGateway) Load(ctx context.Context) (*models.Document, error) {
	query := `SELECT body FROM identity_documents WHERE id = $1`

	var body []byte
	err := g.db.QueryRowContext(ctx, query, documentID).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.NewDocument(), nil
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	return Decode(body)
}

func (g *PostgresGateway) Save(ctx context.Context, doc *models.Document) error {
	body, err := Encode(doc)
	if err != nil {
		return err
	}

	query :=
		`INSERT INTO identity_documents (id, schema_version, body, updated_at)
		 VALUES ($1, $2, $3, now())
		 ON CONFLICT (id) DO UPDATE
		 SET schema_version = EXCLUDED.schema_version, body = EXCLUDED.body, updated_at = now()`

	return dbx.WithTx(ctx, g.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, query, documentID, doc.SchemaVersion, string(body)); err != nil {
			return fmt.Errorf("error performing sql request: %w", err)
		}
		return nil
	})
}
