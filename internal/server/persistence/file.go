package persistence

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/dmitrijs2005/voxkeeper/internal/filex"
	"github.com/dmitrijs2005/voxkeeper/internal/server/models"
)

// FileGateway keeps the document in a single JSON file on local disk.
type FileGateway struct {
	path string
}

func NewFileGateway(path string) *FileGateway {
	return &FileGateway{path: path}
}

// Load reads the file. A missing file is a first run and yields an empty document.
func (g *FileGateway) Load(ctx context.Context) (*models.Document, error) {
	data, err := os.ReadFile(g.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.NewDocument(), nil
		}
		return nil, fmt.Errorf("read %s: %w", g.path, err)
	}
	return Decode(data)
}

// Save writes the document through a temp file and rename.
func (g *FileGateway) Save(ctx context.Context, doc *models.Document) error {
	data, err := Encode(doc)
	if err != nil {
		return err
	}
	return filex.WriteFileAtomic(g.path, data, 0o600)
}
