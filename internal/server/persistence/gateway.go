// Package persistence loads and saves the whole identity store document.
//
// Every backend stores the document as one self-describing JSON value and
// replaces it atomically on save: a reader sees either the previous document
// or the new one, never a mix. A backend with no prior state loads as an
// empty document.
package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/voxkeeper/internal/server/models"
)

// Gateway is the durable medium behind the store.
type Gateway interface {
	Load(ctx context.Context) (*models.Document, error)
	Save(ctx context.Context, doc *models.Document) error
}

// Encode renders doc as indented JSON so it can be inspected by hand.
func Encode(doc *models.Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "    ")
}

// Decode parses a persisted document and fills in the defaults that older
// writers may have left out.
func Decode(data []byte) (*models.Document, error) {
	doc := models.NewDocument()
	doc.SchemaVersion = 0
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	if doc.SchemaVersion > models.SchemaVersion {
		return nil, fmt.Errorf("document schema version %d is newer than supported %d", doc.SchemaVersion, models.SchemaVersion)
	}
	doc.SchemaVersion = models.SchemaVersion
	if doc.Users == nil {
		doc.Users = map[string]*models.User{}
	}
	for name, u := range doc.Users {
		if u == nil {
			delete(doc.Users, name)
			continue
		}
		if u.Username == "" {
			u.Username = name
		}
		if u.Sessions == nil {
			u.Sessions = map[string]*models.Session{}
		}
		for id, s := range u.Sessions {
			if s == nil {
				delete(u.Sessions, id)
				continue
			}
			if s.Messages == nil {
				s.Messages = []models.ChatMessage{}
			}
		}
	}
	return doc, nil
}
