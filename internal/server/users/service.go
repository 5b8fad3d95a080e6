// Package users implements the identity record store: create, lookup,
// signature replacement and credential checks over the shared store.
package users

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/voxkeeper/internal/common"
	"github.com/dmitrijs2005/voxkeeper/internal/cryptox"
	"github.com/dmitrijs2005/voxkeeper/internal/logging"
	"github.com/dmitrijs2005/voxkeeper/internal/server/models"
	"github.com/dmitrijs2005/voxkeeper/internal/server/store"
)

type Service struct {
	store        *store.Store
	params       cryptox.Params
	embeddingDim int
	logger       logging.Logger
}

// NewService builds a Service. embeddingDim fixes the signature length for
// the deployment; zero means the length of the first stored signature wins.
func NewService(st *store.Store, params cryptox.Params, embeddingDim int, logger logging.Logger) *Service {
	return &Service{
		store:        st,
		params:       params,
		embeddingDim: embeddingDim,
		logger:       logger.With("module", "users"),
	}
}

// Create inserts a new record and persists it before returning.
func (s *Service) Create(ctx context.Context, username, secret string, signature []float64) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("empty username: %w", common.ErrorValidation)
	}
	if secret == "" {
		return fmt.Errorf("empty credential: %w", common.ErrorValidation)
	}
	if len(signature) == 0 {
		return fmt.Errorf("empty voice signature: %w", common.ErrorValidation)
	}

	// hashing is slow, keep it out of the write lock
	if s.Exists(username) {
		return common.ErrorAlreadyExists
	}
	hash, err := cryptox.HashSecret(secret, s.params)
	if err != nil {
		return fmt.Errorf("hash credential: %w", err)
	}

	err = s.store.Update(ctx, func(doc *models.Document) error {
		if _, ok := doc.Users[username]; ok {
			return common.ErrorAlreadyExists
		}
		if err := s.checkDim(doc, "", len(signature)); err != nil {
			return err
		}
		doc.Users[username] = &models.User{
			Username:         username,
			CredentialSecret: hash,
			VoiceSignature:   slices.Clone(signature),
			Sessions:         map[string]*models.Session{},
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info(ctx, "User created", "username", username)
	return nil
}

// Exists reports whether username is present.
func (s *Service) Exists(username string) bool {
	var ok bool
	_ = s.store.View(func(doc *models.Document) error {
		_, ok = doc.Users[username]
		return nil
	})
	return ok
}

// Find returns a copy of the record. When the user is absent it returns
// common.ErrorNotFound if strict is set, and (nil, nil) otherwise.
func (s *Service) Find(ctx context.Context, username string, strict bool) (*models.User, error) {
	var u *models.User
	_ = s.store.View(func(doc *models.Document) error {
		u = doc.Users[username].Clone()
		return nil
	})
	if u == nil && strict {
		return nil, fmt.Errorf("%s: %w", username, common.ErrorNotFound)
	}
	return u, nil
}

// UpdateSignature replaces the stored voice signature and persists.
func (s *Service) UpdateSignature(ctx context.Context, username string, signature []float64) error {
	if len(signature) == 0 {
		return fmt.Errorf("empty voice signature: %w", common.ErrorValidation)
	}

	err := s.store.Update(ctx, func(doc *models.Document) error {
		u, ok := doc.Users[username]
		if !ok {
			return fmt.Errorf("%s: %w", username, common.ErrorNotFound)
		}
		if err := s.checkDim(doc, username, len(signature)); err != nil {
			return err
		}
		u.VoiceSignature = slices.Clone(signature)
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info(ctx, "Voice signature updated", "username", username)
	return nil
}

// VerifyCredential reports whether candidate matches the stored secret
// exactly. Comparison is case-sensitive and constant-time.
func (s *Service) VerifyCredential(ctx context.Context, username, candidate string) (bool, error) {
	u, err := s.Find(ctx, username, true)
	if err != nil {
		return false, err
	}

	ok, err := cryptox.VerifySecret(candidate, u.CredentialSecret)
	if err != nil {
		s.logger.Error(ctx, "Stored credential is unreadable", "username", username, "error", err)
		return false, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}
	return ok, nil
}

// ListUsernames returns a sorted snapshot of every username.
func (s *Service) ListUsernames(ctx context.Context) []string {
	var names []string
	_ = s.store.View(func(doc *models.Document) error {
		names = make([]string, 0, len(doc.Users))
		for name := range doc.Users {
			names = append(names, name)
		}
		return nil
	})
	slices.Sort(names)
	return names
}

// checkDim enforces one signature length per deployment. Without a
// configured length, any other record's signature sets it.
func (s *Service) checkDim(doc *models.Document, skip string, n int) error {
	want := s.embeddingDim
	if want == 0 {
		for name, u := range doc.Users {
			if name != skip && len(u.VoiceSignature) > 0 {
				want = len(u.VoiceSignature)
				break
			}
		}
	}
	if want != 0 && n != want {
		return fmt.Errorf("%w: got %d, want %d", common.ErrDimensionMismatch, n, want)
	}
	return nil
}
