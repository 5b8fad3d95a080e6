// Package enrollment registers new identities from a credential and a voice
// sample, and replaces the voice signature of existing ones.
package enrollment

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/voxkeeper/internal/biometrics"
	"github.com/dmitrijs2005/voxkeeper/internal/common"
	"github.com/dmitrijs2005/voxkeeper/internal/logging"
)

// Registry is the write side of the identity record store.
type Registry interface {
	Exists(username string) bool
	Create(ctx context.Context, username, secret string, signature []float64) error
	UpdateSignature(ctx context.Context, username string, signature []float64) error
	VerifyCredential(ctx context.Context, username, candidate string) (bool, error)
}

type Service struct {
	users     Registry
	extractor biometrics.Extractor
	liveness  biometrics.LivenessClassifier
	logger    logging.Logger
}

func NewService(users Registry, extractor biometrics.Extractor, liveness biometrics.LivenessClassifier, logger logging.Logger) *Service {
	return &Service{
		users:     users,
		extractor: extractor,
		liveness:  liveness,
		logger:    logger.With("module", "enrollment"),
	}
}

// Enroll extracts a signature from audio and creates the user. A taken
// username is rejected before any extraction, and a failed extraction leaves
// the store untouched.
func (s *Service) Enroll(ctx context.Context, username, secret string, audio []byte) error {
	if len(audio) == 0 {
		return common.ErrInsufficientInput
	}
	if s.users.Exists(username) {
		return common.ErrorAlreadyExists
	}

	batch, err := s.extract(ctx, audio)
	if err != nil {
		return err
	}
	return s.EnrollEmbedding(ctx, username, secret, batch)
}

// EnrollEmbedding creates the user from an already extracted embedding.
func (s *Service) EnrollEmbedding(ctx context.Context, username, secret string, embedding biometrics.Batch) error {
	sig, err := signature(embedding)
	if err != nil {
		return err
	}
	if err := s.users.Create(ctx, username, secret, sig); err != nil {
		return err
	}

	s.logger.Info(ctx, "User enrolled", "username", username, "dim", len(sig))
	return nil
}

// Reenroll replaces the voice signature of an existing user. The sample
// must pass liveness and the credential must match before anything is
// extracted.
func (s *Service) Reenroll(ctx context.Context, username, secret string, audio []byte) error {
	if len(audio) == 0 {
		return common.ErrInsufficientInput
	}
	if !s.users.Exists(username) {
		return fmt.Errorf("%s: %w", username, common.ErrorNotFound)
	}

	verdict, err := s.liveness.Classify(ctx, audio)
	if err != nil {
		s.logger.Error(ctx, "Liveness check failed", "username", username, "error", err)
		return processing(err)
	}
	if verdict != biometrics.Bonafide {
		s.logger.Warn(ctx, "Re-enrollment rejected", "username", username, "reason", common.ErrSpoofDetected)
		return common.ErrSpoofDetected
	}

	ok, err := s.users.VerifyCredential(ctx, username, secret)
	if err != nil {
		return err
	}
	if !ok {
		s.logger.Warn(ctx, "Re-enrollment rejected", "username", username, "reason", common.ErrInvalidCredential)
		return common.ErrInvalidCredential
	}

	batch, err := s.extract(ctx, audio)
	if err != nil {
		return err
	}
	sig, err := signature(batch)
	if err != nil {
		return err
	}
	return s.users.UpdateSignature(ctx, username, sig)
}

func (s *Service) extract(ctx context.Context, audio []byte) (biometrics.Batch, error) {
	batch, err := s.extractor.Extract(ctx, audio)
	if err != nil {
		s.logger.Error(ctx, "Embedding extraction failed", "error", err)
		return nil, processing(err)
	}
	return batch, nil
}

// signature squeezes a batch to one row and scales it to unit length.
func signature(b biometrics.Batch) ([]float64, error) {
	v, err := biometrics.Squeeze(b)
	if err != nil {
		return nil, err
	}
	return biometrics.Normalize(v), nil
}

func processing(err error) error {
	if errors.Is(err, common.ErrProcessingFailure) {
		return err
	}
	return fmt.Errorf("%w: %v", common.ErrProcessingFailure, err)
}
