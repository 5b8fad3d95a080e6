// Package verification combines liveness, credential and voice similarity
// checks into one accept or reject decision.
//
// Evaluation order is fixed: input presence, user existence, then for the
// combined mode liveness, credential and similarity. The first failing stage
// ends the run. A spoofed liveness verdict is an absolute veto.
package verification

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/voxkeeper/internal/biometrics"
	"github.com/dmitrijs2005/voxkeeper/internal/common"
	"github.com/dmitrijs2005/voxkeeper/internal/logging"
	"github.com/dmitrijs2005/voxkeeper/internal/server/models"
)

// Directory is the read side of the identity record store.
type Directory interface {
	Find(ctx context.Context, username string, strict bool) (*models.User, error)
	VerifyCredential(ctx context.Context, username, candidate string) (bool, error)
}

type Orchestrator struct {
	users     Directory
	extractor biometrics.Extractor
	liveness  biometrics.LivenessClassifier
	threshold float64
	logger    logging.Logger
}

// NewOrchestrator builds an Orchestrator. A voice score must be strictly
// greater than threshold to be accepted.
func NewOrchestrator(users Directory, extractor biometrics.Extractor, liveness biometrics.LivenessClassifier, threshold float64, logger logging.Logger) *Orchestrator {
	return &Orchestrator{
		users:     users,
		extractor: extractor,
		liveness:  liveness,
		threshold: threshold,
		logger:    logger.With("module", "verification"),
	}
}

// Threshold returns the configured acceptance threshold.
func (o *Orchestrator) Threshold() float64 {
	return o.threshold
}

// Verify runs the checks selected by which factors req carries. On
// rejection it returns the partial decision together with an error wrapping
// the reason; errors before mode selection return a nil decision.
func (o *Orchestrator) Verify(ctx context.Context, req Request) (*Decision, error) {
	method, ok := req.method()
	if !ok {
		return nil, common.ErrInsufficientInput
	}

	user, err := o.users.Find(ctx, req.Username, true)
	if err != nil {
		return nil, err
	}

	d := &Decision{Username: user.Username, Method: method, Outcome: Rejected}

	switch method {
	case MethodPassword:
		err = o.checkCredential(ctx, user.Username, *req.Secret)
	case MethodVoice:
		err = o.checkLiveness(ctx, d, req.Audio)
		if err == nil {
			err = o.checkVoice(ctx, d, user, req.Audio)
		}
	case MethodPasswordVoice:
		err = o.checkLiveness(ctx, d, req.Audio)
		if err == nil {
			err = o.checkCredential(ctx, user.Username, *req.Secret)
		}
		if err == nil {
			err = o.checkVoice(ctx, d, user, req.Audio)
		}
	}

	o.log(ctx, d, err)
	if err != nil {
		return d, err
	}
	d.Outcome = Accepted
	return d, nil
}

// CheckLiveness classifies audio without touching the store.
func (o *Orchestrator) CheckLiveness(ctx context.Context, audio []byte) (biometrics.Verdict, error) {
	if len(audio) == 0 {
		return "", common.ErrInsufficientInput
	}
	v, err := o.classify(ctx, audio)
	if err != nil {
		o.logger.Error(ctx, "Liveness check failed", "error", err)
		return "", err
	}
	return v, nil
}

func (o *Orchestrator) classify(ctx context.Context, audio []byte) (biometrics.Verdict, error) {
	v, err := o.liveness.Classify(ctx, audio)
	if err != nil {
		return "", processing(err)
	}
	return v, nil
}

func (o *Orchestrator) checkLiveness(ctx context.Context, d *Decision, audio []byte) error {
	v, err := o.classify(ctx, audio)
	if err != nil {
		return err
	}
	d.Liveness = v
	if v != biometrics.Bonafide {
		return common.ErrSpoofDetected
	}
	return nil
}

func (o *Orchestrator) checkCredential(ctx context.Context, username, secret string) error {
	ok, err := o.users.VerifyCredential(ctx, username, secret)
	if err != nil {
		return err
	}
	if !ok {
		return common.ErrInvalidCredential
	}
	return nil
}

func (o *Orchestrator) checkVoice(ctx context.Context, d *Decision, user *models.User, audio []byte) error {
	if len(user.VoiceSignature) == 0 {
		return common.ErrSignatureMissing
	}

	candidate, err := o.extractor.Extract(ctx, audio)
	if err != nil {
		return processing(err)
	}

	score, err := biometrics.MeanCosine(candidate, biometrics.Vector(user.VoiceSignature).AsBatch())
	if err != nil {
		return processing(err)
	}
	d.Score = &score

	// NaN never passes.
	if !(score > o.threshold) {
		return common.ErrLowSimilarity
	}
	return nil
}

func (o *Orchestrator) log(ctx context.Context, d *Decision, err error) {
	args := []any{"username", d.Username, "method", d.Method}
	if d.Score != nil {
		args = append(args, "score", *d.Score)
	}
	if d.Liveness != "" {
		args = append(args, "liveness", d.Liveness)
	}

	switch {
	case err == nil:
		o.logger.Info(ctx, "Verification accepted", args...)
	case common.IsOperational(err):
		o.logger.Error(ctx, "Verification failed", append(args, "error", err)...)
	default:
		o.logger.Warn(ctx, "Verification rejected", append(args, "reason", err)...)
	}
}

func processing(err error) error {
	if errors.Is(err, common.ErrProcessingFailure) {
		return err
	}
	return fmt.Errorf("%w: %v", common.ErrProcessingFailure, err)
}
