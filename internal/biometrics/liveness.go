package biometrics

import "context"

// Verdict is the outcome of the anti-spoofing check.
type Verdict string

const (
	Bonafide Verdict = "bonafide"
	Spoofed  Verdict = "spoofed"
)

// LivenessClassifier labels audio as genuine speech or a spoof.
// Errors must never be read as a bonafide verdict.
type LivenessClassifier interface {
	Classify(ctx context.Context, audio []byte) (Verdict, error)
}

// VerdictFromProbability maps the classifier's bonafide probability to a
// verdict. Probabilities at or above cutoff are bonafide.
func VerdictFromProbability(p, cutoff float64) Verdict {
	if p >= cutoff {
		return Bonafide
	}
	return Spoofed
}
