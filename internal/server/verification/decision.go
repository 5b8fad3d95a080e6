package verification

import "github.com/dmitrijs2005/voxkeeper/internal/biometrics"

// Method names the factors a verification evaluated.
type Method string

const (
	MethodPassword      Method = "password"
	MethodVoice         Method = "voice"
	MethodPasswordVoice Method = "password+voice"
)

// Outcome is the overall verdict of a verification.
type Outcome string

const (
	Accepted Outcome = "accepted"
	Rejected Outcome = "rejected"
)

// Request carries the factors a caller submitted. A nil Secret means no
// credential was supplied; an empty Audio means no voice sample.
type Request struct {
	Username string
	Secret   *string
	Audio    []byte
}

func (r Request) method() (Method, bool) {
	switch hasSecret, hasAudio := r.Secret != nil, len(r.Audio) > 0; {
	case hasSecret && hasAudio:
		return MethodPasswordVoice, true
	case hasSecret:
		return MethodPassword, true
	case hasAudio:
		return MethodVoice, true
	}
	return "", false
}

// Decision is the transient result of one verification. Score is set only
// when a similarity was computed; Liveness only when the check ran.
type Decision struct {
	Username string
	Method   Method
	Score    *float64
	Liveness biometrics.Verdict
	Outcome  Outcome
}

// Accepted reports whether every evaluated factor passed.
func (d *Decision) Accepted() bool {
	return d != nil && d.Outcome == Accepted
}
