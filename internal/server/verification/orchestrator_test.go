package verification

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/voxkeeper/internal/biometrics"
	"github.com/dmitrijs2005/voxkeeper/internal/common"
	"github.com/dmitrijs2005/voxkeeper/internal/cryptox"
	"github.com/dmitrijs2005/voxkeeper/internal/logging"
	"github.com/dmitrijs2005/voxkeeper/internal/server/models"
	"github.com/dmitrijs2005/voxkeeper/internal/server/persistence"
	"github.com/dmitrijs2005/voxkeeper/internal/server/store"
	"github.com/dmitrijs2005/voxkeeper/internal/server/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDirectory keeps plain secrets and counts lookups.
type fakeDirectory struct {
	users       map[string]*models.User
	secrets     map[string]string
	finds       int
	credentials int
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{
		users:   map[string]*models.User{"alice": {Username: "alice", VoiceSignature: []float64{1, 0}}},
		secrets: map[string]string{"alice": "s3cret"},
	}
}

func (f *fakeDirectory) Find(ctx context.Context, username string, strict bool) (*models.User, error) {
	f.finds++
	u, ok := f.users[username]
	if !ok {
		if strict {
			return nil, common.ErrorNotFound
		}
		return nil, nil
	}
	return u.Clone(), nil
}

func (f *fakeDirectory) VerifyCredential(ctx context.Context, username, candidate string) (bool, error) {
	f.credentials++
	if _, ok := f.users[username]; !ok {
		return false, common.ErrorNotFound
	}
	return f.secrets[username] == candidate, nil
}

type fakeExtractor struct {
	batch biometrics.Batch
	err   error
	calls int
}

func (f *fakeExtractor) Extract(ctx context.Context, audio []byte) (biometrics.Batch, error) {
	f.calls++
	return f.batch, f.err
}

type fakeLiveness struct {
	verdict biometrics.Verdict
	err     error
	calls   int
}

func (f *fakeLiveness) Classify(ctx context.Context, audio []byte) (biometrics.Verdict, error) {
	f.calls++
	return f.verdict, f.err
}

func secret(s string) *string { return &s }

var audio = []byte("RIFF....WAVE")

func TestVerify_InsufficientInputBeforeStore(t *testing.T) {
	dir := newFakeDirectory()
	o := NewOrchestrator(dir, &fakeExtractor{}, &fakeLiveness{}, 0.5, logging.Discard())

	d, err := o.Verify(context.Background(), Request{Username: "alice"})
	assert.ErrorIs(t, err, common.ErrInsufficientInput)
	assert.Nil(t, d)
	assert.Zero(t, dir.finds)
}

func TestVerify_UnknownUserBeforeAnyCheck(t *testing.T) {
	dir := newFakeDirectory()
	ext := &fakeExtractor{batch: biometrics.Batch{{1, 0}}}
	live := &fakeLiveness{verdict: biometrics.Bonafide}
	o := NewOrchestrator(dir, ext, live, 0.5, logging.Discard())

	_, err := o.Verify(context.Background(), Request{Username: "ghost", Secret: secret("x"), Audio: audio})
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.Zero(t, live.calls)
	assert.Zero(t, ext.calls)
	assert.Zero(t, dir.credentials)
}

func TestVerify_PasswordOnly(t *testing.T) {
	o := NewOrchestrator(newFakeDirectory(), &fakeExtractor{}, &fakeLiveness{}, 0.5, logging.Discard())
	ctx := context.Background()

	d, err := o.Verify(ctx, Request{Username: "alice", Secret: secret("s3cret")})
	require.NoError(t, err)
	assert.Equal(t, MethodPassword, d.Method)
	assert.Equal(t, Accepted, d.Outcome)
	assert.Nil(t, d.Score)

	d, err = o.Verify(ctx, Request{Username: "alice", Secret: secret("S3CRET")})
	assert.ErrorIs(t, err, common.ErrInvalidCredential)
	assert.Equal(t, Rejected, d.Outcome)
	assert.False(t, d.Accepted())
}

func TestVerify_PasswordVoice(t *testing.T) {
	tests := []struct {
		name      string
		secret    string
		batch     biometrics.Batch
		verdict   biometrics.Verdict
		wantErr   error
		wantScore *float64
		extracted bool
		credCheck bool
	}{
		{
			name: "accepted", secret: "s3cret", batch: biometrics.Batch{{1, 0}}, verdict: biometrics.Bonafide,
			wantScore: ptr(1.0), extracted: true, credCheck: true,
		},
		{
			name: "wrong secret", secret: "nope", batch: biometrics.Batch{{1, 0}}, verdict: biometrics.Bonafide,
			wantErr: common.ErrInvalidCredential, credCheck: true,
		},
		{
			name: "low similarity", secret: "s3cret", batch: biometrics.Batch{{-1, 0}}, verdict: biometrics.Bonafide,
			wantErr: common.ErrLowSimilarity, wantScore: ptr(-1.0), extracted: true, credCheck: true,
		},
		{
			name: "spoof vetoes a perfect match", secret: "s3cret", batch: biometrics.Batch{{1, 0}}, verdict: biometrics.Spoofed,
			wantErr: common.ErrSpoofDetected,
		},
		{
			name: "spoof checked before credential", secret: "nope", batch: biometrics.Batch{{1, 0}}, verdict: biometrics.Spoofed,
			wantErr: common.ErrSpoofDetected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := newFakeDirectory()
			ext := &fakeExtractor{batch: tt.batch}
			live := &fakeLiveness{verdict: tt.verdict}
			o := NewOrchestrator(dir, ext, live, 0.5, logging.Discard())

			d, err := o.Verify(context.Background(), Request{Username: "alice", Secret: secret(tt.secret), Audio: audio})
			require.NotNil(t, d)
			assert.Equal(t, MethodPasswordVoice, d.Method)
			assert.Equal(t, tt.verdict, d.Liveness)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, Rejected, d.Outcome)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, Accepted, d.Outcome)
			}

			if tt.wantScore != nil {
				require.NotNil(t, d.Score)
				assert.InDelta(t, *tt.wantScore, *d.Score, 1e-9)
			} else {
				assert.Nil(t, d.Score)
			}
			assert.Equal(t, tt.extracted, ext.calls == 1)
			assert.Equal(t, tt.credCheck, dir.credentials == 1)
			assert.Equal(t, 1, live.calls)
		})
	}
}

func TestVerify_ThresholdIsStrict(t *testing.T) {
	// cos([1,1],[1,0]) is 1/sqrt(2); use that as the threshold itself.
	ext := &fakeExtractor{batch: biometrics.Batch{{1, 1}}}
	o := NewOrchestrator(newFakeDirectory(), ext, &fakeLiveness{verdict: biometrics.Bonafide}, 0, logging.Discard())
	score, err := biometrics.Cosine([]float64{1, 1}, []float64{1, 0})
	require.NoError(t, err)
	o.threshold = score

	d, err := o.Verify(context.Background(), Request{Username: "alice", Audio: audio})
	assert.ErrorIs(t, err, common.ErrLowSimilarity)
	assert.Equal(t, Rejected, d.Outcome)
}

func TestVerify_NonFiniteScoreNeverAccepts(t *testing.T) {
	t.Run("overflowing embedding", func(t *testing.T) {
		dir := newFakeDirectory()
		dir.users["alice"].VoiceSignature = []float64{0.5, 0.5, 0.5, 0.5}
		ext := &fakeExtractor{batch: biometrics.Batch{{1e308, 1e308, 1e308, 1e308}}}
		o := NewOrchestrator(dir, ext, &fakeLiveness{verdict: biometrics.Bonafide}, 0.5, logging.Discard())

		d, err := o.Verify(context.Background(), Request{Username: "alice", Secret: secret("s3cret"), Audio: audio})
		assert.ErrorIs(t, err, common.ErrProcessingFailure)
		assert.Equal(t, Rejected, d.Outcome)
		assert.Nil(t, d.Score)
	})
	t.Run("nan threshold", func(t *testing.T) {
		ext := &fakeExtractor{batch: biometrics.Batch{{1, 0}}}
		o := NewOrchestrator(newFakeDirectory(), ext, &fakeLiveness{verdict: biometrics.Bonafide}, math.NaN(), logging.Discard())

		d, err := o.Verify(context.Background(), Request{Username: "alice", Audio: audio})
		assert.ErrorIs(t, err, common.ErrLowSimilarity)
		assert.False(t, d.Accepted())
	})
}

func TestVerify_VoiceOnly(t *testing.T) {
	ext := &fakeExtractor{batch: biometrics.Batch{{0.9, 0.1}, {1, 0}}}
	live := &fakeLiveness{verdict: biometrics.Bonafide}
	dir := newFakeDirectory()
	o := NewOrchestrator(dir, ext, live, 0.5, logging.Discard())

	d, err := o.Verify(context.Background(), Request{Username: "alice", Audio: audio})
	require.NoError(t, err)
	assert.Equal(t, MethodVoice, d.Method)
	assert.Equal(t, biometrics.Bonafide, d.Liveness)
	require.NotNil(t, d.Score)
	assert.Greater(t, *d.Score, 0.9)
	assert.Zero(t, dir.credentials)
}

func TestVerify_VoiceOnlySpoof(t *testing.T) {
	ext := &fakeExtractor{batch: biometrics.Batch{{1, 0}}}
	o := NewOrchestrator(newFakeDirectory(), ext, &fakeLiveness{verdict: biometrics.Spoofed}, 0.5, logging.Discard())

	d, err := o.Verify(context.Background(), Request{Username: "alice", Audio: audio})
	assert.ErrorIs(t, err, common.ErrSpoofDetected)
	assert.Equal(t, biometrics.Spoofed, d.Liveness)
	assert.Zero(t, ext.calls)
}

func TestVerify_CollaboratorFaults(t *testing.T) {
	t.Run("liveness error is never bonafide", func(t *testing.T) {
		ext := &fakeExtractor{batch: biometrics.Batch{{1, 0}}}
		o := NewOrchestrator(newFakeDirectory(), ext, &fakeLiveness{err: errors.New("model crashed")}, 0.5, logging.Discard())

		d, err := o.Verify(context.Background(), Request{Username: "alice", Secret: secret("s3cret"), Audio: audio})
		assert.ErrorIs(t, err, common.ErrProcessingFailure)
		assert.Equal(t, Rejected, d.Outcome)
		assert.Zero(t, ext.calls)
	})
	t.Run("extraction error", func(t *testing.T) {
		ext := &fakeExtractor{err: errors.New("bad wav")}
		o := NewOrchestrator(newFakeDirectory(), ext, &fakeLiveness{verdict: biometrics.Bonafide}, 0.5, logging.Discard())

		_, err := o.Verify(context.Background(), Request{Username: "alice", Secret: secret("s3cret"), Audio: audio})
		assert.ErrorIs(t, err, common.ErrProcessingFailure)
	})
	t.Run("dimension mismatch", func(t *testing.T) {
		ext := &fakeExtractor{batch: biometrics.Batch{{1, 0, 0}}}
		o := NewOrchestrator(newFakeDirectory(), ext, &fakeLiveness{verdict: biometrics.Bonafide}, 0.5, logging.Discard())

		_, err := o.Verify(context.Background(), Request{Username: "alice", Audio: audio})
		assert.ErrorIs(t, err, common.ErrProcessingFailure)
	})
}

func TestVerify_MissingSignature(t *testing.T) {
	dir := newFakeDirectory()
	dir.users["alice"].VoiceSignature = nil
	ext := &fakeExtractor{batch: biometrics.Batch{{1, 0}}}
	o := NewOrchestrator(dir, ext, &fakeLiveness{verdict: biometrics.Bonafide}, 0.5, logging.Discard())

	_, err := o.Verify(context.Background(), Request{Username: "alice", Audio: audio})
	assert.ErrorIs(t, err, common.ErrSignatureMissing)
	assert.Zero(t, ext.calls)
}

func TestCheckLiveness(t *testing.T) {
	o := NewOrchestrator(newFakeDirectory(), &fakeExtractor{}, &fakeLiveness{verdict: biometrics.Spoofed}, 0.5, logging.Discard())

	v, err := o.CheckLiveness(context.Background(), audio)
	require.NoError(t, err)
	assert.Equal(t, biometrics.Spoofed, v)

	_, err = o.CheckLiveness(context.Background(), nil)
	assert.ErrorIs(t, err, common.ErrInsufficientInput)
}

func TestVerify_WithIdentityStore(t *testing.T) {
	ctx := context.Background()
	st, err := store.Open(ctx, persistence.NewFileGateway(filepath.Join(t.TempDir(), "db.json")), logging.Discard())
	require.NoError(t, err)
	params := cryptox.Params{MemoryKiB: 64, Time: 1, Threads: 1, SaltLen: 16, KeyLen: 32}
	dir := users.NewService(st, params, 0, logging.Discard())
	require.NoError(t, dir.Create(ctx, "alice", "s3cret", []float64{1.0, 0.0}))

	ext := &fakeExtractor{batch: biometrics.Batch{{1.0, 0.0}}}
	o := NewOrchestrator(dir, ext, &fakeLiveness{verdict: biometrics.Bonafide}, 0.5, logging.Discard())

	d, err := o.Verify(ctx, Request{Username: "alice", Secret: secret("s3cret"), Audio: audio})
	require.NoError(t, err)
	assert.Equal(t, MethodPasswordVoice, d.Method)
	assert.InDelta(t, 1.0, *d.Score, 1e-9)

	_, err = o.Verify(ctx, Request{Username: "alice", Secret: secret("wrong"), Audio: audio})
	assert.ErrorIs(t, err, common.ErrInvalidCredential)

	ext.batch = biometrics.Batch{{-1.0, 0.0}}
	_, err = o.Verify(ctx, Request{Username: "alice", Secret: secret("s3cret"), Audio: audio})
	assert.ErrorIs(t, err, common.ErrLowSimilarity)
}

func ptr(f float64) *float64 { return &f }
