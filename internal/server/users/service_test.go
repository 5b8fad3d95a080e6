package users

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/dmitrijs2005/voxkeeper/internal/common"
	"github.com/dmitrijs2005/voxkeeper/internal/cryptox"
	"github.com/dmitrijs2005/voxkeeper/internal/logging"
	"github.com/dmitrijs2005/voxkeeper/internal/server/persistence"
	"github.com/dmitrijs2005/voxkeeper/internal/server/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testParams = cryptox.Params{MemoryKiB: 64, Time: 1, Threads: 1, SaltLen: 16, KeyLen: 32}

func newService(t *testing.T, dim int) (*Service, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "database.json")
	st, err := store.Open(context.Background(), persistence.NewFileGateway(path), logging.Discard())
	require.NoError(t, err)
	return NewService(st, testParams, dim, logging.Discard()), path
}

func TestCreate_TwiceFailsWithDuplicate(t *testing.T) {
	s, _ := newService(t, 0)
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, "alice", "s3cret", []float64{1, 0}))
	err := s.Create(ctx, "alice", "other", []float64{0, 1})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestCreate_Validation(t *testing.T) {
	s, _ := newService(t, 0)
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		secret   string
		sig      []float64
	}{
		{"empty username", "  ", "x", []float64{1}},
		{"empty secret", "bob", "", []float64{1}},
		{"empty signature", "bob", "x", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Create(ctx, tt.username, tt.secret, tt.sig)
			assert.ErrorIs(t, err, common.ErrorValidation)
		})
	}
	assert.Empty(t, s.ListUsernames(ctx))
}

func TestCreate_DimensionIsFixedPerDeployment(t *testing.T) {
	t.Run("inferred", func(t *testing.T) {
		s, _ := newService(t, 0)
		ctx := context.Background()
		require.NoError(t, s.Create(ctx, "alice", "a", []float64{1, 0}))
		err := s.Create(ctx, "bob", "b", []float64{1, 0, 0})
		assert.ErrorIs(t, err, common.ErrDimensionMismatch)
		assert.ErrorIs(t, err, common.ErrorValidation)
	})
	t.Run("configured", func(t *testing.T) {
		s, _ := newService(t, 3)
		err := s.Create(context.Background(), "alice", "a", []float64{1, 0})
		assert.ErrorIs(t, err, common.ErrDimensionMismatch)
	})
}

func TestFind_RoundTripThroughPersistence(t *testing.T) {
	s, path := newService(t, 0)
	ctx := context.Background()
	require.NoError(t, s.Create(ctx, "alice", "s3cret", []float64{0.6, 0.8}))

	st, err := store.Open(ctx, persistence.NewFileGateway(path), logging.Discard())
	require.NoError(t, err)
	reloaded := NewService(st, testParams, 0, logging.Discard())

	u, err := reloaded.Find(ctx, "alice", true)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.6, 0.8}, u.VoiceSignature)
	assert.NotContains(t, u.CredentialSecret, "s3cret")

	ok, err := reloaded.VerifyCredential(ctx, "alice", "s3cret")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFind_Missing(t *testing.T) {
	s, _ := newService(t, 0)
	ctx := context.Background()

	u, err := s.Find(ctx, "ghost", false)
	assert.NoError(t, err)
	assert.Nil(t, u)

	_, err = s.Find(ctx, "ghost", true)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestFind_ReturnsCopy(t *testing.T) {
	s, _ := newService(t, 0)
	ctx := context.Background()
	require.NoError(t, s.Create(ctx, "alice", "s3cret", []float64{1, 0}))

	u, err := s.Find(ctx, "alice", true)
	require.NoError(t, err)
	u.VoiceSignature[0] = 42

	again, err := s.Find(ctx, "alice", true)
	require.NoError(t, err)
	assert.Equal(t, 1.0, again.VoiceSignature[0])
}

func TestVerifyCredential(t *testing.T) {
	s, _ := newService(t, 0)
	ctx := context.Background()
	require.NoError(t, s.Create(ctx, "alice", "s3cret", []float64{1, 0}))

	tests := []struct {
		candidate string
		want      bool
	}{
		{"s3cret", true},
		{"S3cret", false},
		{"s3cret ", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.candidate), func(t *testing.T) {
			ok, err := s.VerifyCredential(ctx, "alice", tt.candidate)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}

	_, err := s.VerifyCredential(ctx, "ghost", "s3cret")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestUpdateSignature(t *testing.T) {
	s, _ := newService(t, 0)
	ctx := context.Background()
	require.NoError(t, s.Create(ctx, "alice", "s3cret", []float64{1, 0}))

	require.NoError(t, s.UpdateSignature(ctx, "alice", []float64{0, 1}))
	u, err := s.Find(ctx, "alice", true)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, u.VoiceSignature)

	assert.ErrorIs(t, s.UpdateSignature(ctx, "ghost", []float64{0, 1}), common.ErrorNotFound)
	assert.ErrorIs(t, s.UpdateSignature(ctx, "alice", nil), common.ErrorValidation)
}

func TestUpdateSignature_SoleRecordMayChangeDimension(t *testing.T) {
	s, _ := newService(t, 0)
	ctx := context.Background()
	require.NoError(t, s.Create(ctx, "alice", "s3cret", []float64{1, 0}))
	assert.NoError(t, s.UpdateSignature(ctx, "alice", []float64{1, 0, 0}))
}

func TestListUsernames_SortedSnapshot(t *testing.T) {
	s, _ := newService(t, 0)
	ctx := context.Background()
	for _, name := range []string{"carol", "alice", "bob"} {
		require.NoError(t, s.Create(ctx, name, "x", []float64{1, 0}))
	}

	names := s.ListUsernames(ctx)
	assert.Equal(t, []string{"alice", "bob", "carol"}, names)

	require.NoError(t, s.Create(ctx, "dave", "x", []float64{1, 0}))
	assert.Len(t, names, 3)
}

func TestCreate_ConcurrentSameUsername(t *testing.T) {
	s, _ := newService(t, 0)
	ctx := context.Background()

	const n = 8
	var wg sync.WaitGroup
	var mu sync.Mutex
	var ok, dup int
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.Create(ctx, "alice", "s3cret", []float64{1, 0})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, common.ErrorAlreadyExists):
				dup++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, ok)
	assert.Equal(t, n-1, dup)
}
