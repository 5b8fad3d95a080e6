package persistence

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjects struct {
	objects map[string][]byte
	getErr  error
	putErr  error
	puts    int
}

func newFakeObjects() *fakeObjects {
	return &fakeObjects{objects: map[string][]byte{}}
}

func (f *fakeObjects) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	data, ok := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeObjects) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)] = data
	f.puts++
	return &s3.PutObjectOutput{}, nil
}

func TestS3Gateway_MissingObjectIsEmptyStore(t *testing.T) {
	g := NewS3Gateway(newFakeObjects(), "vault", "voxkeeper/database.json")

	doc, err := g.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, doc.Users)
}

func TestS3Gateway_SaveThenLoad(t *testing.T) {
	api := newFakeObjects()
	g := NewS3Gateway(api, "vault", "voxkeeper/database.json")
	ctx := context.Background()

	want := sampleDocument()
	require.NoError(t, g.Save(ctx, want))
	assert.Equal(t, 1, api.puts)
	assert.Contains(t, api.objects, "vault/voxkeeper/database.json")

	got, err := g.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(want, got))
}

func TestS3Gateway_Errors(t *testing.T) {
	api := newFakeObjects()
	api.getErr = errors.New("access denied")
	api.putErr = errors.New("slow down")
	g := NewS3Gateway(api, "vault", "db.json")

	_, err := g.Load(context.Background())
	require.ErrorContains(t, err, "access denied")

	err = g.Save(context.Background(), sampleDocument())
	require.ErrorContains(t, err, "slow down")
}

func TestNewS3Client(t *testing.T) {
	c, err := NewS3Client(context.Background(), S3Options{
		AccessKey:    "admin",
		SecretKey:    "secretpassword",
		Region:       "us-east-1",
		BaseEndpoint: "http://127.0.0.1:9000/",
	})
	require.NoError(t, err)
	require.NotNil(t, c)

	var _ ObjectAPI = c
}
