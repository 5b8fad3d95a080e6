package persistence

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/dmitrijs2005/voxkeeper/internal/server/models"
)

// ObjectAPI is the part of *s3.Client the gateway uses.
type ObjectAPI interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Options configures NewS3Client.
type S3Options struct {
	AccessKey    string
	SecretKey    string
	Region       string
	BaseEndpoint string
}

// NewS3Client builds a client for an S3-compatible endpoint (MinIO in dev)
// with static credentials and path-style addressing.
func NewS3Client(ctx context.Context, o S3Options) (*s3.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(o.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(o.AccessKey, o.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return s3.NewFromConfig(cfg, func(opts *s3.Options) {
		if o.BaseEndpoint != "" {
			opts.BaseEndpoint = aws.String(o.BaseEndpoint)
		}
		opts.UsePathStyle = true
	}), nil
}

// S3Gateway keeps the document as a single object. PutObject replaces the
// object atomically, so readers never see a partial document.
type S3Gateway struct {
	api    ObjectAPI
	bucket string
	key    string
}

func NewS3Gateway(api ObjectAPI, bucket, key string) *S3Gateway {
	return &S3Gateway{api: api, bucket: bucket, key: key}
}

func (g *S3Gateway) Load(ctx context.Context) (*models.Document, error) {
	out, err := g.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(g.key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return models.NewDocument(), nil
		}
		return nil, fmt.Errorf("get s3://%s/%s: %w", g.bucket, g.key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read s3://%s/%s: %w", g.bucket, g.key, err)
	}
	return Decode(data)
}

func (g *S3Gateway) Save(ctx context.Context, doc *models.Document) error {
	data, err := Encode(doc)
	if err != nil {
		return err
	}

	_, err = g.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(g.bucket),
		Key:           aws.String(g.key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("put s3://%s/%s: %w", g.bucket, g.key, err)
	}
	return nil
}
