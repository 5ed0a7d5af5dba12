package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/shasthoseba/chamber-booking/internal/config"
)

// DocumentStore is the file-storage collaborator. The API only keeps
// document metadata; bytes live behind this interface.
type DocumentStore interface {
	Put(
		ctx context.Context,
		key string,
		contentType string,
		body []byte,
	) (string, error)
}

type S3DocumentStore struct {
	client   *s3.Client
	bucket   string
	region   string
	endpoint string
}

func NewS3DocumentStore(cfg *config.Config) *S3DocumentStore {
	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}

	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	return &S3DocumentStore{
		client:   s3.New(opts),
		bucket:   cfg.S3Bucket,
		region:   cfg.S3Region,
		endpoint: cfg.S3Endpoint,
	}
}

func (s *S3DocumentStore) Put(
	ctx context.Context,
	key string,
	contentType string,
	body []byte,
) (string, error) {

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, key), nil
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}

var _ DocumentStore = (*S3DocumentStore)(nil)
