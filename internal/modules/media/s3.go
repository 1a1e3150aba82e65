package media

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	appcfg "github.com/maison-lumiere/atelier/internal/config"
)

// Store wraps the S3 client for media objects. Works against AWS and any
// S3-compatible storage (MinIO, R2) via the endpoint override.
type Store struct {
	client *s3.Client
	cfg    appcfg.S3Config
}

func NewStore(cfg appcfg.S3Config) *Store {
	region := cfg.Region
	if region == "" {
		region = "auto"
	}

	awsCfg := aws.Config{
		Region: region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID, cfg.SecretAccessKey, ""),
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(strings.TrimRight(cfg.Endpoint, "/"))
		}
		o.UsePathStyle = cfg.PathStyleAccess
	})

	return &Store{client: client, cfg: cfg}
}

// Upload stores an object and returns its public URL.
func (s *Store) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("s3 put %s: %w", key, err)
	}
	return s.PublicURL(key), nil
}

// Delete removes an object.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3 delete %s: %w", key, err)
	}
	return nil
}

// PublicURL builds the externally reachable URL for an object key.
func (s *Store) PublicURL(key string) string {
	if s.cfg.CustomDomain != "" {
		return fmt.Sprintf("%s/%s", strings.TrimRight(s.cfg.CustomDomain, "/"), key)
	}
	if s.cfg.Endpoint != "" {
		endpoint := strings.TrimRight(s.cfg.Endpoint, "/")
		if s.cfg.PathStyleAccess {
			return fmt.Sprintf("%s/%s/%s", endpoint, s.cfg.Bucket, key)
		}
		return fmt.Sprintf("%s/%s", strings.Replace(endpoint, "://", "://"+s.cfg.Bucket+".", 1), key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, key)
}
