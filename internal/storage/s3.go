// Package storage forwards uploaded media to an S3 compatible object store.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/food-reels/domain"
)

// PutObjectAPI is the part of the s3 client the store needs.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Options struct {
	Region   string
	Bucket   string
	Prefix   string
	BaseURL  string // optional, derived from Endpoint or Bucket and Region when empty
	Endpoint string // optional, for MinIO or LocalStack
}

// S3Store implements domain.ContentStore.
type S3Store struct {
	client  PutObjectAPI
	bucket  string
	prefix  string
	baseURL string
	now     func() time.Time
}

// NewS3Store loads the default AWS credential chain and builds a store.
func NewS3Store(ctx context.Context, opts S3Options) (*S3Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(opts.Region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})
	return NewS3StoreWithClient(client, opts), nil
}

func NewS3StoreWithClient(client PutObjectAPI, opts S3Options) *S3Store {
	return &S3Store{
		client:  client,
		bucket:  opts.Bucket,
		prefix:  strings.Trim(opts.Prefix, "/"),
		baseURL: publicBaseURL(opts),
		now:     time.Now,
	}
}

// Store uploads data under <prefix>/<yyyy>/<mm>/<name> and returns its public url.
func (s *S3Store) Store(ctx context.Context, data []byte, name string) (string, error) {
	if len(data) == 0 || name == "" {
		return "", fmt.Errorf("store object: %w", domain.ErrBadParamInput)
	}

	contentType := http.DetectContentType(data)
	if path.Ext(name) == "" {
		name += extensionFor(contentType)
	}

	now := s.now().UTC()
	key := fmt.Sprintf("%d/%02d/%s", now.Year(), now.Month(), name)
	if s.prefix != "" {
		key = s.prefix + "/" + key
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(data),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("max-age=86400"),
		Metadata: map[string]string{
			"upload-timestamp": now.Format(time.RFC3339),
		},
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{"bucket": s.bucket, "key": key}).Errorf("put object: %v", err)
		return "", fmt.Errorf("put object %s: %w: %v", key, domain.ErrStorage, err)
	}

	return s.baseURL + "/" + key, nil
}

// publicBaseURL is where stored keys are served from. Without an explicit
// base the object is addressed on the store itself: path style on a custom
// endpoint, virtual hosted style on AWS.
func publicBaseURL(opts S3Options) string {
	switch {
	case opts.BaseURL != "":
		return strings.TrimSuffix(opts.BaseURL, "/")
	case opts.Endpoint != "":
		return strings.TrimSuffix(opts.Endpoint, "/") + "/" + opts.Bucket
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", opts.Bucket, opts.Region)
	}
}

func extensionFor(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	if exts, err := mime.ExtensionsByType(mediaType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ""
}
