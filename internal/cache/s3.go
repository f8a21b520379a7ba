package cache

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// defaultMaxAge bounds how long a cached search page is trusted. Restaurants
// open and close; a day is plenty.
const defaultMaxAge = 24 * time.Hour

// S3Config carries the connection settings for an S3-compatible backend.
type S3Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
	// MaxAge overrides defaultMaxAge when positive.
	MaxAge time.Duration
}

// S3Cache keeps response pages as JSON objects in an S3/MinIO bucket. Cache
// failures are logged and treated as misses; the tool must keep working with
// the backend down.
type S3Cache struct {
	client *minio.Client
	bucket string
	maxAge time.Duration
	log    *zap.SugaredLogger
}

// NewS3Cache connects to the configured endpoint and makes sure the bucket
// exists.
func NewS3Cache(ctx context.Context, cfg S3Config, log *zap.SugaredLogger) (*S3Cache, error) {
	if cfg.Endpoint == "" || cfg.AccessKey == "" || cfg.SecretKey == "" || cfg.Bucket == "" {
		return nil, fmt.Errorf("missing one or more cache settings: endpoint, access key, secret key, bucket")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("error checking bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("error creating bucket %q: %w", cfg.Bucket, err)
		}
	}

	maxAge := cfg.MaxAge
	if maxAge <= 0 {
		maxAge = defaultMaxAge
	}

	log.Debugw("connected to response cache", "endpoint", cfg.Endpoint, "bucket", cfg.Bucket)
	return &S3Cache{client: client, bucket: cfg.Bucket, maxAge: maxAge, log: log}, nil
}

// Get returns a cached page if it exists and is fresh enough.
func (c *S3Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	objectKey := objectKey(key)

	stat, err := c.client.StatObject(ctx, c.bucket, objectKey, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code != "NoSuchKey" {
			c.log.Debugw("cache stat failed", "key", objectKey, "error", err)
		}
		return nil, false
	}
	if time.Since(stat.LastModified) > c.maxAge {
		c.log.Debugw("cache entry expired", "key", objectKey, "age", time.Since(stat.LastModified))
		return nil, false
	}

	obj, err := c.client.GetObject(ctx, c.bucket, objectKey, minio.GetObjectOptions{})
	if err != nil {
		c.log.Debugw("cache get failed", "key", objectKey, "error", err)
		return nil, false
	}
	defer obj.Close()

	body, err := io.ReadAll(obj)
	if err != nil {
		c.log.Debugw("cache read failed", "key", objectKey, "error", err)
		return nil, false
	}
	return body, true
}

// Put stores a page. Errors are logged, not returned.
func (c *S3Cache) Put(ctx context.Context, key string, page []byte) {
	objectKey := objectKey(key)

	_, err := c.client.PutObject(
		ctx,
		c.bucket,
		objectKey,
		bytes.NewReader(page),
		int64(len(page)),
		minio.PutObjectOptions{ContentType: "application/json"},
	)
	if err != nil {
		c.log.Warnw("cache put failed", "key", objectKey, "error", err)
		return
	}
	c.log.Debugw("cached response page", "key", objectKey, "bytes", len(page))
}

// objectKey maps a cache key to a valid object name.
func objectKey(key string) string {
	key = strings.ReplaceAll(key, " ", "-")
	return strings.ToLower(key) + ".json"
}
