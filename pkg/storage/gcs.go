// Package storage wraps the GCS client used for image uploads. The
// rest of the system treats the object keys it hands out as opaque
// strings.
package storage

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

type Client struct {
	storageClient *gcs.Client
	BucketName    string
}

// NewClient creates a GCS client for the given bucket. An empty key
// path falls back to application default credentials.
func NewClient(ctx context.Context, bucketName, saKeyPath string) (*Client, error) {
	var opts []option.ClientOption
	if saKeyPath != "" {
		if _, err := os.Stat(saKeyPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("service account key not found at path: %s", saKeyPath)
		}
		opts = append(opts, option.WithCredentialsFile(saKeyPath))
	}

	storageClient, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS storage client: %w", err)
	}

	return &Client{
		storageClient: storageClient,
		BucketName:    bucketName,
	}, nil
}

// SignUploadURL returns a V4 signed URL allowing one PUT of the given
// object with the given content type.
func (c *Client) SignUploadURL(objectKey, contentType string, ttl time.Duration) (string, error) {
	url, err := c.storageClient.Bucket(c.BucketName).SignedURL(objectKey, &gcs.SignedURLOptions{
		Scheme:      gcs.SigningSchemeV4,
		Method:      http.MethodPut,
		Expires:     time.Now().Add(ttl),
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to sign upload URL for %s: %w", objectKey, err)
	}
	return url, nil
}

// Close releases the underlying client.
func (c *Client) Close() error {
	return c.storageClient.Close()
}
