// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package storage provides an S3-compatible object store for icon
// thumbnails. A single public bucket is used: thumbnails carry no
// sensitive data and are served straight from the bucket URL.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"uikitlab/internal/config"
)

// Client wraps an S3-compatible client configured for the thumbnail bucket.
type Client struct {
	s3        *s3.Client
	bucket    string
	publicURL string
}

// New creates a storage client from config. Returns (nil, nil) when
// storage is not configured; callers treat a nil client as "uploads
// disabled".
func New(cfg *config.Config) (*Client, error) {
	if !cfg.UseStorage() {
		return nil, nil
	}

	creds := credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, "")

	client := s3.New(s3.Options{
		Region:       cfg.S3Region,
		Credentials:  creds,
		BaseEndpoint: aws.String(cfg.S3Endpoint),
		UsePathStyle: cfg.S3UsePathStyle,
	})

	return &Client{
		s3:        client,
		bucket:    cfg.S3Bucket,
		publicURL: strings.TrimSuffix(cfg.S3PublicURL, "/"),
	}, nil
}

// Upload stores an object under key with the given content type.
func (c *Client) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(c.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(data),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("public, max-age=31536000, immutable"),
	})
	if err != nil {
		return fmt.Errorf("storage: upload %s: %w", key, err)
	}
	return nil
}

// Delete removes an object. Deleting a missing key is not an error.
func (c *Client) Delete(ctx context.Context, key string) error {
	_, err := c.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("storage: delete %s: %w", key, err)
	}
	return nil
}

// FileURL returns the public URL for a stored object key.
func (c *Client) FileURL(key string) string {
	return c.publicURL + "/" + key
}

// ExtractKey recovers the object key from a public URL previously
// produced by FileURL. Returns "" for URLs outside this bucket.
func (c *Client) ExtractKey(rawURL string) string {
	prefix := c.publicURL + "/"
	if !strings.HasPrefix(rawURL, prefix) {
		return ""
	}
	return strings.TrimPrefix(rawURL, prefix)
}
