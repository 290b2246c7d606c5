// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/fitskit/fitsdiff/internal/log"
)

const s3Scheme = "s3://"

// Fetch returns the bytes of a container document at the given location.
func Fetch(ctx context.Context, location string) ([]byte, error) {
	switch {
	case location == "-":
		log.Debugf("reading document from stdin")
		return io.ReadAll(os.Stdin)
	case strings.HasPrefix(location, s3Scheme):
		return fetchS3(ctx, location)
	default:
		log.Debugf("reading document from file: path=%s", location)
		return os.ReadFile(location)
	}
}

// fetchS3 downloads one object. The location must name both a bucket and a
// key: s3://bucket/path/to/doc.json.
func fetchS3(ctx context.Context, location string) ([]byte, error) {
	bucket, key, err := splitS3(location)
	if err != nil {
		return nil, err
	}
	log.Debugf("fetching object: bucket=%s, key=%s", bucket, key)

	// Inherit the shell's AWS setup (AWS_PROFILE, shared config, env, IMDS).
	cfg, err := awscfg.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3v2.NewFromConfig(cfg)
	out, err := client.GetObject(ctx, &s3v2.GetObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get s3://%s/%s: %w", bucket, key, err)
	}
	defer func() { _ = out.Body.Close() }()

	return io.ReadAll(out.Body)
}

// splitS3 splits an s3:// URL into bucket and key.
func splitS3(location string) (bucket, key string, err error) {
	rest := strings.TrimPrefix(location, s3Scheme)
	bucket, key, found := strings.Cut(rest, "/")
	if !found || bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid S3 location %q, want s3://bucket/key", location)
	}
	return bucket, key, nil
}
