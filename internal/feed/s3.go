// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package feed

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"

	awsx "github.com/relctl/relctl/internal/aws"
	"github.com/relctl/relctl/internal/log"
)

// s3Feed pulls archives from an S3 mirror of the built-in feed. Useful when
// the worker running the comparison has no permission to pull raw packages
// from the API but a pipeline elsewhere mirrors them to a bucket.
type s3Feed struct {
	client *s3v2.Client
	bucket string
	prefix string
}

// newS3Feed parses an "s3://bucket/prefix" spec and builds the client from
// the ambient AWS configuration chain. RELCTL_AWS_PROFILE and
// RELCTL_AWS_REGION override the chain when the mirror bucket lives under a
// different account or region than the worker's default.
func newS3Feed(ctx context.Context, spec string) (*s3Feed, error) {
	rest := strings.TrimPrefix(spec, "s3://")
	bucket, prefix, _ := strings.Cut(rest, "/")
	if bucket == "" {
		return nil, fmt.Errorf("mirror %s has no bucket", spec)
	}

	var opts []awsx.Option
	if profile := os.Getenv("RELCTL_AWS_PROFILE"); profile != "" {
		opts = append(opts, awsx.WithProfile(profile))
	}
	if region := os.Getenv("RELCTL_AWS_REGION"); region != "" {
		opts = append(opts, awsx.WithRegion(region))
	}

	cfg, err := awsx.LoadAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &s3Feed{
		client: awsx.NewS3(cfg),
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}, nil
}

func (f *s3Feed) Fetch(ctx context.Context, id, version string) ([]byte, error) {
	key := path.Join(f.prefix, archiveName(id, version))
	log.Debugf("fetching s3://%s/%s", f.bucket, key)

	out, err := f.client.GetObject(ctx, &s3v2.GetObjectInput{
		Bucket: awsv2.String(f.bucket),
		Key:    awsv2.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get s3://%s/%s: %w", f.bucket, key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read s3://%s/%s: %w", f.bucket, key, err)
	}
	return data, nil
}
