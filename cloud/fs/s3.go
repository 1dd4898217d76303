// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package fs

import (
	"bytes"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

type S3Filesystem struct {
	svc    *s3.S3
	bucket string
}

// NewS3Filesystem uploads to bucket, or to "terragen-<stage>-maps" if bucket
// is empty.
func NewS3Filesystem(session *session.Session, stage, bucket string) (*S3Filesystem, error) {
	s3Filesystem := &S3Filesystem{svc: s3.New(session), bucket: bucket}

	if s3Filesystem.bucket == "" {
		s3Filesystem.bucket = "terragen-" + stage + "-maps"
	}

	return s3Filesystem, nil
}

func (s3Filesystem *S3Filesystem) String() string {
	return "s3://" + s3Filesystem.bucket
}

// Patch S3's limited vocabulary of default content types
var contentTypes = map[string]string{
	".json": "application/json",
	".png":  "image/png",
}

func contentType(filename string) *string {
	for ext, mime := range contentTypes {
		if strings.HasSuffix(filename, ext) {
			return aws.String(mime)
		}
	}
	return nil
}

func (s3Filesystem *S3Filesystem) Upload(filename string, data []byte) error {
	req, _ := s3Filesystem.svc.PutObjectRequest(&s3.PutObjectInput{
		Bucket:       aws.String(s3Filesystem.bucket),
		Key:          aws.String(filename),
		Body:         bytes.NewReader(data),
		CacheControl: aws.String("no-transform, public, max-age=31536000, immutable"),
		ContentType:  contentType(filename),
	})
	return req.Send()
}
