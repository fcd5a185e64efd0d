// Package services file: services/upload_service.go
package services

import (
	"fmt"
	"io"
	"path"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"

	"hackathon-hub/logger"
)

// UploadInput is one opaque blob handed to the store.
type UploadInput struct {
	Filename    string
	ContentType string
	Reader      io.Reader
}

// Uploader stores opaque blobs under a prefix and returns the stored
// key. The two hackathon file fields (rules document, cover photo) go
// through this.
type Uploader interface {
	Upload(prefix string, input UploadInput) (string, error)
}

// S3Uploader stores blobs in a single S3 bucket.
type S3Uploader struct {
	bucket   string
	uploader *s3manager.Uploader
}

// NewS3Uploader creates an uploader against the given bucket, using
// the ambient AWS credentials and region.
func NewS3Uploader(bucket, region string) *S3Uploader {
	sess := session.Must(session.NewSession(&aws.Config{Region: aws.String(region)}))
	return &S3Uploader{
		bucket:   bucket,
		uploader: s3manager.NewUploader(sess),
	}
}

// Upload writes the blob to S3 under a timestamped key and returns
// that key.
func (u *S3Uploader) Upload(prefix string, input UploadInput) (string, error) {
	key := path.Join(prefix, fmt.Sprintf("%d_%s", time.Now().UnixNano(), path.Base(input.Filename)))

	_, err := u.uploader.Upload(&s3manager.UploadInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        input.Reader,
		ContentType: aws.String(input.ContentType),
	})
	if err != nil {
		logger.Error.Printf("Upload: S3 put failed for %s: %v", key, err)
		return "", fmt.Errorf("uploading %s: %w", input.Filename, err)
	}

	logger.Info.Printf("Upload: stored %s in bucket %s", key, u.bucket)
	return key, nil
}
