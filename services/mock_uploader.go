// services/mock_uploader.go
package services

import (
	"github.com/stretchr/testify/mock"
)

// MockUploader is a testify mock for the Uploader interface, used by
// tests that must not touch S3.
type MockUploader struct {
	mock.Mock
}

// Upload records the call and returns the programmed key.
func (m *MockUploader) Upload(prefix string, input UploadInput) (string, error) {
	args := m.Called(prefix, input)
	return args.String(0), args.Error(1)
}
