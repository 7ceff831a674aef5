package storage

import (
	"context"
	"time"
)

// MockClient is a mock implementation of storage.Client.
type MockClient struct {
	ContainerExistsResult bool
	ContainerExistsError  error
	CreateContainerError  error
	DeleteContainerError  error
	ListResult            []FileDescriptor
	ListError             error
	UploadError           error
	Uploaded              []string
}

// ContainerExists returns the values of ContainerExistsResult and ContainerExistsError
func (m *MockClient) ContainerExists(_ context.Context, _ string) (bool, error) {
	return m.ContainerExistsResult, m.ContainerExistsError
}

// CreateContainer returns the value of CreateContainerError
func (m *MockClient) CreateContainer(_ context.Context, _ string) error {
	return m.CreateContainerError
}

// DeleteContainer returns the value of DeleteContainerError
func (m *MockClient) DeleteContainer(_ context.Context, _ string) error {
	return m.DeleteContainerError
}

// List returns the values of ListResult and ListError
func (m *MockClient) List(_ context.Context, _ string) ([]FileDescriptor, error) {
	return m.ListResult, m.ListError
}

// Upload records the blob name and returns the value of UploadError
func (m *MockClient) Upload(_ context.Context, _, blobName, _ string, _ time.Duration) error {
	m.Uploaded = append(m.Uploaded, blobName)
	return m.UploadError
}
