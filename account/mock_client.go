package account

import "context"

// MockClient is a mock implementation of account.Client.
type MockClient struct {
	ExistsResult bool
	ExistsError  error
	CreateError  error
	KeyResult    string
	KeyError     error
	DeleteError  error
}

// Exists returns the values of ExistsResult and ExistsError
func (m *MockClient) Exists(_ context.Context, _ string) (bool, error) {
	return m.ExistsResult, m.ExistsError
}

// Create returns the value of CreateError
func (m *MockClient) Create(_ context.Context, _, _, _ string) error {
	return m.CreateError
}

// Key returns the values of KeyResult and KeyError
func (m *MockClient) Key(_ context.Context, _, _ string) (string, error) {
	return m.KeyResult, m.KeyError
}

// Delete returns the value of DeleteError
func (m *MockClient) Delete(_ context.Context, _, _ string) error {
	return m.DeleteError
}
