package securefin

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
)

// MockTransport is a testify mock of the Transport interface. Get, GetList
// and Post take the JSON payload to decode into result as their first
// return value.
type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) Get(ctx context.Context, path string, result interface{}) error {
	args := m.Called(ctx, path, result)
	return decodeMockPayload(args.Get(0), result, args.Error(1))
}

func (m *MockTransport) GetList(ctx context.Context, path string, result interface{}) error {
	args := m.Called(ctx, path, result)
	return decodeMockPayload(args.Get(0), result, args.Error(1))
}

func (m *MockTransport) Post(ctx context.Context, path string, body, result interface{}) error {
	args := m.Called(ctx, path, body, result)
	return decodeMockPayload(args.Get(0), result, args.Error(1))
}

func (m *MockTransport) Delete(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

func decodeMockPayload(payload interface{}, result interface{}, err error) error {
	if err != nil {
		return err
	}
	if text, ok := payload.(string); ok && text != "" && result != nil {
		return json.Unmarshal([]byte(text), result)
	}
	return nil
}

// newTestClient builds a client over a mock transport with a throwaway
// credentials file.
func newTestClient(t *testing.T, mockTransport *MockTransport) *Client {
	t.Helper()

	client := &Client{
		transport: mockTransport,
		session:   newSessionStore(filepath.Join(t.TempDir(), "credentials.json"), nil),
		options:   &ClientOptions{},
	}
	client.initServices()
	return client
}
