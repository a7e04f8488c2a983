package discovery

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"feedscout-api/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface.
// fetchCount tracks how many requests actually reached the "network".
type mockHTTPClient struct {
	getFunc    func(ctx context.Context, url string) (interfaces.Response, error)
	fetchCount atomic.Int64
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	m.fetchCount.Add(1)
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, errors.New("no response configured")
}

func (m *mockHTTPClient) GetWithHeaders(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
	return m.Get(ctx, url)
}

func (m *mockHTTPClient) Post(ctx context.Context, url string, body io.Reader) (interfaces.Response, error) {
	return nil, errors.New("not implemented")
}

// mockResponse is a mock implementation of the Response interface.
type mockResponse struct {
	statusCode int
	body       string
	finalURL   string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}

func (m *mockResponse) FinalURL() string {
	return m.finalURL
}

// mockParser is a mock implementation of the FeedParser interface.
type mockParser struct {
	parseFunc func(content []byte) (*interfaces.ParsedFeed, error)
}

func (m *mockParser) Parse(content []byte) (*interfaces.ParsedFeed, error) {
	if m.parseFunc != nil {
		return m.parseFunc(content)
	}
	return nil, errors.New("no parser configured")
}

// mockCache is a mock implementation of the Cache interface.
type mockCache struct {
	mu    sync.Mutex
	store map[string][]byte
}

func newMockCache() *mockCache {
	return &mockCache{store: make(map[string][]byte)}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.store[key]; ok {
		return v, nil
	}
	return nil, errors.New("key not found")
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store[key] = value
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.store, key)
	return nil
}

// mockLogger discards all log output.
type mockLogger struct{}

func (mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (mockLogger) Info(msg string, fields map[string]interface{})  {}
func (mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (mockLogger) Error(msg string, fields map[string]interface{}) {}

// testDeps builds a Dependencies container around a mock client and
// parser, with the noop telemetry every component expects.
func testDeps(client *mockHTTPClient, parser *mockParser) interfaces.Dependencies {
	return interfaces.Dependencies{
		HTTPClient: client,
		FeedParser: parser,
		Logger:     mockLogger{},
		Telemetry:  interfaces.NoopTelemetry{},
	}
}
