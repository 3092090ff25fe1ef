package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/bft-labs/signin/internal/domain"
	"github.com/bft-labs/signin/internal/ports"
)

// mockLogger implements ports.Logger for testing.
type mockLogger struct{}

func (mockLogger) Debug(msg string, fields ...ports.Field) {}
func (mockLogger) Info(msg string, fields ...ports.Field)  {}
func (mockLogger) Warn(msg string, fields ...ports.Field)  {}
func (mockLogger) Error(msg string, fields ...ports.Field) {}

// httpPostClientSpy records every Post call and replies with a fixed response.
type httpPostClientSpy struct {
	mu       sync.Mutex
	calls    []ports.HTTPPostParams[domain.AuthenticationParams]
	response ports.HTTPResponse[domain.AccountModel]
	err      error
}

func newHTTPPostClientSpy() *httpPostClientSpy {
	return &httpPostClientSpy{
		response: ports.HTTPResponse[domain.AccountModel]{StatusCode: ports.StatusOK},
	}
}

func (s *httpPostClientSpy) Post(ctx context.Context, params ports.HTTPPostParams[domain.AuthenticationParams]) (ports.HTTPResponse[domain.AccountModel], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, params)
	return s.response, s.err
}

func (s *httpPostClientSpy) Calls() []ports.HTTPPostParams[domain.AuthenticationParams] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ports.HTTPPostParams[domain.AuthenticationParams]{}, s.calls...)
}

func mockAuthentication() domain.AuthenticationParams {
	return domain.AuthenticationParams{Email: "a@b.com", Password: "123"}
}

func mockAccountModel() domain.AccountModel {
	return domain.AccountModel{AccessToken: "t", Name: "A"}
}

func TestRemoteAuthentication_PostsToURLWithParams(t *testing.T) {
	const url = "https://auth.example.com/api/login"
	spy := newHTTPPostClientSpy()
	sut := NewRemoteAuthentication(url, spy, mockLogger{})
	params := mockAuthentication()

	if _, err := sut.Auth(context.Background(), params); err != nil {
		t.Fatalf("Auth failed: %v", err)
	}

	calls := spy.Calls()
	if len(calls) != 1 {
		t.Fatalf("Post called %d times, want 1", len(calls))
	}
	if calls[0].URL != url {
		t.Errorf("URL = %q, want %q", calls[0].URL, url)
	}
	if calls[0].Body != params {
		t.Errorf("Body = %v, want %v", calls[0].Body, params)
	}
	if sut.URL() != url {
		t.Errorf("URL() = %q, want %q", sut.URL(), url)
	}
}

func TestRemoteAuthentication_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  ports.HTTPStatusCode
		wantErr error
	}{
		{"ok", ports.StatusOK, nil},
		{"unauthorized", ports.StatusUnauthorized, domain.ErrInvalidCredentials},
		{"bad request", ports.StatusBadRequest, domain.ErrUnexpected},
		{"forbidden", ports.StatusForbidden, domain.ErrUnexpected},
		{"not found", ports.StatusNotFound, domain.ErrUnexpected},
		{"server error", ports.StatusServerError, domain.ErrUnexpected},
		{"no content", ports.StatusNoContent, domain.ErrUnexpected},
		{"bad gateway", ports.HTTPStatusCode(502), domain.ErrUnexpected},
		{"zero", ports.HTTPStatusCode(0), domain.ErrUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spy := newHTTPPostClientSpy()
			spy.response = ports.HTTPResponse[domain.AccountModel]{StatusCode: tt.status, Body: mockAccountModel()}
			sut := NewRemoteAuthentication("https://auth.example.com/login", spy, mockLogger{})

			account, err := sut.Auth(context.Background(), mockAuthentication())

			if err != tt.wantErr {
				t.Fatalf("Auth() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil && account != (domain.AccountModel{}) {
				t.Errorf("account = %+v on error, want zero value", account)
			}
		})
	}
}

func TestRemoteAuthentication_ReturnsBodyOn200(t *testing.T) {
	spy := newHTTPPostClientSpy()
	want := mockAccountModel()
	spy.response = ports.HTTPResponse[domain.AccountModel]{StatusCode: ports.StatusOK, Body: want}
	sut := NewRemoteAuthentication("https://auth.example.com/login", spy, mockLogger{})

	account, err := sut.Auth(context.Background(), mockAuthentication())
	if err != nil {
		t.Fatalf("Auth failed: %v", err)
	}
	if account != want {
		t.Errorf("account = %+v, want %+v", account, want)
	}
}

func TestRemoteAuthentication_TransportErrorPropagates(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	spy := newHTTPPostClientSpy()
	spy.err = cause
	sut := NewRemoteAuthentication("https://auth.example.com/login", spy, mockLogger{})

	_, err := sut.Auth(context.Background(), mockAuthentication())

	if !errors.Is(err, cause) {
		t.Fatalf("error = %v, want it to wrap %v", err, cause)
	}
	if errors.Is(err, domain.ErrUnexpected) || errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("transport error was classified: %v", err)
	}
}

func TestRemoteAuthentication_EachCallIsIndependent(t *testing.T) {
	spy := newHTTPPostClientSpy()
	spy.response = ports.HTTPResponse[domain.AccountModel]{StatusCode: ports.StatusOK, Body: mockAccountModel()}
	sut := NewRemoteAuthentication("https://auth.example.com/login", spy, mockLogger{})
	params := mockAuthentication()

	first, err := sut.Auth(context.Background(), params)
	if err != nil {
		t.Fatalf("first Auth failed: %v", err)
	}
	second, err := sut.Auth(context.Background(), params)
	if err != nil {
		t.Fatalf("second Auth failed: %v", err)
	}

	if got := len(spy.Calls()); got != 2 {
		t.Errorf("Post called %d times, want 2", got)
	}
	if first != second {
		t.Errorf("results differ: %+v vs %+v", first, second)
	}
}

func TestRemoteAuthentication_ConcurrentCalls(t *testing.T) {
	spy := newHTTPPostClientSpy()
	sut := NewRemoteAuthentication("https://auth.example.com/login", spy, mockLogger{})

	const n = 32
	g, ctx := errgroup.WithContext(context.Background())
	for i := 0; i < n; i++ {
		params := domain.AuthenticationParams{Email: fmt.Sprintf("user%d@b.com", i), Password: "123"}
		g.Go(func() error {
			_, err := sut.Auth(ctx, params)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent Auth failed: %v", err)
	}

	seen := make(map[string]bool)
	for _, c := range spy.Calls() {
		seen[c.Body.Email] = true
	}
	if len(seen) != n {
		t.Errorf("distinct bodies posted = %d, want %d", len(seen), n)
	}
}
