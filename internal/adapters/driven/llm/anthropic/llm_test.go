package anthropic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/driverfinder/internal/core/domain"
	"github.com/custodia-labs/driverfinder/internal/core/ports/driven"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *LLMService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	svc, err := NewLLMService(Config{APIKey: "sk-ant", BaseURL: server.URL})
	require.NoError(t, err)
	return svc
}

func TestNewLLMService_RequiresAPIKey(t *testing.T) {
	_, err := NewLLMService(Config{})
	assert.Error(t, err)
}

func TestNewLLMService_Defaults(t *testing.T) {
	svc, err := NewLLMService(Config{APIKey: "sk-ant"})

	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, svc.baseURL)
	assert.Equal(t, DefaultModel, svc.ModelName())
}

func TestLLMService_Generate(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "sk-ant", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))

		var req messagesRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, defaultMaxTokens, req.MaxTokens)

		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"https://www.intel.com/"},{"type":"text","text":"download"}]}`))
	})

	reply, err := svc.Generate(context.Background(), "find driver", driven.GenerateOptions{})

	require.NoError(t, err)
	assert.Equal(t, "https://www.intel.com/download", reply)
}

func TestLLMService_Generate_Unauthorized(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"authentication_error","message":"invalid x-api-key"}}`))
	})

	_, err := svc.Generate(context.Background(), "x", driven.GenerateOptions{})

	assert.ErrorIs(t, err, domain.ErrAuthInvalid)
}

func TestLLMService_Generate_ErrorBody(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"invalid_request_error","message":"bad model"}}`))
	})

	_, err := svc.Generate(context.Background(), "x", driven.GenerateOptions{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad model")
}

func TestLLMService_Generate_EmptyContent(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"content":[],"stop_reason":"refusal"}`))
	})

	_, err := svc.Generate(context.Background(), "x", driven.GenerateOptions{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "refusal")
}

func TestLLMService_Ping(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/models/"+DefaultModel, r.URL.Path)
		assert.Equal(t, "sk-ant", r.Header.Get("x-api-key"))
		_, _ = w.Write([]byte(`{"id":"claude-3-5-sonnet-20241022","type":"model"}`))
	})

	assert.NoError(t, svc.Ping(context.Background()))
}

func TestLLMService_Ping_UnknownModel(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"not_found_error","message":"model: claude-9"}}`))
	})

	err := svc.Ping(context.Background())

	assert.ErrorIs(t, err, domain.ErrLLMUnavailable)
	assert.NotErrorIs(t, err, domain.ErrAuthInvalid)
}

func TestLLMService_PermissionErrorType(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"permission_error","message":"key disabled"}}`))
	})

	_, err := svc.Generate(context.Background(), "x", driven.GenerateOptions{})

	assert.ErrorIs(t, err, domain.ErrAuthInvalid)
}

func TestLLMService_Ping_Unauthorized(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	assert.ErrorIs(t, svc.Ping(context.Background()), domain.ErrAuthInvalid)
}
