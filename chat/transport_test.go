package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JK-asthetic/SmartStoreFront/models"
)

func TestRESTTransportSendsRequestAndDecodesReply(t *testing.T) {
	var got models.ChatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/chat", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		json.NewEncoder(w).Encode(models.AgentReply{
			Message:        "Updating your view now.",
			AgentType:      models.AgentTypeProductRecommendation,
			ShouldNavigate: true,
			FilterCommand: &models.FilterCommand{
				Action:     models.FilterActionApply,
				Categories: []string{"electronics"},
			},
		})
	}))
	defer server.Close()

	transport := NewRESTTransport(server.URL)
	reply, err := transport.Send(context.Background(), "42", "show me electronics")

	require.NoError(t, err)
	assert.Equal(t, "42", got.UserID)
	assert.Equal(t, "show me electronics", got.Message)
	assert.Equal(t, "Updating your view now.", reply.Message)
	assert.True(t, reply.ShouldNavigate)
	require.NotNil(t, reply.FilterCommand)
	assert.Equal(t, []string{"electronics"}, reply.FilterCommand.Categories)
}

func TestRESTTransportRejectsNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	transport := NewRESTTransport(server.URL)
	_, err := transport.Send(context.Background(), "42", "hello")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestRESTTransportRejectsMalformedReply(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	transport := NewRESTTransport(server.URL)
	_, err := transport.Send(context.Background(), "42", "hello")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode reply")
}

func TestNewTransportFromEnvSelectsREST(t *testing.T) {
	t.Setenv("CHAT_TRANSPORT", "rest")
	t.Setenv("CHAT_AGENT_URL", "http://agents.internal:9000")

	transport, err := NewTransportFromEnv(context.Background(), nil, nil)

	require.NoError(t, err)
	rest, ok := transport.(*RESTTransport)
	require.True(t, ok)
	assert.Equal(t, "http://agents.internal:9000", rest.BaseURL)
}

func TestNewTransportFromEnvRESTRequiresURL(t *testing.T) {
	t.Setenv("CHAT_TRANSPORT", "rest")
	t.Setenv("CHAT_AGENT_URL", "")

	_, err := NewTransportFromEnv(context.Background(), nil, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "CHAT_AGENT_URL")
}

func TestNewTransportFromEnvDefaultsToLocal(t *testing.T) {
	t.Setenv("CHAT_TRANSPORT", "")
	t.Setenv("GEMINI_API_KEY", "")

	transport, err := NewTransportFromEnv(context.Background(), nil, nil)

	require.NoError(t, err)
	local, ok := transport.(*LocalTransport)
	require.True(t, ok)
	require.NotNil(t, local.Service)

	// The in-process service answers even with no store and no LLM.
	reply, err := local.Send(context.Background(), "anon", "I need help with a return")
	require.NoError(t, err)
	assert.NotEmpty(t, reply.Message)
}
