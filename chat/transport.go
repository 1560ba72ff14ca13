package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"gorm.io/gorm"

	"github.com/JK-asthetic/SmartStoreFront/agents"
	"github.com/JK-asthetic/SmartStoreFront/models"
)

// Transport sends one chat turn to the agent service. Two implementations
// exist: RESTTransport talks to a remote agent backend over HTTP, and
// LocalTransport runs the in-process agents directly. They are alternatives
// selected by configuration, never both active.
type Transport interface {
	Send(ctx context.Context, userID, message string) (*models.AgentReply, error)
}

// ── REST variant ─────────────────────────────────────────────────────────────

// RESTTransport posts {userId, message} to a remote agent service and decodes
// the structured reply.
type RESTTransport struct {
	BaseURL string
	Client  *http.Client
}

func NewRESTTransport(baseURL string) *RESTTransport {
	return &RESTTransport{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (t *RESTTransport) Send(ctx context.Context, userID, message string) (*models.AgentReply, error) {
	body, err := json.Marshal(models.ChatRequest{UserID: userID, Message: message})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.BaseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("agent service: unexpected status %d", resp.StatusCode)
	}

	var reply models.AgentReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, fmt.Errorf("agent service: decode reply: %w", err)
	}
	return &reply, nil
}

// ── Local variant ────────────────────────────────────────────────────────────

// LocalTransport runs the agent service in-process, without a network hop.
type LocalTransport struct {
	Service *agents.Service
}

func (t *LocalTransport) Send(ctx context.Context, userID, message string) (*models.AgentReply, error) {
	return t.Service.Process(ctx, userID, message)
}

// NewTransportFromEnv selects the variant by CHAT_TRANSPORT: "rest" builds a
// RESTTransport against CHAT_AGENT_URL, anything else runs the in-process
// agents against the given store handle.
func NewTransportFromEnv(ctx context.Context, db *gorm.DB, categories agents.CategorySource) (Transport, error) {
	if os.Getenv("CHAT_TRANSPORT") == "rest" {
		baseURL := os.Getenv("CHAT_AGENT_URL")
		if baseURL == "" {
			return nil, fmt.Errorf("chat: CHAT_TRANSPORT=rest requires CHAT_AGENT_URL")
		}
		return NewRESTTransport(baseURL), nil
	}

	llm, err := agents.NewGeminiLLM(ctx)
	if err != nil {
		return nil, err
	}
	var svcLLM agents.LLM
	if llm != nil {
		svcLLM = llm
	}
	return &LocalTransport{Service: agents.NewService(db, svcLLM, categories)}, nil
}
