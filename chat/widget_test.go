package chat

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JK-asthetic/SmartStoreFront/bridge"
	"github.com/JK-asthetic/SmartStoreFront/models"
)

type fakeTransport struct {
	mu      sync.Mutex
	reply   *models.AgentReply
	err     error
	block   chan struct{}
	userIDs []string
}

func (f *fakeTransport) Send(_ context.Context, userID, _ string) (*models.AgentReply, error) {
	f.mu.Lock()
	f.userIDs = append(f.userIDs, userID)
	block := f.block
	f.mu.Unlock()

	if block != nil {
		<-block
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.reply, nil
}

type fakeNavigator struct {
	mu    sync.Mutex
	paths []string
}

func (f *fakeNavigator) Navigate(path string) {
	f.mu.Lock()
	f.paths = append(f.paths, path)
	f.mu.Unlock()
}

func newTestWidget(transport *fakeTransport) (*Widget, *fakeNavigator, *bridge.FilterBridge) {
	nav := &fakeNavigator{}
	b := bridge.New()
	return NewWidget(transport, nav, b, "42"), nav, b
}

func TestWidgetSeedsWelcomeMessage(t *testing.T) {
	w, _, _ := newTestWidget(&fakeTransport{})

	msgs := w.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, models.RoleAssistant, msgs[0].Role)
	assert.NotEmpty(t, msgs[0].SuggestedActions)
}

func TestSendEchoesUserMessageAndAppendsReply(t *testing.T) {
	transport := &fakeTransport{reply: &models.AgentReply{
		Message:   "Here are some picks.",
		AgentType: models.AgentTypeProductRecommendation,
	}}
	w, _, _ := newTestWidget(transport)

	require.NoError(t, w.Send(context.Background(), "show me shoes"))

	msgs := w.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, models.RoleUser, msgs[1].Role)
	assert.Equal(t, "show me shoes", msgs[1].Content)
	assert.Equal(t, models.RoleAssistant, msgs[2].Role)
	assert.Equal(t, "Here are some picks.", msgs[2].Content)
	assert.Equal(t, []string{"42"}, transport.userIDs)
}

func TestSendRejectsEmptyInput(t *testing.T) {
	w, _, _ := newTestWidget(&fakeTransport{})

	assert.ErrorIs(t, w.Send(context.Background(), "   "), ErrEmptyMessage)
	assert.Len(t, w.Messages(), 1, "no echo for rejected input")
}

func TestSendIsSingleFlight(t *testing.T) {
	transport := &fakeTransport{
		reply: &models.AgentReply{Message: "ok"},
		block: make(chan struct{}),
	}
	w, _, _ := newTestWidget(transport)

	done := make(chan error, 1)
	go func() { done <- w.Send(context.Background(), "first") }()

	// Wait for the first send to be in flight.
	require.Eventually(t, func() bool {
		transport.mu.Lock()
		defer transport.mu.Unlock()
		return len(transport.userIDs) == 1
	}, time.Second, time.Millisecond)

	assert.ErrorIs(t, w.Send(context.Background(), "second"), ErrBusy)

	close(transport.block)
	require.NoError(t, <-done)
}

func TestTransportFailureAppendsInlineApology(t *testing.T) {
	transport := &fakeTransport{err: errors.New("agent unreachable")}
	w, nav, _ := newTestWidget(transport)

	err := w.Send(context.Background(), "show me shoes")
	assert.Error(t, err)

	msgs := w.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, models.RoleAssistant, msgs[2].Role)
	assert.Contains(t, msgs[2].Content, "Sorry")
	assert.Empty(t, nav.paths, "no navigation on failure")
}

func TestFilterCommandWithNavigationClosesNavigatesDispatches(t *testing.T) {
	cmd := models.FilterCommand{
		Action:     models.FilterActionApply,
		Categories: []string{"men"},
		Sort:       "price-ascending",
	}
	transport := &fakeTransport{reply: &models.AgentReply{
		Message:        "Updating your view.",
		FilterCommand:  &cmd,
		ShouldNavigate: true,
	}}
	w, nav, b := newTestWidget(transport)
	w.Open()

	var got []models.FilterCommand
	b.Register(func(c models.FilterCommand) { got = append(got, c) })

	require.NoError(t, w.Send(context.Background(), "cheap men's clothes"))

	assert.False(t, w.IsOpen())
	assert.Equal(t, []string{"/products"}, nav.paths)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"men"}, got[0].Categories)
}

func TestFilterCommandWithoutNavigateFlagStaysPut(t *testing.T) {
	cmd := models.FilterCommand{Action: models.FilterActionApply, Sort: "newest"}
	transport := &fakeTransport{reply: &models.AgentReply{
		Message:       "Noted.",
		FilterCommand: &cmd,
	}}
	w, nav, b := newTestWidget(transport)

	var dispatched int
	b.Register(func(models.FilterCommand) { dispatched++ })

	require.NoError(t, w.Send(context.Background(), "sort by newest"))

	assert.Empty(t, nav.paths)
	assert.Zero(t, dispatched)
}

func TestExpiredCommandSurfacesInTranscript(t *testing.T) {
	cmd := models.FilterCommand{Action: models.FilterActionApply, Sort: "newest"}
	transport := &fakeTransport{reply: &models.AgentReply{
		Message:        "Updating your view.",
		FilterCommand:  &cmd,
		ShouldNavigate: true,
	}}

	nav := &fakeNavigator{}
	b := bridge.NewWithTTL(10 * time.Millisecond)
	w := NewWidget(transport, nav, b, "42")

	// No listing view ever mounts: the buffered command expires.
	require.NoError(t, w.Send(context.Background(), "newest products"))

	require.Eventually(t, func() bool {
		msgs := w.Messages()
		last := msgs[len(msgs)-1]
		return last.Role == models.RoleAssistant &&
			last.Content == "I couldn't apply those filters to the product page. Please try again or adjust the filters yourself."
	}, time.Second, 5*time.Millisecond)
}

func TestAgentLabelFallsBackToGeneric(t *testing.T) {
	assert.Equal(t, "Product Assistant", AgentLabel(models.AgentTypeProductRecommendation))
	assert.Equal(t, "Order Assistant", AgentLabel(models.AgentTypeOrderTracking))
	assert.Equal(t, "Support Assistant", AgentLabel(models.AgentTypeCustomerSupport))
	assert.Equal(t, "Shop Assistant", AgentLabel("intent_router"))
	assert.Equal(t, "Shop Assistant", AgentLabel(""))
}
