// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"context"
	"strings"
	"sync"

	"github.com/jeranaias/parley/internal/cloud"
	"github.com/jeranaias/parley/internal/model"
)

// ErrorPrefix marks a failed turn's bot message. Failures share the bot
// message type with normal replies and are distinguished only by this
// literal prefix on the text.
const ErrorPrefix = "Error: "

// CompletionClient is the slice of the completions client the controller
// needs. *cloud.Client satisfies it; tests substitute fakes.
type CompletionClient interface {
	CompleteConversation(ctx context.Context, model string, messages []cloud.ChatMessage) (string, error)
	IsConfigured() bool
}

// Config holds controller configuration.
type Config struct {
	// Model is the wire identifier sent with each completion request.
	Model string
}

// DefaultConfig returns the default controller configuration.
func DefaultConfig() Config {
	return Config{
		Model: cloud.DefaultModel,
	}
}

// turn is one queued completion request. The message payload is snapshotted
// at submit time, so a turn's request body never shifts under it while it
// waits in the queue.
type turn struct {
	messages []cloud.ChatMessage
}

// =============================================================================
// CONTROLLER
// =============================================================================

// Controller owns the conversation and mediates user turns end-to-end.
//
// A submit appends the user message synchronously, then queues a completion
// request. Requests are dispatched one at a time by a single worker
// goroutine, so replies append in submission order even when the user
// submits again while an earlier turn is still in flight. Every append
// fires the registered change listeners.
//
// The conversation is mutated only by append, only under the controller's
// mutex; nothing is ever altered or removed once appended.
type Controller struct {
	mu        sync.Mutex
	cond      *sync.Cond
	conv      *model.Conversation
	client    CompletionClient
	modelID   string
	listeners []func()
	queue     []turn
	inFlight  bool
	closed    bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewController creates a controller around the given client and starts
// its dispatch worker.
func NewController(client CompletionClient, cfg Config) *Controller {
	if cfg.Model == "" {
		cfg.Model = cloud.DefaultModel
	}

	ctx, cancel := context.WithCancel(context.Background())

	c := &Controller{
		conv:    model.NewConversationWithModel(cfg.Model),
		client:  client,
		modelID: cfg.Model,
		ctx:     ctx,
		cancel:  cancel,
	}
	c.cond = sync.NewCond(&c.mu)

	c.wg.Add(1)
	go c.worker()

	return c
}

// Close stops the dispatch worker and returns once it has exited. Queued
// turns are discarded and an in-flight request is canceled through its
// context. Idempotent; a second call returns without waiting.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.cond.Broadcast()
	c.mu.Unlock()

	c.cancel()
	c.wg.Wait()
}

// =============================================================================
// SUBMIT PATH
// =============================================================================

// Submit handles one submit action. Leading and trailing whitespace is
// trimmed; an empty result is a no-op and returns false, leaving the
// conversation untouched.
//
// Otherwise the user message is appended before Submit returns, so the
// caller can clear its input buffer immediately, and a completion turn is
// queued for the worker. Returns true when a turn was accepted.
func (c *Controller) Submit(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return false
	}

	c.conv.AddUserMessage(trimmed)
	c.queue = append(c.queue, turn{messages: c.conv.ToChatMessages()})
	c.cond.Broadcast()
	listeners := c.copyListenersLocked()
	c.mu.Unlock()

	fire(listeners)
	return true
}

// worker dispatches queued turns one at a time.
func (c *Controller) worker() {
	defer c.wg.Done()

	for {
		c.mu.Lock()
		for len(c.queue) == 0 && !c.closed {
			c.cond.Wait()
		}
		if c.closed {
			c.mu.Unlock()
			return
		}
		t := c.queue[0]
		c.queue = c.queue[1:]
		c.inFlight = true
		modelID := c.modelID
		client := c.client
		c.mu.Unlock()

		reply, err := client.CompleteConversation(c.ctx, modelID, t.messages)

		c.mu.Lock()
		if c.closed {
			// Shutting down; the result has nowhere to go.
			c.mu.Unlock()
			return
		}
		if err != nil {
			c.conv.AddBotMessage(ErrorPrefix + err.Error())
		} else {
			c.conv.AddBotMessage(reply)
		}
		c.inFlight = false
		c.cond.Broadcast()
		listeners := c.copyListenersLocked()
		c.mu.Unlock()

		fire(listeners)
	}
}

// Wait blocks until every accepted turn has resolved. Used by synchronous
// surfaces (the plain REPL) and by tests.
func (c *Controller) Wait() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for (len(c.queue) > 0 || c.inFlight) && !c.closed {
		c.cond.Wait()
	}
}

// Busy reports whether any turn is queued or in flight.
func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.queue) > 0 || c.inFlight
}

// =============================================================================
// OBSERVERS
// =============================================================================

// Subscribe registers a change listener. The listener is called once after
// every append, after the new message is visible through the read
// accessors. Listeners run outside the controller lock and must not block
// for long; UIs typically forward the signal to their own event loop.
func (c *Controller) Subscribe(fn func()) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// copyListenersLocked snapshots the listener list. Callers hold c.mu.
func (c *Controller) copyListenersLocked() []func() {
	if len(c.listeners) == 0 {
		return nil
	}
	out := make([]func(), len(c.listeners))
	copy(out, c.listeners)
	return out
}

// fire invokes listeners outside the lock.
func fire(listeners []func()) {
	for _, fn := range listeners {
		fn()
	}
}

// =============================================================================
// READ ACCESSORS
// =============================================================================

// Messages returns a value copy of the transcript in append order.
func (c *Controller) Messages() []model.Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]model.Message, 0, len(c.conv.Messages))
	for _, msg := range c.conv.Messages {
		out = append(out, *msg)
	}
	return out
}

// MessageCount returns the number of messages in the transcript.
func (c *Controller) MessageCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conv.MessageCount()
}

// LastMessage returns the most recent message, if any.
func (c *Controller) LastMessage() (model.Message, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	last := c.conv.GetLastMessage()
	if last == nil {
		return model.Message{}, false
	}
	return *last, true
}

// Snapshot returns a deep copy of the conversation, for export.
func (c *Controller) Snapshot() *model.Conversation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conv.Clone()
}

// Title returns the conversation title.
func (c *Controller) Title() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conv.GetTitle()
}

// IsConfigured reports whether the underlying client has a credential.
func (c *Controller) IsConfigured() bool {
	c.mu.Lock()
	client := c.client
	c.mu.Unlock()
	return client.IsConfigured()
}

// SetClient swaps the completions client used for subsequent turns. An
// in-flight request keeps the client it started with. Long-lived surfaces
// call this when the configuration file changes under them.
func (c *Controller) SetClient(client CompletionClient) {
	if client == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.client = client
}

// =============================================================================
// MODEL SELECTION
// =============================================================================

// SetModel switches the model used for subsequent turns. Short names from
// the registry resolve to wire identifiers; unknown names pass through.
func (c *Controller) SetModel(nameOrID string) string {
	resolved := model.ResolveModel(nameOrID)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.modelID = resolved
	c.conv.Model = resolved
	return resolved
}

// Model returns the wire identifier used for the next turn.
func (c *Controller) Model() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.modelID
}

// =============================================================================
// STATUS
// =============================================================================

// Status is a point-in-time snapshot of controller state for status lines.
type Status struct {
	ConversationID string
	Title          string
	Model          string
	MessageCount   int
	TokensUsed     int
	Busy           bool
	Configured     bool
}

// GetStatus returns the current controller status.
func (c *Controller) GetStatus() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Status{
		ConversationID: c.conv.ID,
		Title:          c.conv.GetTitle(),
		Model:          c.modelID,
		MessageCount:   c.conv.MessageCount(),
		TokensUsed:     c.conv.TokensUsed,
		Busy:           len(c.queue) > 0 || c.inFlight,
		Configured:     c.client.IsConfigured(),
	}
}
