package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"portfolio-assistant/internal/chat"

	"go.uber.org/zap"
)

var (
	// ErrEmptyMessage is returned when the text to send is blank.
	ErrEmptyMessage = errors.New("message is empty")
	// ErrBusy is returned while a previous request is still outstanding.
	ErrBusy = errors.New("a reply is still pending")
)

// Controller owns one conversation and allows one request at a time.
// The transport is always called outside the lock.
type Controller struct {
	transport Transport
	streaming bool
	logger    *zap.Logger

	mu       sync.Mutex
	state    State
	onChange func(State)
}

// NewController starts a closed panel whose transcript holds only the greeting.
func NewController(transport Transport, streaming bool, logger *zap.Logger) *Controller {
	return &Controller{
		transport: transport,
		streaming: streaming,
		logger:    logger,
		state: State{
			Messages: []chat.Message{{Sender: chat.SenderBot, Text: Greeting}},
		},
	}
}

// OnChange registers fn to receive a snapshot after each transcript change
// while the panel is open. It replaces any earlier listener.
func (c *Controller) OnChange(fn func(State)) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

func (c *Controller) Open() {
	c.update(func(s *State) { s.Open = true })
}

func (c *Controller) Close() {
	c.mu.Lock()
	c.state.Open = false
	c.mu.Unlock()
}

func (c *Controller) Toggle() {
	c.update(func(s *State) { s.Open = !s.Open })
}

// SetInput replaces the input buffer.
func (c *Controller) SetInput(text string) {
	c.mu.Lock()
	c.state.Input = text
	c.mu.Unlock()
}

// Submit sends the input buffer. The buffer is cleared only when the send is accepted.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	text := c.state.Input
	c.mu.Unlock()

	return c.send(ctx, text, true)
}

// Send appends text as a visitor message and waits for the reply.
// Blank text and sends while a reply is pending are ignored with
// ErrEmptyMessage and ErrBusy and leave the state untouched.
func (c *Controller) Send(ctx context.Context, text string) error {
	return c.send(ctx, text, false)
}

func (c *Controller) send(ctx context.Context, text string, fromInput bool) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyMessage
	}

	c.mu.Lock()
	if c.state.Status.Busy() {
		c.mu.Unlock()
		return ErrBusy
	}

	c.state.Messages = append(c.state.Messages,
		chat.Message{Sender: chat.SenderUser, Text: text},
		chat.Message{Sender: chat.SenderBot})
	placeholder := len(c.state.Messages) - 1
	c.state.Status = AwaitingResponse
	if fromInput {
		c.state.Input = ""
	}
	// Everything up to and including the new visitor message.
	history := c.state.clone().Messages[:placeholder]
	snap, listener := c.state.clone(), c.onChange
	c.mu.Unlock()
	notify(listener, snap)

	var err error
	if c.streaming {
		err = c.transport.Stream(ctx, history, func(fragment string) {
			if fragment == "" {
				return
			}
			c.update(func(s *State) {
				s.Messages[placeholder].Text += fragment
				s.Status = Streaming
			})
		})
	} else {
		var reply string
		reply, err = c.transport.Complete(ctx, history)
		if err == nil {
			c.update(func(s *State) { s.Messages[placeholder].Text = reply })
		}
	}

	c.update(func(s *State) {
		if err != nil && s.Messages[placeholder].Text == "" {
			s.Messages[placeholder].Text = Apology
		}
		s.Status = Idle
	})

	if err != nil {
		c.logger.Warn("chat request failed", zap.Bool("streaming", c.streaming), zap.Error(err))
		return fmt.Errorf("could not get reply: %w", err)
	}
	return nil
}

// update applies fn under the lock and notifies the listener with the result.
func (c *Controller) update(fn func(s *State)) {
	c.mu.Lock()
	fn(&c.state)
	snap, listener := c.state.clone(), c.onChange
	c.mu.Unlock()
	notify(listener, snap)
}

func notify(listener func(State), snap State) {
	if listener != nil && snap.Open {
		listener(snap)
	}
}
