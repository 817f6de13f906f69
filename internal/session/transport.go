package session

//go:generate mockgen -destination=./transport_mock_test.go -package=session -source=transport.go Transport

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"portfolio-assistant/internal/chat"
)

// ErrRequestFailed wraps every transport level failure, including error fragments in a stream.
var ErrRequestFailed = errors.New("chat request failed")

// Transport is the contract for reaching the chat endpoint.
type Transport interface {
	// Complete sends the conversation and returns the whole reply.
	Complete(ctx context.Context, messages []chat.Message) (string, error)
	// Stream sends the conversation and calls onFragment for each piece of
	// the reply, in arrival order, before returning.
	Stream(ctx context.Context, messages []chat.Message, onFragment func(string)) error
}

// httpTransport is the implementation talking to POST /api/chat.
type httpTransport struct {
	httpClient *http.Client
	baseURL    string
}

// NewHTTPTransport is the constructor. A nil client means a plain http.Client.
// No timeout is set: the only bound is ctx.
func NewHTTPTransport(baseURL string, client *http.Client) Transport {
	if client == nil {
		client = &http.Client{}
	}
	return &httpTransport{
		httpClient: client,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

type chatRequest struct {
	Messages []chat.Message `json:"messages"`
}

type chatResponse struct {
	Text string `json:"text"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Complete makes a buffered call.
func (c *httpTransport) Complete(ctx context.Context, messages []chat.Message) (string, error) {
	resp, err := c.post(ctx, "/api/chat", messages)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: could not decode reply: %w", ErrRequestFailed, err)
	}
	return out.Text, nil
}

// Stream makes a streamed call and reads the body line by line.
func (c *httpTransport) Stream(ctx context.Context, messages []chat.Message, onFragment func(string)) error {
	resp, err := c.post(ctx, "/api/chat?stream=true", messages)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	reader := bufio.NewReader(resp.Body)
	for {
		line, err := reader.ReadBytes('\n')
		if len(line) > 0 {
			f := chat.DecodeFragment(line)
			if f.Failed() {
				return fmt.Errorf("%w: %s", ErrRequestFailed, f.Err)
			}
			onFragment(f.Text)
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: stream interrupted: %w", ErrRequestFailed, err)
		}
	}
}

// post sends the conversation and returns the response only when it is a 200.
func (c *httpTransport) post(ctx context.Context, path string, messages []chat.Message) (*http.Response, error) {
	reqBody, err := json.Marshal(chatRequest{Messages: messages})
	if err != nil {
		return nil, fmt.Errorf("could not marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("could not create chat http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		var body errorResponse
		json.NewDecoder(resp.Body).Decode(&body)
		return nil, fmt.Errorf("%w: chat service returned status %d: %s", ErrRequestFailed, resp.StatusCode, body.Error)
	}

	return resp, nil
}
