package chat

import (
	"encoding/json"
	"iter"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// maxBodyBytes bounds the chat request body. A long conversation is still far below it.
const maxBodyBytes = 1 << 20

// Handler is the HTTP API layer for the portfolio assistant.
type Handler struct {
	service  Service
	validate *validator.Validate
	logger   *zap.Logger
}

// NewHandler creates a new handler injecting the service.
func NewHandler(s Service, logger *zap.Logger) *Handler {
	return &Handler{
		service:  s,
		validate: validator.New(),
		logger:   logger,
	}
}

// RegisterRoutes attaches the chat endpoint to the router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/chat", func(r chi.Router) {
		r.MethodNotAllowed(h.handleMethodNotAllowed)

		// Buffered by default, NDJSON stream with ?stream=true
		r.Post("/", h.handleChat)
	})
}

// --- DTOs ---

// chatRequest is what the chat widget sends: the full displayed conversation.
type chatRequest struct {
	Messages []Message `json:"messages" validate:"required,dive"`
}

// chatResponse carries a buffered reply.
type chatResponse struct {
	Text string `json:"text"`
}

// --- Handlers ---

// handleChat answers the last message of the conversation.
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, &ValidationError{Field: "messages", Err: err})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.fail(w, &ValidationError{Field: "messages", Err: err})
		return
	}

	if stream, _ := strconv.ParseBool(r.URL.Query().Get("stream")); stream {
		h.streamReply(w, r, req.Messages)
		return
	}

	text, err := h.service.Reply(r.Context(), req.Messages)
	if err != nil {
		h.fail(w, err)
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Text: text})
}

// streamReply writes the reply as NDJSON lines, flushing after each one.
// The status is committed only once the first fragment is in, so a provider
// that fails straight away still gets a 500.
func (h *Handler) streamReply(w http.ResponseWriter, r *http.Request, messages []Message) {
	seq, err := h.service.ReplyStream(r.Context(), messages)
	if err != nil {
		h.fail(w, err)
		return
	}

	next, stop := iter.Pull2(seq)
	defer stop()

	// Empty fragments carry nothing to commit to.
	text, err, ok := next()
	for ok && err == nil && text == "" {
		text, err, ok = next()
	}
	if ok && err != nil {
		h.fail(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/x-ndjson")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)

	rc := http.NewResponseController(w)
	enc := json.NewEncoder(w)
	fragments := 0

	for ; ok; text, err, ok = next() {
		if err != nil {
			h.logger.Error("stream ended with error", zap.Int("fragments", fragments), zap.Error(err))
			enc.Encode(errorFragment(msgGenerationFailed))
			rc.Flush()
			return
		}
		if text == "" {
			continue
		}
		if err := enc.Encode(textFragment(text)); err != nil {
			// The visitor went away; there is nobody left to write to.
			h.logger.Info("client left mid-stream", zap.Int("fragments", fragments), zap.Error(err))
			return
		}
		rc.Flush()
		fragments++
	}
}

// handleMethodNotAllowed answers anything but POST on the chat endpoint.
func (h *Handler) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", http.MethodPost)
	writeError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
}

// fail logs err and writes the matching minimal error body.
func (h *Handler) fail(w http.ResponseWriter, err error) {
	status, message := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("chat request failed", zap.Error(err))
	} else {
		h.logger.Info("chat request rejected", zap.Int("status", status), zap.Error(err))
	}
	writeError(w, status, message)
}

// writeJSON is a helper function for sending json responses.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError is a helper for sending a standardized json error.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
