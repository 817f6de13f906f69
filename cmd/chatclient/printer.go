package main

import (
	"fmt"
	"io"

	"portfolio-assistant/internal/chat"
	"portfolio-assistant/internal/session"
)

// replyPrinter writes the pending bot reply as it grows, one line per reply.
type replyPrinter struct {
	w       io.Writer
	index   int // transcript position of the reply being printed
	printed int // bytes of it already written
	done    bool
}

func newReplyPrinter(w io.Writer) *replyPrinter {
	return &replyPrinter{w: w}
}

// observe is registered as the controller's change listener.
func (p *replyPrinter) observe(s session.State) {
	last := len(s.Messages) - 1
	if last < 1 || s.Messages[last].Sender != chat.SenderBot {
		return
	}
	if last != p.index {
		p.index, p.printed, p.done = last, 0, false
	}
	if p.done {
		return
	}

	text := s.Messages[last].Text
	if len(text) > p.printed {
		fmt.Fprint(p.w, text[p.printed:])
		p.printed = len(text)
	}
	if s.Status == session.Idle {
		fmt.Fprintln(p.w)
		p.done = true
	}
}
