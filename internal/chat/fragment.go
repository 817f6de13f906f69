package chat

import (
	"bytes"
	"encoding/json"
)

// FragmentKind says how a stream fragment was understood.
type FragmentKind int

const (
	// FragmentRaw is literal text that did not decode as a fragment object.
	FragmentRaw FragmentKind = iota
	// FragmentStructured is a JSON object carrying text or an error.
	FragmentStructured
)

// Fragment is one decoded piece of a streamed reply.
type Fragment struct {
	Kind FragmentKind
	Text string
	// Err is set when the server reported a failure mid-stream.
	Err string
}

// Failed reports whether the fragment ends the stream with an error.
func (f Fragment) Failed() bool {
	return f.Kind == FragmentStructured && f.Err != ""
}

// wireFragment is one NDJSON line of a streamed chat response.
type wireFragment struct {
	Text  *string `json:"text,omitempty"`
	Error *string `json:"error,omitempty"`
}

func textFragment(text string) wireFragment {
	return wireFragment{Text: &text}
}

func errorFragment(message string) wireFragment {
	return wireFragment{Error: &message}
}

// DecodeFragment tries raw as a JSON fragment object and falls back to the
// literal bytes when it is not one. This is the only place a decode error is
// deliberately dropped.
func DecodeFragment(raw []byte) Fragment {
	var wf wireFragment
	if err := json.Unmarshal(bytes.TrimSpace(raw), &wf); err != nil || (wf.Text == nil && wf.Error == nil) {
		return Fragment{Kind: FragmentRaw, Text: string(raw)}
	}

	f := Fragment{Kind: FragmentStructured}
	if wf.Text != nil {
		f.Text = *wf.Text
	}
	if wf.Error != nil {
		f.Err = *wf.Error
	}
	return f
}
