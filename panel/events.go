package panel

import (
	"github.com/iw2rmb/akshara/buffer"
	"github.com/iw2rmb/akshara/session"
)

type ChangeEvent struct {
	SessionID string
	Version   uint64
	Caret     int

	// Change is the most recent buffer change.
	Change buffer.Change

	// v0: full text; host can diff if needed.
	Text string
}

func buildChangeEvent(s *session.Session) ChangeEvent {
	ev := ChangeEvent{
		SessionID: s.ID(),
		Version:   s.Version(),
		Caret:     s.Caret(),
		Text:      s.Text(),
	}
	if ch, ok := s.LastChange(); ok {
		ev.Change = ch
	}
	return ev
}
