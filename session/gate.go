package session

import "log/slog"

// InputGate receives native keystrokes a surface refuses to apply. Text only
// changes through panel keys.
type InputGate interface {
	Reject(source string)
}

// Suppressor is an InputGate that counts and logs rejected input.
type Suppressor struct {
	log      *slog.Logger
	rejected int
}

func NewSuppressor(log *slog.Logger) *Suppressor {
	return &Suppressor{log: log}
}

func (s *Suppressor) Reject(source string) {
	s.rejected++
	if s.log != nil {
		s.log.Debug("native input suppressed", "source", source, "total", s.rejected)
	}
}

// Rejected returns how many keystrokes were suppressed.
func (s *Suppressor) Rejected() int { return s.rejected }
