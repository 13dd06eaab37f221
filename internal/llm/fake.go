package llm

import (
	"context"
	"sync"
)

// ScriptedCompleter replays canned responses in order and records the
// prompts it received. For tests.
type ScriptedCompleter struct {
	Responses []string
	Err       error

	mu      sync.Mutex
	calls   int
	Prompts []string
}

// Complete returns the next scripted response, or the last one when the
// script is exhausted.
func (s *ScriptedCompleter) Complete(_ context.Context, _ string, prompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return "", s.Err
	}
	s.Prompts = append(s.Prompts, prompt)
	if len(s.Responses) == 0 {
		return "", nil
	}
	i := s.calls
	if i >= len(s.Responses) {
		i = len(s.Responses) - 1
	}
	s.calls++
	return s.Responses[i], nil
}
