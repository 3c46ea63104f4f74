// Package gsettingstest provides an in-memory stand-in for the gsettings binary.
package gsettingstest

import (
	"context"
	"errors"
	"sync"

	"tmt/internal/gsettings"
)

// ErrExit mimics a non-zero exit of the gsettings binary.
var ErrExit = errors.New("exit status 1")

// Store records every command and keeps set values per key so later gets
// observe them. Keys are "<path> <key>".
type Store struct {
	mu        sync.Mutex
	commands  []gsettings.Command
	values    map[string]string
	ProfileID string
	// FailKeys makes `set` of these keys fail.
	FailKeys map[string]bool
}

// NewStore returns a store whose default profile is id. An empty id makes the
// default-profile lookup fail.
func NewStore(id string) *Store {
	return &Store{values: make(map[string]string), ProfileID: id, FailKeys: make(map[string]bool)}
}

// Run implements gsettings.Runner.
func (s *Store) Run(_ context.Context, cmd gsettings.Command) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commands = append(s.commands, cmd)

	if len(cmd.Args) < 3 {
		return "", ErrExit
	}
	switch cmd.Args[0] {
	case "get":
		if cmd.Args[2] == "default" && cmd.Args[1] == gsettings.DefaultProfileListSchema {
			if s.ProfileID == "" {
				return "", ErrExit
			}
			return "'" + s.ProfileID + "'", nil
		}
		return s.values[cmd.Args[1]+" "+cmd.Args[2]], nil
	case "set":
		if len(cmd.Args) < 4 || s.FailKeys[cmd.Args[2]] {
			return "", ErrExit
		}
		s.values[cmd.Args[1]+" "+cmd.Args[2]] = cmd.Args[3]
		return "", nil
	}
	return "", ErrExit
}

// Commands returns every command run so far.
func (s *Store) Commands() []gsettings.Command {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]gsettings.Command(nil), s.commands...)
}

// Sets returns "<key>=<literal>" for every set command, in order.
func (s *Store) Sets() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	for _, c := range s.commands {
		if len(c.Args) == 4 && c.Args[0] == "set" {
			out = append(out, c.Args[2]+"="+c.Args[3])
		}
	}
	return out
}

// Value returns the last literal set for key under path.
func (s *Store) Value(path, key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[path+" "+key]
}
