package settings

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tmt/internal/gsettings"
	"tmt/pkg/logging"
)

const subsystem = "Settings"

var (
	// ErrProfileUnavailable means the store has no default profile. It is fatal
	// for the invocation.
	ErrProfileUnavailable = errors.New("could not retrieve GNOME Terminal profile ID")
	// ErrExternalWrite wraps a failed store call.
	ErrExternalWrite = errors.New("settings store call failed")
	// ErrTypeMismatch means a value does not match the property's declared type.
	ErrTypeMismatch = errors.New("value type does not match property type")
)

// WriteError reports a failed write of one property.
type WriteError struct {
	Property string
	Err      error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to set %s: %v", e.Property, e.Err)
}

func (e *WriteError) Unwrap() []error { return []error{ErrExternalWrite, e.Err} }

// Profile identifies the gnome-terminal profile being modified.
type Profile struct {
	ID      string
	KeyPath string
}

// Options configures an Applier.
type Options struct {
	// Verbose writes every command to Audit before it runs.
	Verbose bool
	Audit   io.Writer
	// AuditStyle decorates the command text, e.g. with terminal colors.
	AuditStyle func(string) string
}

// Applier writes and reads profile properties through the external store.
// Every call is independent; there is no batching and no retry.
type Applier struct {
	schema gsettings.Schema
	runner gsettings.Runner
	opts   Options
}

// NewApplier creates an Applier.
func NewApplier(schema gsettings.Schema, runner gsettings.Runner, opts Options) *Applier {
	if opts.Audit == nil {
		opts.Audit = io.Discard
	}
	return &Applier{schema: schema, runner: runner, opts: opts}
}

// ResolveProfile looks up the default profile. Any failure, including an empty
// answer, is ErrProfileUnavailable.
func (a *Applier) ResolveProfile(ctx context.Context) (Profile, error) {
	out, err := a.run(ctx, a.schema.DefaultProfileCommand())
	if err != nil {
		return Profile{}, fmt.Errorf("%w: %v", ErrProfileUnavailable, err)
	}
	id := gsettings.ParseProfileID(out)
	if id == "" {
		return Profile{}, fmt.Errorf("%w: store returned no default profile", ErrProfileUnavailable)
	}
	logging.Debug(subsystem, "Resolved default profile %s", id)
	return Profile{ID: id, KeyPath: a.schema.ProfileKeyPath(id)}, nil
}

// Apply writes value to property of profile.
func (a *Applier) Apply(ctx context.Context, profile Profile, property string, value Value) error {
	if want, ok := DeclaredKind(property); ok && want != value.Kind() {
		return fmt.Errorf("failed to set %s: %w: wants %s, got %s", property, ErrTypeMismatch, want, value.Kind())
	}
	return a.set(ctx, profile.KeyPath, property, value)
}

// ApplyGlobal writes value to a key of a non-profile schema, e.g. the desktop
// monospace font.
func (a *Applier) ApplyGlobal(ctx context.Context, schemaID, key string, value Value) error {
	return a.set(ctx, schemaID, key, value)
}

// Read returns the store's current text for property of profile.
func (a *Applier) Read(ctx context.Context, profile Profile, property string) (string, error) {
	out, err := a.run(ctx, a.schema.GetCommand(profile.KeyPath, property))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", property, err)
	}
	return out, nil
}

func (a *Applier) set(ctx context.Context, path, key string, value Value) error {
	if _, err := a.run(ctx, a.schema.SetCommand(path, key, value.Literal())); err != nil {
		logging.Error(subsystem, err, "Write of %s failed", key)
		return &WriteError{Property: key, Err: err}
	}
	return nil
}

func (a *Applier) run(ctx context.Context, cmd gsettings.Command) (string, error) {
	if a.opts.Verbose {
		line := cmd.String()
		if a.opts.AuditStyle != nil {
			line = a.opts.AuditStyle(line)
		}
		fmt.Fprintf(a.opts.Audit, "$ %s\n", line)
	}
	return a.runner.Run(ctx, cmd)
}
