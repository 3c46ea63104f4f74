// Package gsettings is the boundary to the external GNOME settings store.
//
// It only knows how to build and run `gsettings get|set` command lines and how
// to address a gnome-terminal profile. Value typing and auditing live in the
// settings package.
package gsettings

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Default schema locations used by gnome-terminal.
const (
	DefaultBinary            = "gsettings"
	DefaultProfileListSchema = "org.gnome.Terminal.ProfilesList"
	DefaultProfileSchema     = "org.gnome.Terminal.Legacy.Profile"
	DefaultProfilePathPrefix = "/org/gnome/terminal/legacy/profiles:/"
	DefaultFontSchema        = "org.gnome.desktop.interface"
	DefaultFontKey           = "monospace-font-name"
)

// Command is one external invocation.
type Command struct {
	Name string
	Args []string
}

// String renders the command the way a user would type it.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Runner executes a Command and returns its trimmed standard output.
type Runner interface {
	Run(ctx context.Context, cmd Command) (string, error)
}

// ExecRunner runs commands as child processes.
type ExecRunner struct{}

// Run executes cmd and waits for it to finish.
func (ExecRunner) Run(ctx context.Context, cmd Command) (string, error) {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)

	var stdoutBuf, stderrBuf bytes.Buffer
	c.Stdout = &stdoutBuf
	c.Stderr = &stderrBuf

	if err := c.Run(); err != nil {
		stderr := strings.TrimSpace(stderrBuf.String())
		if stderr != "" {
			return "", fmt.Errorf("failed to execute '%s': %w. Stderr: %s", cmd, err, stderr)
		}
		return "", fmt.Errorf("failed to execute '%s': %w", cmd, err)
	}
	return strings.TrimSpace(stdoutBuf.String()), nil
}

// Schema addresses the gnome-terminal keys.
type Schema struct {
	Binary            string
	ProfileListSchema string
	ProfileSchema     string
	ProfilePathPrefix string
}

// DefaultSchema returns the stock gnome-terminal locations.
func DefaultSchema() Schema {
	return Schema{
		Binary:            DefaultBinary,
		ProfileListSchema: DefaultProfileListSchema,
		ProfileSchema:     DefaultProfileSchema,
		ProfilePathPrefix: DefaultProfilePathPrefix,
	}
}

// ProfileKeyPath returns the relocatable schema path of one profile, e.g.
// org.gnome.Terminal.Legacy.Profile:/org/gnome/terminal/legacy/profiles:/:<id>/
func (s Schema) ProfileKeyPath(profileID string) string {
	return fmt.Sprintf("%s:%s:%s/", s.ProfileSchema, s.ProfilePathPrefix, profileID)
}

// GetCommand builds `gsettings get <path> <key>`.
func (s Schema) GetCommand(path, key string) Command {
	return Command{Name: s.Binary, Args: []string{"get", path, key}}
}

// SetCommand builds `gsettings set <path> <key> <literal>`. literal must
// already be in GVariant text form.
func (s Schema) SetCommand(path, key, literal string) Command {
	return Command{Name: s.Binary, Args: []string{"set", path, key, literal}}
}

// DefaultProfileCommand builds the lookup of the default profile id.
func (s Schema) DefaultProfileCommand() Command {
	return s.GetCommand(s.ProfileListSchema, "default")
}

// ParseProfileID strips the GVariant string quoting from a `gsettings get` result.
func ParseProfileID(output string) string {
	return strings.Trim(strings.TrimSpace(output), "'")
}

// Quote renders s as a single-quoted GVariant string literal.
func Quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return "'" + s + "'"
}
