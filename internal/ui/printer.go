package ui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"tmt/internal/mutation"
	"tmt/internal/palette"
)

// Printer writes mutation output to a terminal.
type Printer struct {
	out io.Writer
}

var _ mutation.Output = (*Printer)(nil)

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Success prints msg in the success style.
func (p *Printer) Success(msg string) { fmt.Fprintln(p.out, SuccessStyle.Render(msg)) }

// Failure prints msg in the error style.
func (p *Printer) Failure(msg string) { fmt.Fprintln(p.out, ErrorStyle.Render(msg)) }

// Info prints msg in the info style.
func (p *Printer) Info(msg string) { fmt.Fprintln(p.out, InfoStyle.Render(msg)) }

// Themes prints the colored theme list.
func (p *Printer) Themes(themes []palette.Theme) {
	if len(themes) == 0 {
		fmt.Fprintln(p.out, SubtleStyle.Render("No themes loaded"))
		return
	}
	fmt.Fprint(p.out, RenderThemeList(themes))
}

// Profile prints the profile id and a numbered property table.
func (p *Printer) Profile(id string, values []mutation.PropertyValue) {
	fmt.Fprintf(p.out, "Profile Id: '%s'\n", id)
	fmt.Fprint(p.out, RenderProfileTable(values))
	fmt.Fprintln(p.out)
}

// RenderProfileTable renders property values as a rounded table.
func RenderProfileTable(values []mutation.PropertyValue) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{
		text.FgHiCyan.Sprint("#"),
		text.FgHiCyan.Sprint("PROPERTY"),
		text.FgHiCyan.Sprint("VALUE"),
	})
	for i, v := range values {
		value := v.Value
		switch {
		case v.Err != nil:
			value = text.FgRed.Sprint("error: " + v.Err.Error())
		case value == "":
			value = text.FgHiBlack.Sprint("-")
		}
		t.AppendRow(table.Row{strconv.Itoa(i + 1), text.FgYellow.Sprint(v.Property), value})
	}
	return t.Render()
}
