package mutation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"tmt/internal/color"
)

// ErrInvalidArgument is returned by Plan and ParseTransparency for values that
// can never be applied.
var ErrInvalidArgument = errors.New("invalid argument")

// TransparencyMode says what SetTransparency writes.
type TransparencyMode int

const (
	// TransparencyOff writes use-transparent-background=false.
	TransparencyOff TransparencyMode = iota
	// TransparencyOn writes use-transparent-background=true.
	TransparencyOn
	// TransparencyPercent writes true and then the percentage.
	TransparencyPercent
)

// Transparency is a parsed --transparency value.
type Transparency struct {
	Mode    TransparencyMode
	Percent int
}

func (t Transparency) String() string {
	switch t.Mode {
	case TransparencyOff:
		return "off"
	case TransparencyOn:
		return "on"
	default:
		return strconv.Itoa(t.Percent) + "%"
	}
}

// ParseTransparency accepts "on", "off" or a multiple of 5 in 0..100.
func ParseTransparency(s string) (Transparency, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on":
		return Transparency{Mode: TransparencyOn}, nil
	case "off":
		return Transparency{Mode: TransparencyOff}, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return Transparency{}, fmt.Errorf("%w: transparency must be 0-100 or 'on'/'off', got %q", ErrInvalidArgument, s)
	}
	if n < 0 || n > 100 || n%5 != 0 {
		return Transparency{}, fmt.Errorf("%w: transparency must be a multiple of 5 between 0 and 100, got %d", ErrInvalidArgument, n)
	}
	return Transparency{Mode: TransparencyPercent, Percent: n}, nil
}

// Request holds every change asked for in one invocation. Nil pointers and
// empty values mean "not requested".
type Request struct {
	Background *string
	Foreground *string
	Default    bool
	Classes    []string

	ListThemes bool
	Theme      *string
	Random     bool

	Transparency *string
	Opaque       bool
	Transparent  bool

	FontSize   *int
	CellHeight *float64
	CellWidth  *float64
	Rows       *int
	Columns    *int

	Print bool
}

// Plan validates req and returns its mutations in application order:
// colors, default preset, classes, theme, transparency, font size, line
// height, character width, rows, columns, print. Nothing is planned if any
// argument is invalid; all invalid arguments are reported together.
func Plan(req Request, preset Preset, tracked []string) ([]Mutation, error) {
	var (
		plan []Mutation
		errs []error
	)

	if req.Background != nil {
		plan = append(plan, SetColor{Channel: color.Background, Token: *req.Background})
	}
	if req.Foreground != nil {
		plan = append(plan, SetColor{Channel: color.Foreground, Token: *req.Foreground})
	}
	if req.Default {
		plan = append(plan, ApplyDefaults{Preset: preset})
	}
	if len(req.Classes) > 0 {
		plan = append(plan, ApplyClasses{Tokens: append([]string(nil), req.Classes...)})
	}

	// Listing wins over applying, applying by reference wins over random.
	switch {
	case req.ListThemes:
		plan = append(plan, ListThemes{})
	case req.Theme != nil:
		plan = append(plan, ApplyTheme{Reference: *req.Theme})
	case req.Random:
		plan = append(plan, RandomTheme{})
	}

	if m, err := planTransparency(req); err != nil {
		errs = append(errs, err)
	} else if m != nil {
		plan = append(plan, m)
	}

	if req.FontSize != nil {
		if *req.FontSize <= 0 {
			errs = append(errs, fmt.Errorf("%w: font size must be positive, got %d", ErrInvalidArgument, *req.FontSize))
		} else {
			plan = append(plan, SetFontSize{Size: *req.FontSize})
		}
	}
	if req.CellHeight != nil {
		if *req.CellHeight <= 0 {
			errs = append(errs, fmt.Errorf("%w: line height must be positive, got %s", ErrInvalidArgument, formatFloat(*req.CellHeight)))
		} else {
			plan = append(plan, SetCellHeight{Scale: *req.CellHeight})
		}
	}
	if req.CellWidth != nil {
		if *req.CellWidth <= 0 {
			errs = append(errs, fmt.Errorf("%w: character width must be positive, got %s", ErrInvalidArgument, formatFloat(*req.CellWidth)))
		} else {
			plan = append(plan, SetCellWidth{Scale: *req.CellWidth})
		}
	}
	if req.Rows != nil {
		if *req.Rows <= 0 {
			errs = append(errs, fmt.Errorf("%w: rows must be positive, got %d", ErrInvalidArgument, *req.Rows))
		} else {
			plan = append(plan, SetRows{Count: *req.Rows})
		}
	}
	if req.Columns != nil {
		if *req.Columns <= 0 {
			errs = append(errs, fmt.Errorf("%w: columns must be positive, got %d", ErrInvalidArgument, *req.Columns))
		} else {
			plan = append(plan, SetColumns{Count: *req.Columns})
		}
	}

	if req.Print {
		plan = append(plan, PrintProfile{Properties: append([]string(nil), tracked...)})
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return plan, nil
}

// planTransparency applies the precedence --opaque, then --transparent, then
// --transparency.
func planTransparency(req Request) (Mutation, error) {
	var parsed *Transparency
	if req.Transparency != nil {
		t, err := ParseTransparency(*req.Transparency)
		if err != nil {
			return nil, err
		}
		parsed = &t
	}

	switch {
	case req.Opaque:
		return SetTransparency{Transparency: Transparency{Mode: TransparencyOff}}, nil
	case req.Transparent:
		return SetTransparency{Transparency: Transparency{Mode: TransparencyOn}}, nil
	case parsed != nil:
		return SetTransparency{Transparency: *parsed}, nil
	}
	return nil, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
