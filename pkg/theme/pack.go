package theme

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/visualkit/pkg/errors"
	"github.com/go-drift/visualkit/pkg/graphics"
)

// PackMajor is the only theme pack major version this package reads.
const PackMajor = "v1"

// Pack is a set of theme definitions loaded from YAML:
//
//	version: v1.2.0
//	themes:
//	  - id: midnight
//	    base: visual
//	    control: { enabled: "#2B2B2B", hover: "#3C3C3C" }
//	    border:  { color: "#444444", hover: "#FF8800" }
//	    font:    { family: "Go", size: 9, fore: "#FFFFFF" }
//
// Colors are #RRGGBB or #AARRGGBB. Fields left out keep the base theme's
// value; themes without a base start from the visual theme.
type Pack struct {
	Version string      `yaml:"version"`
	Themes  []PackTheme `yaml:"themes"`
}

// PackTheme is one theme entry of a Pack.
type PackTheme struct {
	ID          ID             `yaml:"id"`
	Base        ID             `yaml:"base"`
	Control     *packControl   `yaml:"control"`
	Border      *packBorder    `yaml:"border"`
	Font        *packFont      `yaml:"font"`
	Progress    *packProgress  `yaml:"progress"`
	Checkmark   *packCheckmark `yaml:"checkmark"`
	Tab         *packTab       `yaml:"tab"`
	Backgrounds []hexColor     `yaml:"backgrounds"`
}

type packControl struct {
	Enabled  *hexColor `yaml:"enabled"`
	Hover    *hexColor `yaml:"hover"`
	Pressed  *hexColor `yaml:"pressed"`
	Disabled *hexColor `yaml:"disabled"`
	Line     *hexColor `yaml:"line"`
	Shadow   *hexColor `yaml:"shadow"`
}

type packBorder struct {
	Color *hexColor `yaml:"color"`
	Hover *hexColor `yaml:"hover"`
}

type packFont struct {
	Family       string    `yaml:"family"`
	Size         float64   `yaml:"size"`
	Fore         *hexColor `yaml:"fore"`
	ForeDisabled *hexColor `yaml:"foreDisabled"`
	ForeSelected *hexColor `yaml:"foreSelected"`
}

type packProgress struct {
	Progress   *hexColor `yaml:"progress"`
	Back       *hexColor `yaml:"back"`
	Disabled   *hexColor `yaml:"disabled"`
	Hatch      *hexColor `yaml:"hatch"`
	ForeCircle *hexColor `yaml:"foreCircle"`
	BackCircle *hexColor `yaml:"backCircle"`
}

type packCheckmark struct {
	Check       *hexColor `yaml:"check"`
	BoxEnabled  *hexColor `yaml:"boxEnabled"`
	BoxDisabled *hexColor `yaml:"boxDisabled"`
}

type packTab struct {
	Enabled  *hexColor `yaml:"enabled"`
	Hover    *hexColor `yaml:"hover"`
	Selected *hexColor `yaml:"selected"`
	Menu     *hexColor `yaml:"menu"`
}

// hexColor decodes a YAML string scalar with graphics.ParseHex.
type hexColor graphics.Color

func (h *hexColor) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	c, err := graphics.ParseHex(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*h = hexColor(c)
	return nil
}

func setColor(dst *graphics.Color, src *hexColor) {
	if src != nil {
		*dst = graphics.Color(*src)
	}
}

// LoadPack decodes and validates a pack.
func LoadPack(r io.Reader) (*Pack, error) {
	const op = "theme.LoadPack"
	var p Pack
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, errors.Invalid(op, stderrors.New("empty theme pack"))
		}
		return nil, errors.Invalid(op, err)
	}
	if err := p.validate(); err != nil {
		return nil, errors.Invalid(op, err)
	}
	return &p, nil
}

// LoadPackFile reads a pack from path.
func LoadPackFile(path string) (*Pack, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadPack(f)
}

func (p *Pack) validate() error {
	if !semver.IsValid(p.Version) {
		return fmt.Errorf("%w: version %q is not a semantic version", errors.ErrInvalidArgument, p.Version)
	}
	if major := semver.Major(p.Version); major != PackMajor {
		return fmt.Errorf("%w: version %s unsupported, want %s.x", errors.ErrInvalidArgument, p.Version, PackMajor)
	}
	seen := make(map[ID]bool, len(p.Themes))
	for i, t := range p.Themes {
		if t.ID == "" {
			return fmt.Errorf("%w: theme %d has no id", errors.ErrInvalidArgument, i)
		}
		if seen[t.ID] {
			return fmt.Errorf("%w: duplicate theme %q", errors.ErrInvalidArgument, t.ID)
		}
		seen[t.ID] = true
		if t.Font != nil && t.Font.Size < 0 {
			return fmt.Errorf("%w: theme %q font size %v", errors.ErrOutOfRange, t.ID, t.Font.Size)
		}
	}
	return nil
}

// Register resolves every theme against reg and registers it, in file order,
// so later themes may use earlier ones as their base. Nothing is registered
// if any base is unknown.
func (p *Pack) Register(reg *Registry) error {
	const op = "theme.Pack.Register"
	built := make(map[ID]Style, len(p.Themes))
	styles := make([]Style, 0, len(p.Themes))
	for _, t := range p.Themes {
		base := t.Base
		if base == "" {
			base = Visual
		}
		var s Style
		if b, ok := built[base]; ok {
			s = b.Clone()
		} else {
			resolved, err := reg.Resolve(base)
			if err != nil {
				return errors.Invalid(op, fmt.Errorf("theme %q base: %w", t.ID, err))
			}
			s = resolved
		}
		t.apply(&s)
		s.ID = t.ID
		built[t.ID] = s
		styles = append(styles, s)
	}
	for _, s := range styles {
		if err := reg.Register(s.ID, func() Style { return s.Clone() }); err != nil {
			return err
		}
	}
	return nil
}

func (t PackTheme) apply(s *Style) {
	if c := t.Control; c != nil {
		setColor(&s.Control.Enabled, c.Enabled)
		setColor(&s.Control.Hover, c.Hover)
		setColor(&s.Control.Pressed, c.Pressed)
		setColor(&s.Control.Disabled, c.Disabled)
		setColor(&s.Control.Line, c.Line)
		setColor(&s.Control.Shadow, c.Shadow)
	}
	if len(t.Backgrounds) > 0 {
		s.Control.Backgrounds = make([]graphics.Color, len(t.Backgrounds))
		for i, c := range t.Backgrounds {
			s.Control.Backgrounds[i] = graphics.Color(c)
		}
	}
	if b := t.Border; b != nil {
		setColor(&s.Border.Color, b.Color)
		setColor(&s.Border.HoverColor, b.Hover)
	}
	if f := t.Font; f != nil {
		if f.Family != "" {
			s.Font.Family = f.Family
		}
		if f.Size > 0 {
			s.Font.Size = f.Size
		}
		setColor(&s.Font.ForeColor, f.Fore)
		setColor(&s.Font.ForeColorDisabled, f.ForeDisabled)
		setColor(&s.Font.ForeColorSelected, f.ForeSelected)
	}
	if p := t.Progress; p != nil {
		setColor(&s.Progress.Progress, p.Progress)
		setColor(&s.Progress.BackProgress, p.Back)
		setColor(&s.Progress.ProgressDisabled, p.Disabled)
		setColor(&s.Progress.Hatch, p.Hatch)
		setColor(&s.Progress.ForeCircle, p.ForeCircle)
		setColor(&s.Progress.BackCircle, p.BackCircle)
	}
	if c := t.Checkmark; c != nil {
		setColor(&s.Checkmark.CheckColor, c.Check)
		setColor(&s.Checkmark.BoxEnabled, c.BoxEnabled)
		setColor(&s.Checkmark.BoxDisabled, c.BoxDisabled)
	}
	if tb := t.Tab; tb != nil {
		setColor(&s.Tab.Enabled, tb.Enabled)
		setColor(&s.Tab.Hover, tb.Hover)
		setColor(&s.Tab.Selected, tb.Selected)
		setColor(&s.Tab.Menu, tb.Menu)
	}
}
