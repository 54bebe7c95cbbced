package graphics

import (
	stderrors "errors"
	"fmt"
	"sync"

	"github.com/go-drift/visualkit/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

const (
	// DefaultFontFamily is always registered by NewFontManager.
	DefaultFontFamily = "Go"
	// defaultFontSize is used when no font size is specified.
	defaultFontSize = 11
	// fontDPI maps FontSize one-to-one onto pixels.
	fontDPI = 72
)

// FontWeight represents a numeric font weight.
type FontWeight int

const (
	FontWeightNormal FontWeight = 400
	FontWeightBold   FontWeight = 700
)

// String returns a human-readable representation of the font weight.
func (w FontWeight) String() string {
	switch w {
	case FontWeightNormal:
		return "normal"
	case FontWeightBold:
		return "bold"
	default:
		return fmt.Sprintf("FontWeight(%d)", int(w))
	}
}

// TextStyle describes how text should be rendered.
type TextStyle struct {
	Color      Color
	FontFamily string
	FontSize   float64
	FontWeight FontWeight
}

// WithSize returns a copy of the TextStyle with the specified size.
func (s TextStyle) WithSize(size float64) TextStyle {
	s.FontSize = size
	return s
}

type faceKey struct {
	family string
	bold   bool
	size   float64
}

// FontManager manages font registration and face caching for text
// measurement and raster drawing. It is safe for concurrent use.
type FontManager struct {
	mu       sync.RWMutex
	families map[string]map[bool]*sfnt.Font
	faces    map[faceKey]font.Face
}

var (
	defaultFontManager     *FontManager
	defaultFontManagerErr  error
	defaultFontManagerOnce sync.Once
)

// NewFontManager creates a font manager with the bundled Go fonts registered
// under DefaultFontFamily.
func NewFontManager() (*FontManager, error) {
	m := &FontManager{
		families: make(map[string]map[bool]*sfnt.Font),
		faces:    make(map[faceKey]font.Face),
	}
	if err := m.RegisterFont(DefaultFontFamily, FontWeightNormal, goregular.TTF); err != nil {
		return nil, err
	}
	if err := m.RegisterFont(DefaultFontFamily, FontWeightBold, gobold.TTF); err != nil {
		return nil, err
	}
	return m, nil
}

// DefaultFontManagerErr returns a shared font manager with the bundled fonts.
// It returns both the manager and any error that occurred during initialization.
func DefaultFontManagerErr() (*FontManager, error) {
	defaultFontManagerOnce.Do(func() {
		manager, err := NewFontManager()
		if err != nil {
			defaultFontManagerErr = err
			errors.Report(&errors.VisualError{
				Op:   "graphics.DefaultFontManager",
				Kind: errors.KindRender,
				Err:  err,
			})
			return
		}
		defaultFontManager = manager
	})
	return defaultFontManager, defaultFontManagerErr
}

// DefaultFontManager returns the shared font manager, or nil on error.
func DefaultFontManager() *FontManager {
	manager, _ := DefaultFontManagerErr()
	return manager
}

// RegisterFont registers TrueType/OpenType data under a family name. Weights
// of 600 and above register the bold variant.
func (m *FontManager) RegisterFont(family string, weight FontWeight, data []byte) error {
	if family == "" {
		return stderrors.New("font family required")
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("parse font %q: %w", family, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	variants := m.families[family]
	if variants == nil {
		variants = make(map[bool]*sfnt.Font)
		m.families[family] = variants
	}
	bold := weight >= 600
	variants[bold] = f
	for key := range m.faces {
		if key.family == family && key.bold == bold {
			delete(m.faces, key)
		}
	}
	return nil
}

// HasFamily reports whether family has at least one registered variant.
func (m *FontManager) HasFamily(family string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.families[family]) > 0
}

// Face returns a cached face for style. Unknown families fall back to
// DefaultFontFamily and missing bold variants fall back to regular.
func (m *FontManager) Face(style TextStyle) (font.Face, error) {
	key := m.resolveKey(style)

	m.mu.RLock()
	face, ok := m.faces[key]
	m.mu.RUnlock()
	if ok {
		return face, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if face, ok := m.faces[key]; ok {
		return face, nil
	}
	f := m.families[key.family][key.bold]
	if f == nil {
		return nil, fmt.Errorf("no font registered for family %q", key.family)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    key.size,
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	m.faces[key] = face
	return face, nil
}

func (m *FontManager) resolveKey(style TextStyle) faceKey {
	m.mu.RLock()
	defer m.mu.RUnlock()
	family := style.FontFamily
	if len(m.families[family]) == 0 {
		family = DefaultFontFamily
	}
	bold := style.FontWeight >= 600
	if m.families[family][bold] == nil {
		bold = !bold
	}
	size := style.FontSize
	if size <= 0 {
		size = defaultFontSize
	}
	return faceKey{family: family, bold: bold, size: size}
}

// MeasureText returns the advance width and line height of text.
func (m *FontManager) MeasureText(text string, style TextStyle) Size {
	face, err := m.Face(style)
	if err != nil {
		errors.Report(&errors.VisualError{Op: "graphics.FontManager.MeasureText", Kind: errors.KindRender, Err: err})
		return Size{}
	}
	metrics := face.Metrics()
	return Size{
		Width:  fixedToFloat(font.MeasureString(face, text)),
		Height: fixedToFloat(metrics.Ascent + metrics.Descent),
	}
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
