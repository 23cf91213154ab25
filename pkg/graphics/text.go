package graphics

import (
	stderrors "errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/cyypherus/salt/pkg/errors"
)

const (
	// defaultFontSize is used when no font size is specified.
	defaultFontSize = 12

	// widthFactor approximates glyph advance as a fraction of the font size.
	widthFactor = 0.6

	// heightFactor approximates line height as a multiple of the font size.
	heightFactor = 1.2
)

// EstimateTextWidth returns the approximate width of text at the given font
// size. The estimate is deterministic and font-independent: byte length times
// 0.6 of the font size. Scene hit testing relies on this exact formula, so it
// must stay independent of any registered font data.
func EstimateTextWidth(text string, fontSize float64) float64 {
	return float64(len(text)) * fontSize * widthFactor
}

// EstimateTextHeight returns the approximate height of a single line of text
// at the given font size.
func EstimateTextHeight(fontSize float64) float64 {
	return fontSize * heightFactor
}

// TextStyle describes how text should be measured and rendered.
type TextStyle struct {
	Color      Color
	FontFamily string
	FontSize   float64
}

// TextLine represents a single laid-out line of text.
type TextLine struct {
	Text  string
	Width float64
}

// TextLayout contains measured text metrics.
type TextLayout struct {
	Text       string
	Style      TextStyle
	Size       Size
	Ascent     float64
	Descent    float64
	LineHeight float64
	Lines      []TextLine
}

// faceKey identifies a sized face in the manager's cache.
type faceKey struct {
	family string
	size   float64
}

// FontManager manages font registration and measurement for text layout.
//
// Measurement through a registered face is an optional refinement used by
// layout glue; it never feeds scene hit testing, which uses the deterministic
// estimate above.
type FontManager struct {
	mu          sync.RWMutex
	fonts       map[string]*opentype.Font
	faces       map[faceKey]font.Face
	defaultName string
}

var (
	defaultFontManager     *FontManager
	defaultFontManagerErr  error
	defaultFontManagerOnce sync.Once
)

// NewFontManager creates an empty font manager.
func NewFontManager() *FontManager {
	return &FontManager{
		fonts: make(map[string]*opentype.Font),
		faces: make(map[faceKey]font.Face),
	}
}

// DefaultFontManagerErr returns a shared font manager with the bundled Go
// Regular face registered under "Go". It returns both the manager and any
// error that occurred during initialization.
func DefaultFontManagerErr() (*FontManager, error) {
	defaultFontManagerOnce.Do(func() {
		manager := NewFontManager()
		if err := manager.RegisterFont("Go", goregular.TTF); err != nil {
			defaultFontManagerErr = err
			errors.Report(&errors.SaltError{
				Op:   "graphics.DefaultFontManager",
				Kind: errors.KindInit,
				Err:  err,
			})
			return
		}
		manager.defaultName = "Go"
		defaultFontManager = manager
	})
	return defaultFontManager, defaultFontManagerErr
}

// DefaultFontManager returns a shared font manager with a bundled font.
// Returns nil if initialization failed.
func DefaultFontManager() *FontManager {
	manager, _ := DefaultFontManagerErr()
	return manager
}

// RegisterFont registers a new font family from TrueType/OpenType data.
func (m *FontManager) RegisterFont(name string, data []byte) error {
	if name == "" {
		return stderrors.New("font name required")
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("failed to parse font %q: %w", name, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fonts[name] = parsed
	if m.defaultName == "" {
		m.defaultName = name
	}
	return nil
}

// Face resolves a sized font face for the given family. Faces are cached per
// (family, size) pair.
func (m *FontManager) Face(family string, size float64) (font.Face, error) {
	if size <= 0 {
		size = defaultFontSize
	}
	key := faceKey{family: family, size: size}

	m.mu.RLock()
	face, ok := m.faces[key]
	parsed := m.fonts[family]
	m.mu.RUnlock()
	if ok {
		return face, nil
	}
	if parsed == nil {
		return nil, fmt.Errorf("font family %q not registered", family)
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create face for %q: %w", family, err)
	}

	m.mu.Lock()
	if existing, ok := m.faces[key]; ok {
		face = existing
	} else {
		m.faces[key] = face
	}
	m.mu.Unlock()
	return face, nil
}

// MeasureString measures text width using a registered face, falling back to
// the deterministic estimate when the family is unknown.
func (m *FontManager) MeasureString(family string, size float64, text string) float64 {
	if m != nil {
		if face, err := m.Face(family, size); err == nil {
			return float64(font.MeasureString(face, text)) / 64
		}
	}
	return EstimateTextWidth(text, size)
}

// LayoutText measures the given text without width constraints.
func LayoutText(text string, style TextStyle, manager *FontManager) *TextLayout {
	return LayoutTextWithConstraints(text, style, manager, 0)
}

// LayoutTextWithConstraints measures and wraps text within the given width.
// A maxWidth of 0 disables wrapping.
func LayoutTextWithConstraints(text string, style TextStyle, manager *FontManager, maxWidth float64) *TextLayout {
	size := style.FontSize
	if size <= 0 {
		size = defaultFontSize
		style.FontSize = size
	}

	ascent := size
	descent := size * (heightFactor - 1)
	if manager != nil {
		if face, err := manager.Face(style.FontFamily, size); err == nil {
			metrics := face.Metrics()
			ascent = float64(metrics.Ascent) / 64
			descent = float64(metrics.Descent) / 64
		}
	}
	lineHeight := ascent + descent
	if lineHeight == 0 {
		lineHeight = EstimateTextHeight(size)
	}

	measure := func(s string) float64 {
		return manager.MeasureString(style.FontFamily, size, s)
	}
	lines := layoutLines(text, maxWidth, measure)
	maxLineWidth := 0.0
	for _, line := range lines {
		maxLineWidth = math.Max(maxLineWidth, line.Width)
	}
	if len(lines) == 0 {
		lines = []TextLine{{Text: "", Width: 0}}
	}
	return &TextLayout{
		Text:       text,
		Style:      style,
		Size:       Size{Width: maxLineWidth, Height: lineHeight * float64(len(lines))},
		Ascent:     ascent,
		Descent:    descent,
		LineHeight: lineHeight,
		Lines:      lines,
	}
}

func layoutLines(text string, maxWidth float64, measure func(string) float64) []TextLine {
	if maxWidth < 0 || math.IsInf(maxWidth, 0) {
		maxWidth = 0
	}
	paragraphs := strings.Split(text, "\n")
	lines := make([]TextLine, 0, len(paragraphs))
	for _, paragraph := range paragraphs {
		if paragraph == "" {
			lines = append(lines, TextLine{})
			continue
		}
		if maxWidth == 0 {
			lines = append(lines, TextLine{Text: paragraph, Width: measure(paragraph)})
			continue
		}
		for _, line := range wrapParagraph(paragraph, maxWidth, measure) {
			lines = append(lines, TextLine{Text: line, Width: measure(line)})
		}
	}
	return lines
}

func wrapParagraph(text string, maxWidth float64, measure func(string) float64) []string {
	var lines []string
	start := 0
	for start < len(text) {
		lastBreak := -1
		lastFit := -1
		for i := start; i < len(text); {
			r, size := utf8.DecodeRuneInString(text[i:])
			next := i + size
			if measure(text[start:next]) > maxWidth {
				// A space overflowing the line is still a valid break point;
				// it gets trimmed from the emitted line either way.
				if unicode.IsSpace(r) {
					lastBreak = next
				}
				break
			}
			lastFit = next
			if unicode.IsSpace(r) {
				lastBreak = next
			}
			i = next
		}
		if lastFit == -1 {
			// Not even one rune fits; emit it anyway to guarantee progress.
			_, size := utf8.DecodeRuneInString(text[start:])
			lastFit = start + size
		}
		cut := lastFit
		if lastFit < len(text) && lastBreak > start && lastBreak < lastFit {
			cut = lastBreak
		}
		line := strings.TrimRightFunc(text[start:cut], unicode.IsSpace)
		lines = append(lines, line)
		start = cut
		for start < len(text) {
			r, size := utf8.DecodeRuneInString(text[start:])
			if !unicode.IsSpace(r) {
				break
			}
			start += size
		}
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}
