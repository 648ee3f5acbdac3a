package layer

import "github.com/go-sheen/sheen/pkg/graphics"

// Text layer property table, built once at type definition time.
var (
	textRegistry = NewRegistry()

	// TextBackgroundColor is natively animatable and serves as the
	// reference property for bridged text properties.
	TextBackgroundColor = textRegistry.Define("backgroundColor", Definition{
		Animatable:    true,
		AffectsRender: true,
	})

	// TextForegroundColor is the bridged text color. It starts unset.
	TextForegroundColor = textRegistry.Define("foregroundColor", Definition{
		AffectsRender: true,
	})

	// TextString is the displayed text. Not animatable.
	TextString = textRegistry.Define("string", Definition{})
)

// TextLayer renders a run of text whose foreground color animates
// implicitly, exactly like the natively animatable background color.
//
// The foreground color is a bridged property: it has no native animation
// support, so a [Bridge] clones the background color's implicit timing and
// retargets it. The per-frame hook is a pass-through; no geometry is derived
// from a color.
type TextLayer struct {
	*Layer
	foreground *Bridge
}

// NewTextLayer creates a text layer with an unset foreground color.
func NewTextLayer() *TextLayer {
	l := New(textRegistry)
	t := &TextLayer{Layer: l}
	t.foreground = NewBridge(l, TextForegroundColor, TextBackgroundColor)
	return t
}

// Text returns the displayed string.
func (t *TextLayer) Text() string {
	s, _ := t.Value(TextString).(string)
	return s
}

// SetText sets the displayed string. Text never animates.
func (t *TextLayer) SetText(s string) {
	t.Set(TextString, s)
}

// BackgroundColor returns the model background color. The second result is
// false when the color is unset, which is distinct from an opaque black.
func (t *TextLayer) BackgroundColor() (graphics.Color, bool) {
	c, ok := t.Value(TextBackgroundColor).(graphics.Color)
	return c, ok
}

// SetBackgroundColor sets the background color, animating inside an open
// transaction.
func (t *TextLayer) SetBackgroundColor(c graphics.Color) {
	t.Set(TextBackgroundColor, c)
}

// ForegroundColor returns the model foreground color. The second result is
// false when the color is unset.
func (t *TextLayer) ForegroundColor() (graphics.Color, bool) {
	c, ok := t.Value(TextForegroundColor).(graphics.Color)
	return c, ok
}

// SetForegroundColor sets the foreground color. Inside an open transaction
// the change animates with the same timing the background color would use.
func (t *TextLayer) SetForegroundColor(c graphics.Color) {
	t.Set(TextForegroundColor, c)
}

// ClearForegroundColor unsets the foreground color. The change applies
// instantly; there is no meaningful interpolation toward "no value".
func (t *TextLayer) ClearForegroundColor() {
	t.setModel(TextForegroundColor, nil)
}

// PresentationForegroundColor returns the currently rendered foreground
// color, interpolated mid-animation. The second result is false when the
// color is unset.
func (t *TextLayer) PresentationForegroundColor() (graphics.Color, bool) {
	c, ok := t.PresentationValue(TextForegroundColor).(graphics.Color)
	return c, ok
}

// OnForegroundFrame installs a callback invoked once per stepped frame with
// the interpolated foreground color while it animates.
func (t *TextLayer) OnForegroundFrame(fn func(graphics.Color)) {
	if fn == nil {
		t.foreground.SetCallback(nil)
		return
	}
	t.foreground.SetCallback(func(v any) {
		if c, ok := v.(graphics.Color); ok {
			fn(c)
		}
	})
}
