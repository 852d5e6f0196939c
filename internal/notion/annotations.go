package notion

// Color is a Notion text color.
type Color string

const (
	ColorDefault          Color = "default"
	ColorGray             Color = "gray"
	ColorBrown            Color = "brown"
	ColorOrange           Color = "orange"
	ColorYellow           Color = "yellow"
	ColorGreen            Color = "green"
	ColorBlue             Color = "blue"
	ColorPurple           Color = "purple"
	ColorPink             Color = "pink"
	ColorRed              Color = "red"
	ColorGrayBackground   Color = "gray_background"
	ColorBrownBackground  Color = "brown_background"
	ColorOrangeBackground Color = "orange_background"
	ColorYellowBackground Color = "yellow_background"
	ColorGreenBackground  Color = "green_background"
	ColorBlueBackground   Color = "blue_background"
	ColorPurpleBackground Color = "purple_background"
	ColorPinkBackground   Color = "pink_background"
	ColorRedBackground    Color = "red_background"
)

var validColors = map[Color]bool{
	ColorDefault: true, ColorGray: true, ColorBrown: true, ColorOrange: true,
	ColorYellow: true, ColorGreen: true, ColorBlue: true, ColorPurple: true,
	ColorPink: true, ColorRed: true,
	ColorGrayBackground: true, ColorBrownBackground: true, ColorOrangeBackground: true,
	ColorYellowBackground: true, ColorGreenBackground: true, ColorBlueBackground: true,
	ColorPurpleBackground: true, ColorPinkBackground: true, ColorRedBackground: true,
}

// Valid reports whether c is one of Notion's colors.
func (c Color) Valid() bool { return validColors[c] }

// Annotations is the styling applied to one rich text run.
//
// It is a value type: assigning or calling Copy yields an independent
// annotation set. The zero value has every flag off and the default color.
// Each setter reports whether it changed the state, which is what the
// inline converter uses to decide when a text run must be flushed.
type Annotations struct {
	bold          bool
	italic        bool
	strikethrough bool
	underline     bool
	code          bool
	equation      bool
	color         Color
}

func (a Annotations) Bold() bool          { return a.bold }
func (a Annotations) Italic() bool        { return a.italic }
func (a Annotations) Strikethrough() bool { return a.strikethrough }
func (a Annotations) Underline() bool     { return a.underline }
func (a Annotations) Code() bool          { return a.code }
func (a Annotations) Equation() bool      { return a.equation }

// Color returns the text color, ColorDefault when unset.
func (a Annotations) Color() Color {
	if a.color == "" {
		return ColorDefault
	}
	return a.color
}

func (a *Annotations) SetBold(v bool) bool {
	changed := a.bold != v
	a.bold = v
	return changed
}

func (a *Annotations) SetItalic(v bool) bool {
	changed := a.italic != v
	a.italic = v
	return changed
}

func (a *Annotations) SetStrikethrough(v bool) bool {
	changed := a.strikethrough != v
	a.strikethrough = v
	return changed
}

func (a *Annotations) SetUnderline(v bool) bool {
	changed := a.underline != v
	a.underline = v
	return changed
}

func (a *Annotations) SetCode(v bool) bool {
	changed := a.code != v
	a.code = v
	return changed
}

func (a *Annotations) SetEquation(v bool) bool {
	changed := a.equation != v
	a.equation = v
	return changed
}

// SetColor sets the text color. An empty color means ColorDefault.
func (a *Annotations) SetColor(c Color) bool {
	if c == "" {
		c = ColorDefault
	}
	changed := a.Color() != c
	a.color = c
	return changed
}

// Copy returns an independent copy.
func (a Annotations) Copy() Annotations { return a }

// Equal reports structural equality; an unset color equals ColorDefault.
func (a Annotations) Equal(b Annotations) bool {
	a.color, b.color = a.Color(), b.Color()
	return a == b
}

// IsDefault reports whether no styling is applied.
func (a Annotations) IsDefault() bool {
	return a.Equal(Annotations{})
}

// ToWire returns the API representation. The equation flag is internal and
// is not part of Notion's annotation object.
func (a Annotations) ToWire() WireAnnotations {
	return WireAnnotations{
		Bold:          a.bold,
		Italic:        a.italic,
		Strikethrough: a.strikethrough,
		Underline:     a.underline,
		Code:          a.code,
		Color:         a.Color(),
	}
}
