package components

import (
	"github.com/charmbracelet/lipgloss"
)

// ColourSet is a semantic colour group. OnBase is the text colour that reads on
// top of Base; Muted is a quieter variant of Base.
type ColourSet struct {
	Base   lipgloss.AdaptiveColor
	OnBase lipgloss.AdaptiveColor
	Muted  lipgloss.AdaptiveColor
}

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary ColourSet
	Surface ColourSet
	Neutral ColourSet
	Danger  ColourSet
}

// PaletteSlot selects a ColourSet from a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSurface PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteNeutral PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
	PaletteDanger  PaletteSlot = func(p Palette) ColourSet { return p.Danger }
)

// ShadeRamp is an ordered run of colours from lightest to darkest. Skeletons
// step through it to animate their pulse.
type ShadeRamp []lipgloss.AdaptiveColor

// At returns the shade at i, wrapping around the ramp. An empty ramp yields
// the zero colour.
func (r ShadeRamp) At(i int) lipgloss.AdaptiveColor {
	if len(r) == 0 {
		return lipgloss.AdaptiveColor{}
	}
	i %= len(r)
	if i < 0 {
		i += len(r)
	}
	return r[i]
}

// SpacingSize enumerates spacing tokens.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
)

const spacingSizeCount = int(SpacingSizeLarge) + 1

type spacingTable [spacingSizeCount]int

// BorderVariant names a border from the theme's BorderSet.
type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
)

// BorderSet groups reusable border definitions.
type BorderSet struct {
	Normal  lipgloss.Border
	Rounded lipgloss.Border
}

// TypographyVariant names a typography preset.
type TypographyVariant int

const (
	TypographyVariantBody TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantEmphasis
	TypographyVariantMuted
)

// TypographyScale holds the typography presets.
type TypographyScale struct {
	Body     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Emphasis lipgloss.Style
	Muted    lipgloss.Style
}

// VariantRegistry maps component variants to their styling strategies.
type VariantRegistry struct {
	strategies map[interface{}]StyleStrategy
}

// NewVariantRegistry creates an empty registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{strategies: make(map[interface{}]StyleStrategy)}
}

// Register maps variant to strategy, replacing any earlier mapping.
func (vr *VariantRegistry) Register(variant interface{}, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get returns the strategy for variant, or nil.
func (vr *VariantRegistry) Get(variant interface{}) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// Theme is an immutable set of styling data. Build a new Theme instead of
// mutating one that is in use.
type Theme struct {
	Name       string
	Palette    Palette
	Skeleton   ShadeRamp
	Borders    BorderSet
	Spacing    spacingTable
	Typography TypographyScale
	Variants   *VariantRegistry
}

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// DefaultTheme returns the light theme.
func DefaultTheme() Theme {
	palette := Palette{
		Primary: ColourSet{
			Base:   ac("#0f172a", "#f8fafc"),
			OnBase: ac("#f8fafc", "#0f172a"),
			Muted:  ac("#334155", "#cbd5e1"),
		},
		Surface: ColourSet{
			Base:   ac("#ffffff", "#ffffff"),
			OnBase: ac("#0f172a", "#0f172a"),
			Muted:  ac("#e2e8f0", "#e2e8f0"),
		},
		Neutral: ColourSet{
			Base:   ac("#64748b", "#64748b"),
			OnBase: ac("#f1f5f9", "#f1f5f9"),
			Muted:  ac("#94a3b8", "#94a3b8"),
		},
		Danger: ColourSet{
			Base:   ac("#ef4444", "#f87171"),
			OnBase: ac("#fef2f2", "#450a0a"),
			Muted:  ac("#dc2626", "#b91c1c"),
		},
	}

	return newTheme("light", palette, ShadeRamp{
		ac("#f1f5f9", "#f1f5f9"),
		ac("#e2e8f0", "#e2e8f0"),
		ac("#cbd5e1", "#cbd5e1"),
		ac("#e2e8f0", "#e2e8f0"),
	})
}

// LightTheme returns the light theme.
func LightTheme() Theme {
	return DefaultTheme()
}

// DarkTheme returns the dark theme.
func DarkTheme() Theme {
	palette := Palette{
		Primary: ColourSet{
			Base:   ac("#f8fafc", "#f8fafc"),
			OnBase: ac("#0f172a", "#0f172a"),
			Muted:  ac("#cbd5e1", "#cbd5e1"),
		},
		Surface: ColourSet{
			Base:   ac("#0f172a", "#020617"),
			OnBase: ac("#f8fafc", "#e2e8f0"),
			Muted:  ac("#1e293b", "#1e293b"),
		},
		Neutral: ColourSet{
			Base:   ac("#94a3b8", "#94a3b8"),
			OnBase: ac("#0f172a", "#0f172a"),
			Muted:  ac("#475569", "#475569"),
		},
		Danger: ColourSet{
			Base:   ac("#f87171", "#f87171"),
			OnBase: ac("#450a0a", "#450a0a"),
			Muted:  ac("#b91c1c", "#b91c1c"),
		},
	}

	return newTheme("dark", palette, ShadeRamp{
		ac("#1e293b", "#1e293b"),
		ac("#334155", "#334155"),
		ac("#475569", "#475569"),
		ac("#334155", "#334155"),
	})
}

func newTheme(name string, palette Palette, skeleton ShadeRamp) Theme {
	variants := NewVariantRegistry()
	registerButtonVariants(variants)

	return Theme{
		Name:     name,
		Palette:  palette,
		Skeleton: skeleton,
		Borders: BorderSet{
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
		},
		Spacing: spacingTable{
			SpacingSizeNone:       0,
			SpacingSizeExtraSmall: 1,
			SpacingSizeSmall:      1,
			SpacingSizeMedium:     2,
			SpacingSizeLarge:      3,
		},
		Typography: defaultTypography(palette),
		Variants:   variants,
	}
}

func registerButtonVariants(registry *VariantRegistry) {
	registry.Register(ButtonVariantPrimary, NewCompositeStrategy(
		Background(PalettePrimary),
		PaddingX(SpacingSizeSmall),
	))
	registry.Register(ButtonVariantOutline, NewCompositeStrategy(
		Foreground(PalettePrimary),
		PaddingX(SpacingSizeSmall),
	))
	registry.Register(ButtonVariantGhost, NewCompositeStrategy(
		Foreground(PaletteNeutral),
		PaddingX(SpacingSizeSmall),
	))
}

func defaultTypography(p Palette) TypographyScale {
	body := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Body:     body,
		Title:    body.Bold(true).Foreground(p.Primary.Base),
		Subtitle: body.Foreground(p.Neutral.Base),
		Emphasis: body.Bold(true),
		Muted:    body.Foreground(p.Neutral.Muted).Faint(true),
	}
}

// BorderForVariant returns the border for variant; BorderVariantNone yields no border.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantRounded:
		return theme.Borders.Rounded
	default:
		return lipgloss.Border{}
	}
}

// PaddingValue returns the spacing for size, falling back to SpacingSizeMedium.
func PaddingValue(theme Theme, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(theme.Spacing) {
		index = int(SpacingSizeMedium)
	}
	return theme.Spacing[index]
}

// TypographyStyle returns the preset for variant.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantSubtitle:
		return typo.Subtitle
	case TypographyVariantEmphasis:
		return typo.Emphasis
	case TypographyVariantMuted:
		return typo.Muted
	default:
		return typo.Body
	}
}

// Background sets a semantic background colour with its matching foreground.
//
//	NewButton("Save").WithAppliers(Background(PalettePrimary))
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground sets a semantic text colour, leaving the background alone.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// Border applies a border from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant))
	}
}

func Padding(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Padding(PaddingValue(theme, size))
	}
}

func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := PaddingValue(theme, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

// Typography layers a typography preset under the existing style.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}
