package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	assert.Equal(t, "light", theme.Name)
	assert.Equal(t, "#0f172a", theme.Palette.Primary.Base.Light)
	assert.Equal(t, lipgloss.RoundedBorder(), theme.Borders.Rounded)
	assert.Equal(t, 1, PaddingValue(theme, SpacingSizeSmall))
	assert.True(t, theme.Typography.Title.GetBold(), "title typography should be bold")
	assert.NotNil(t, theme.Variants.Get(ButtonVariantOutline))
	assert.Len(t, theme.Skeleton, 4)
}

func TestDarkTheme(t *testing.T) {
	light := DefaultTheme()
	dark := DarkTheme()

	assert.Equal(t, "dark", dark.Name)
	assert.NotEqual(t, light.Palette.Surface.Base, dark.Palette.Surface.Base)
	assert.NotEqual(t, light.Skeleton, dark.Skeleton)
	assert.NotSame(t, light.Variants, dark.Variants, "themes must not share registries")
}

func TestPaddingValueFallsBackToMedium(t *testing.T) {
	theme := DefaultTheme()
	assert.Equal(t, PaddingValue(theme, SpacingSizeMedium), PaddingValue(theme, SpacingSize(99)))
	assert.Equal(t, PaddingValue(theme, SpacingSizeMedium), PaddingValue(theme, SpacingSize(-1)))
}

func TestBorderForVariant(t *testing.T) {
	theme := DefaultTheme()
	assert.Equal(t, lipgloss.NormalBorder(), BorderForVariant(theme, BorderVariantNormal))
	assert.Equal(t, lipgloss.Border{}, BorderForVariant(theme, BorderVariantNone))
}

func TestShadeRampAt(t *testing.T) {
	ramp := ShadeRamp{ac("#1", "#1"), ac("#2", "#2")}

	assert.Equal(t, "#1", ramp.At(0).Light)
	assert.Equal(t, "#2", ramp.At(1).Light)
	assert.Equal(t, "#1", ramp.At(2).Light)
	assert.Equal(t, "#2", ramp.At(-1).Light)
	assert.Equal(t, lipgloss.AdaptiveColor{}, ShadeRamp(nil).At(3))
}

func TestVariantRegistryNilSafe(t *testing.T) {
	var registry *VariantRegistry
	assert.Nil(t, registry.Get(ButtonVariantPrimary))
}

func TestAddAppliersPreservesExisting(t *testing.T) {
	base := NewBaseComponent()
	base.SetAppliers(Typography(TypographyVariantEmphasis))
	base.AddAppliers(Padding(SpacingSizeMedium))

	style := base.ComputeStyle(DefaultTheme())
	assert.True(t, style.GetBold())
	assert.Equal(t, 2, style.GetPaddingLeft())
}
