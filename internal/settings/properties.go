package settings

// Profile properties written or read by tmt.
const (
	BackgroundColor               = "background-color"
	ForegroundColor               = "foreground-color"
	HighlightBackgroundColor      = "highlight-background-color"
	HighlightForegroundColor      = "highlight-foreground-color"
	UseTransparentBackground      = "use-transparent-background"
	BackgroundTransparencyPercent = "background-transparency-percent"
	DefaultSizeRows               = "default-size-rows"
	DefaultSizeColumns            = "default-size-columns"
	CellHeightScale               = "cell-height-scale"
	CellWidthScale                = "cell-width-scale"
)

// propertyKinds declares the type of every known profile property. Unknown
// properties are accepted with any value type.
var propertyKinds = map[string]Kind{
	BackgroundColor:               KindString,
	ForegroundColor:               KindString,
	HighlightBackgroundColor:      KindString,
	HighlightForegroundColor:      KindString,
	UseTransparentBackground:      KindBool,
	BackgroundTransparencyPercent: KindInt,
	DefaultSizeRows:               KindInt,
	DefaultSizeColumns:            KindInt,
	CellHeightScale:               KindFloat,
	CellWidthScale:                KindFloat,
}

// DeclaredKind returns the declared type of property.
func DeclaredKind(property string) (Kind, bool) {
	k, ok := propertyKinds[property]
	return k, ok
}

// TrackedProperties is the default set printed by --print, in display order.
func TrackedProperties() []string {
	return []string{
		BackgroundColor, ForegroundColor,
		HighlightBackgroundColor, HighlightForegroundColor,
		UseTransparentBackground, BackgroundTransparencyPercent,
		DefaultSizeRows, DefaultSizeColumns,
		CellHeightScale, CellWidthScale,
	}
}
