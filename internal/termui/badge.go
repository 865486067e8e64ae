package termui

// Variant selects the colour of a badge.
type Variant int

const (
	VariantDefault Variant = iota
	VariantPrimary
	VariantSuccess
	VariantWarning
	VariantError
	VariantInfo
)

func registerBadgeVariants(registry map[Variant][]StyleFunc) {
	registry[VariantDefault] = []StyleFunc{Background(SlotMuted), PaddingX(1)}
	registry[VariantPrimary] = []StyleFunc{Background(SlotPrimary), PaddingX(1), Bold()}
	registry[VariantSuccess] = []StyleFunc{Background(SlotSuccess), PaddingX(1), Bold()}
	registry[VariantWarning] = []StyleFunc{Background(SlotWarning), PaddingX(1), Bold()}
	registry[VariantError] = []StyleFunc{Background(SlotError), PaddingX(1), Bold()}
	registry[VariantInfo] = []StyleFunc{Background(SlotInfo), PaddingX(1)}
}

// Badge renders a short status label.
func (t Theme) Badge(variant Variant, text string) string {
	fns, ok := t.variants[variant]
	if !ok {
		fns = t.variants[VariantDefault]
	}
	return t.Style(fns...).Render(text)
}
