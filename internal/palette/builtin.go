package palette

// Builtin returns a fresh copy of the primitive color table compiled into the
// binary. Every variant is light-only; dark entries are produced by the
// generator's dark-mode policy.
func Builtin() *Table {
	t := &Table{Families: make([]Family, len(builtin))}
	for i, f := range builtin {
		t.Families[i] = Family{Name: f.Name, Variants: append([]Variant(nil), f.Variants...)}
	}
	return t
}

// builtin is the primitive palette of the design system.
var builtin = []Family{
	{Name: "Yellow", Variants: []Variant{
		{Name: "yellow50", Light: "#FEF6E6"},
		{Name: "yellow100", Light: "#FCE2B0"},
		{Name: "yellow200", Light: "#FAD58A"},
		{Name: "yellow300", Light: "#F8C154"},
		{Name: "yellow400", Light: "#F7B533"},
		{Name: "yellow500", Light: "#F5A300"},
		{Name: "yellow600", Light: "#DF9400"},
		{Name: "yellow700", Light: "#AE7400"},
		{Name: "yellow800", Light: "#875A00"},
		{Name: "yellow900", Light: "#674400"},
	}},
	{Name: "Green", Variants: []Variant{
		{Name: "green50", Light: "#EBF9EE"},
		{Name: "green100", Light: "#C0EECC"},
		{Name: "green200", Light: "#A2E5B3"},
		{Name: "green300", Light: "#77D990"},
		{Name: "green400", Light: "#5DD27A"},
		{Name: "green500", Light: "#34C759"},
		{Name: "green600", Light: "#2FB551"},
		{Name: "green700", Light: "#258D3F"},
		{Name: "green800", Light: "#1D6D31"},
		{Name: "green900", Light: "#165425"},
	}},
	{Name: "Red", Variants: []Variant{
		{Name: "red50", Light: "#FCEBEE"},
		{Name: "red100", Light: "#F7C0C9"},
		{Name: "red200", Light: "#F3A2AF"},
		{Name: "red300", Light: "#EE778A"},
		{Name: "red400", Light: "#EA5D74"},
		{Name: "red500", Light: "#E53451"},
		{Name: "red600", Light: "#D02F4A"},
		{Name: "red700", Light: "#A3253A"},
		{Name: "red800", Light: "#7E1D2D"},
		{Name: "red900", Light: "#601622"},
	}},
	{Name: "Navy", Variants: []Variant{
		{Name: "navy50", Light: "#E8E9ED"},
		{Name: "navy100", Light: "#B9BCC8"},
		{Name: "navy200", Light: "#979CAD"},
		{Name: "navy300", Light: "#676E87"},
		{Name: "navy400", Light: "#495270"},
		{Name: "navy500", Light: "#1C274C"},
		{Name: "navy600", Light: "#192345"},
		{Name: "navy700", Light: "#141C36"},
		{Name: "navy800", Light: "#0F152A"},
		{Name: "navy900", Light: "#0C1020"},
	}},
	// No 200 shade in this family.
	{Name: "PastelBlue", Variants: []Variant{
		{Name: "pastelBlue50", Light: "#F4F6FF"},
		{Name: "pastelBlue100", Light: "#EDF1FF"},
		{Name: "pastelBlue300", Light: "#B3C4FF"},
		{Name: "pastelBlue400", Light: "#A4B9FF"},
		{Name: "pastelBlue500", Light: "#8DA7FF"},
		{Name: "pastelBlue600", Light: "#8098E8"},
		{Name: "pastelBlue700", Light: "#6477B5"},
		{Name: "pastelBlue800", Light: "#4E5C8C"},
		{Name: "pastelBlue900", Light: "#3B466B"},
	}},
	{Name: "Grey", Variants: []Variant{
		{Name: "grey50", Light: "#F9F9F9"},
		{Name: "grey100", Light: "#ECECEF"},
		{Name: "grey200", Light: "#E3E3E7"},
		{Name: "grey300", Light: "#D7D7DC"},
		{Name: "grey400", Light: "#CFCFD5"},
		{Name: "grey500", Light: "#C3C3CB"},
		{Name: "grey600", Light: "#B1B1B9"},
		{Name: "grey700", Light: "#8A8A90"},
		{Name: "grey800", Light: "#6B6B70"},
		{Name: "grey900", Light: "#525255"},
		{Name: "greyBlack", Light: "#191919"},
		{Name: "greyWhite", Light: "#FFFFFF"},
	}},
}
