package doctree

import "github.com/c7harry/bayform/internal/types"

// RGB is a 24-bit color.
type RGB struct {
	R, G, B int
}

// Layout selects how sections are distributed across the page.
type Layout int

// Page layouts.
const (
	LayoutSingle Layout = iota
	LayoutTwoColumn
	LayoutSidebar
)

// StyleSheet is the per-variant style descriptor. The tree-building pipeline
// and the PDF serializer are shared across variants; everything that differs
// between them lives here.
type StyleSheet struct {
	Template         types.PDFTemplate
	FontFamily       string
	Accent           RGB
	Text             RGB
	Subtle           RGB
	SidebarFill      RGB
	Layout           Layout
	ContactDelimiter string
	BulletGlyph      string
	HeadingUpper     bool
	HeadingRule      bool
	CenterHeader     bool
	ShowQR           bool
	NameSize         float64
	HeadingSize      float64
	BaseSize         float64
}

// styleSheets holds the five variant descriptors.
var styleSheets = map[types.PDFTemplate]StyleSheet{
	types.PDFModern: {
		Template:         types.PDFModern,
		FontFamily:       "Helvetica",
		Accent:           RGB{37, 99, 235},
		Text:             RGB{31, 41, 55},
		Subtle:           RGB{107, 114, 128},
		Layout:           LayoutSingle,
		ContactDelimiter: " | ",
		BulletGlyph:      "•",
		HeadingRule:      true,
		ShowQR:           true,
		NameSize:         22,
		HeadingSize:      12,
		BaseSize:         9.5,
	},
	types.PDFExecutive: {
		Template:         types.PDFExecutive,
		FontFamily:       "Times",
		Accent:           RGB{17, 24, 39},
		Text:             RGB{17, 24, 39},
		Subtle:           RGB{75, 85, 99},
		Layout:           LayoutSingle,
		ContactDelimiter: "  •  ",
		BulletGlyph:      "–",
		HeadingUpper:     true,
		HeadingRule:      true,
		CenterHeader:     true,
		NameSize:         24,
		HeadingSize:      11,
		BaseSize:         10,
	},
	types.PDFCreative: {
		Template:         types.PDFCreative,
		FontFamily:       "Helvetica",
		Accent:           RGB{219, 39, 119},
		Text:             RGB{31, 41, 55},
		Subtle:           RGB{156, 163, 175},
		SidebarFill:      RGB{253, 242, 248},
		Layout:           LayoutSidebar,
		ContactDelimiter: "\n",
		BulletGlyph:      "»",
		ShowQR:           true,
		NameSize:         20,
		HeadingSize:      12,
		BaseSize:         9,
	},
	types.PDFTech: {
		Template:         types.PDFTech,
		FontFamily:       "Courier",
		Accent:           RGB{5, 150, 105},
		Text:             RGB{17, 24, 39},
		Subtle:           RGB{107, 114, 128},
		Layout:           LayoutTwoColumn,
		ContactDelimiter: " // ",
		BulletGlyph:      ">",
		HeadingUpper:     true,
		ShowQR:           true,
		NameSize:         18,
		HeadingSize:      11,
		BaseSize:         8.5,
	},
	types.PDFElegant: {
		Template:         types.PDFElegant,
		FontFamily:       "Times",
		Accent:           RGB{120, 53, 15},
		Text:             RGB{41, 37, 36},
		Subtle:           RGB{120, 113, 108},
		Layout:           LayoutSingle,
		ContactDelimiter: "  ·  ",
		BulletGlyph:      "·",
		CenterHeader:     true,
		HeadingRule:      true,
		NameSize:         23,
		HeadingSize:      12,
		BaseSize:         9.5,
	},
}

// SheetFor returns the style sheet for a PDF template identifier.
func SheetFor(tmpl types.PDFTemplate) (StyleSheet, bool) {
	sheet, ok := styleSheets[tmpl]
	return sheet, ok
}
