package biff

import "image/color"

// Reserved color indices. Values at or above the size of the live color
// table never index it; they name one of these system colors.
const (
	IcvWindowText       = 0x0040
	IcvWindowBackground = 0x0041
	IcvChartForeground  = 0x004D
	IcvChartBackground  = 0x004E
	IcvChartNeutral     = 0x004F
	IcvAutomatic        = 0x7FFF
)

func rgb(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}
}

// DefaultPalette is the BIFF8 color table in effect when a workbook has no
// PALETTE record: the eight built-in colors followed by the 56 default
// palette entries (indices 8..63).
var DefaultPalette = []color.RGBA{
	rgb(0x000000), rgb(0xFFFFFF), rgb(0xFF0000), rgb(0x00FF00),
	rgb(0x0000FF), rgb(0xFFFF00), rgb(0xFF00FF), rgb(0x00FFFF),
	rgb(0x000000), rgb(0xFFFFFF), rgb(0xFF0000), rgb(0x00FF00),
	rgb(0x0000FF), rgb(0xFFFF00), rgb(0xFF00FF), rgb(0x00FFFF),
	rgb(0x800000), rgb(0x008000), rgb(0x000080), rgb(0x808000),
	rgb(0x800080), rgb(0x008080), rgb(0xC0C0C0), rgb(0x808080),
	rgb(0x9999FF), rgb(0x993366), rgb(0xFFFFCC), rgb(0xCCFFFF),
	rgb(0x660066), rgb(0xFF8080), rgb(0x0066CC), rgb(0xCCCCFF),
	rgb(0x000080), rgb(0xFF00FF), rgb(0xFFFF00), rgb(0x00FFFF),
	rgb(0x800080), rgb(0x800000), rgb(0x008080), rgb(0x0000FF),
	rgb(0x00CCFF), rgb(0xCCFFFF), rgb(0xCCFFCC), rgb(0xFFFF99),
	rgb(0x99CCFF), rgb(0xFF99CC), rgb(0xCC99FF), rgb(0xFFCC99),
	rgb(0x3366FF), rgb(0x33CCCC), rgb(0x99CC00), rgb(0xFFCC00),
	rgb(0xFF9900), rgb(0xFF6600), rgb(0x666699), rgb(0x969696),
	rgb(0x003366), rgb(0x339966), rgb(0x003300), rgb(0x333300),
	rgb(0x993300), rgb(0x993366), rgb(0x333399), rgb(0x333333),
}

// ResolveColor maps a color index to an RGB value. Indices inside the table
// select a table entry; anything else is treated as one of the reserved
// system colors, with black as the fallback.
func ResolveColor(table []color.RGBA, icv uint16) color.RGBA {
	if int(icv) < len(table) {
		return table[icv]
	}
	switch icv {
	case IcvWindowBackground, IcvChartBackground:
		return rgb(0xFFFFFF)
	default:
		// window text, chart foreground, neutral and automatic
		return rgb(0x000000)
	}
}

// IsReservedColor reports whether icv names a system color rather than a
// table entry.
func IsReservedColor(table []color.RGBA, icv uint16) bool {
	return int(icv) >= len(table)
}

// NearestColorIndex returns the index of the table entry closest to c in
// RGB space. Among equally close entries the first one in the palette range
// (8 and up) wins over the duplicated built-in colors.
func NearestColorIndex(table []color.RGBA, c color.RGBA) int {
	best, bestDist := 0, -1
	for i, e := range table {
		dr, dg, db := int(e.R)-int(c.R), int(e.G)-int(c.G), int(e.B)-int(c.B)
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist || (d == bestDist && best < 8 && i >= 8) {
			best, bestDist = i, d
		}
	}
	return best
}
