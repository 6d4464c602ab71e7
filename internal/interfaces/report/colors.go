package report

import (
	"fmt"
	"hash/fnv"
)

// Color is a display color with its closest ANSI 256 code.
type Color struct {
	Hex  string
	ANSI int
}

var palette = []Color{
	{Hex: "#1f77b4", ANSI: 31},
	{Hex: "#ff7f0e", ANSI: 208},
	{Hex: "#2ca02c", ANSI: 34},
	{Hex: "#d62728", ANSI: 160},
	{Hex: "#9467bd", ANSI: 97},
	{Hex: "#8c564b", ANSI: 94},
	{Hex: "#e377c2", ANSI: 176},
	{Hex: "#7f7f7f", ANSI: 244},
	{Hex: "#bcbd22", ANSI: 142},
	{Hex: "#17becf", ANSI: 38},
}

// OwnerColor picks a stable color for ownerID. The same ID always gets the
// same color, independent of owner order or league.
func OwnerColor(ownerID string) Color {
	h := fnv.New32a()
	_, _ = h.Write([]byte(ownerID))
	return palette[h.Sum32()%uint32(len(palette))]
}

func (c Color) paint(s string) string {
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", c.ANSI, s)
}
