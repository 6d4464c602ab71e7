// Package report renders computed league reports for people and programs.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/riskibarqy/fantasy-stats/internal/calculator"
	"github.com/riskibarqy/fantasy-stats/internal/usecase"
)

// NotAvailable is rendered for values that are None or missing.
const NotAvailable = "N/A"

const (
	FormatTable = "table"
	FormatJSON  = "json"
)

type Renderer interface {
	Render(w io.Writer, r usecase.Report) error
}

type Options struct {
	DecimalPlaces int32
	// Color enables ANSI owner colors in table headers.
	Color bool
}

// New returns the renderer for format.
func New(format string, opts Options) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatTable:
		return &TableRenderer{opts: opts}, nil
	case FormatJSON:
		return &JSONRenderer{opts: opts}, nil
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
}

func formatValue(values calculator.Values, id string, places int32) string {
	v, ok := values.Value(id)
	if !ok {
		return NotAvailable
	}
	return v.StringFixed(places)
}
