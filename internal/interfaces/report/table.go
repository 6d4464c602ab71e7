package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/fantasy-stats/internal/calculator/streak"
	"github.com/riskibarqy/fantasy-stats/internal/statsheet"
	"github.com/riskibarqy/fantasy-stats/internal/usecase"
)

const (
	titleLongestWinStreak  = "Longest Win Streak"
	titleLongestLossStreak = "Longest Loss Streak"
	columnGap              = "  "
)

// TableRenderer writes aligned plain text tables.
type TableRenderer struct {
	opts Options
}

type cell struct {
	text  string
	color *Color
}

type column struct {
	key   string
	title string
	color Color
}

func (t *TableRenderer) Render(w io.Writer, r usecase.Report) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for _, y := range r.Years {
		cols := make([]column, 0, len(y.Teams))
		for _, team := range y.Teams {
			cols = append(cols, column{key: team.ID, title: team.Name, color: OwnerColor(team.OwnerID)})
		}
		fmt.Fprintf(buf, "%s %d\n", r.LeagueName, y.Sheet.YearNumber)
		t.writeSheet(buf, cols, y.Sheet.Rows(), y.Sheet.Divisions)
	}

	cols := make([]column, 0, len(r.Owners))
	for _, o := range r.Owners {
		cols = append(cols, column{key: o.ID, title: o.Name, color: OwnerColor(o.ID)})
	}
	fmt.Fprintf(buf, "%s all-time %d-%d\n", r.LeagueName, r.AllTime.YearNumberStart, r.AllTime.YearNumberEnd)
	t.writeSheet(buf, cols, allTimeRows(r), r.AllTime.Divisions)

	t.writeStreaks(buf, r, "Win Streaks", r.WinStreaks)
	t.writeStreaks(buf, r, "Loss Streaks", r.LossStreaks)

	_, err := w.Write(buf.B)
	return err
}

func allTimeRows(r usecase.Report) []statsheet.Row {
	return append(r.AllTime.Rows(),
		statsheet.Row{Title: titleLongestWinStreak, Values: r.LongestWinStreak},
		statsheet.Row{Title: titleLongestLossStreak, Values: r.LongestLossStreak},
	)
}

func (t *TableRenderer) writeSheet(buf *bytebufferpool.ByteBuffer, cols []column, rows []statsheet.Row, divisions map[string]string) {
	header := make([]cell, 0, len(cols)+1)
	header = append(header, cell{text: "Stat"})
	for _, c := range cols {
		c := c
		header = append(header, cell{text: c.title, color: &c.color})
	}

	grid := make([][]cell, 0, len(rows)+1)
	if len(divisions) > 0 {
		line := []cell{{text: "Division"}}
		for _, c := range cols {
			line = append(line, cell{text: divisions[c.key]})
		}
		grid = append(grid, line)
	}
	for _, row := range rows {
		line := make([]cell, 0, len(cols)+1)
		line = append(line, cell{text: row.Title})
		for _, c := range cols {
			line = append(line, cell{text: formatValue(row.Values, c.key, t.opts.DecimalPlaces)})
		}
		grid = append(grid, line)
	}
	t.writeGrid(buf, header, grid)
}

func (t *TableRenderer) writeStreaks(buf *bytebufferpool.ByteBuffer, r usecase.Report, title string, streaks []streak.Streak) {
	buf.WriteString(title)
	buf.WriteByte('\n')
	if len(streaks) == 0 {
		buf.WriteString(NotAvailable)
		buf.WriteString("\n\n")
		return
	}

	header := []cell{{text: "Owner"}, {text: "Length"}, {text: "Start"}, {text: "End"}, {text: "Ongoing"}}
	grid := make([][]cell, 0, len(streaks))
	for _, s := range streaks {
		color := OwnerColor(s.OwnerID)
		ongoing := "no"
		if s.Ongoing {
			ongoing = "yes"
		}
		grid = append(grid, []cell{
			{text: r.OwnerName(s.OwnerID), color: &color},
			{text: fmt.Sprint(s.Length)},
			{text: formatPoint(s.Start)},
			{text: formatPoint(s.End)},
			{text: ongoing},
		})
	}
	t.writeGrid(buf, header, grid)
}

func formatPoint(p streak.Point) string {
	return fmt.Sprintf("%d week %d", p.YearNumber, p.WeekNumber)
}

// writeGrid left-aligns every column. The last column is not padded so lines
// carry no trailing spaces.
func (t *TableRenderer) writeGrid(buf *bytebufferpool.ByteBuffer, header []cell, grid [][]cell) {
	widths := make([]int, len(header))
	for _, line := range append([][]cell{header}, grid...) {
		for i, c := range line {
			widths[i] = max(widths[i], utf8.RuneCountInString(c.text))
		}
	}

	writeLine := func(line []cell) {
		for i, c := range line {
			text := c.text
			if t.opts.Color && c.color != nil {
				text = c.color.paint(text)
			}
			buf.WriteString(text)
			if i < len(line)-1 {
				buf.WriteString(strings.Repeat(" ", widths[i]-utf8.RuneCountInString(c.text)))
				buf.WriteString(columnGap)
			}
		}
		buf.WriteByte('\n')
	}

	writeLine(header)
	for i, w := range widths {
		buf.WriteString(strings.Repeat("-", w))
		if i < len(widths)-1 {
			buf.WriteString(columnGap)
		}
	}
	buf.WriteByte('\n')
	for _, line := range grid {
		writeLine(line)
	}
	buf.WriteByte('\n')
}
