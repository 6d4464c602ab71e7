package report

import (
	"io"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/fantasy-stats/internal/calculator/streak"
	"github.com/riskibarqy/fantasy-stats/internal/statsheet"
	"github.com/riskibarqy/fantasy-stats/internal/usecase"
)

// JSONRenderer writes the report as one indented JSON document. Values are
// fixed point strings; None is null.
type JSONRenderer struct {
	opts Options
}

type reportDocument struct {
	League      string           `json:"league"`
	Owners      []ownerDocument  `json:"owners"`
	Years       []sheetDocument  `json:"years"`
	AllTime     sheetDocument    `json:"allTime"`
	WinStreaks  []streakDocument `json:"winStreaks"`
	LossStreaks []streakDocument `json:"lossStreaks"`
}

type ownerDocument struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type sheetDocument struct {
	YearNumber      int              `json:"yearNumber,omitempty"`
	YearNumberStart int              `json:"yearNumberStart,omitempty"`
	YearNumberEnd   int              `json:"yearNumberEnd,omitempty"`
	Columns         []columnDocument `json:"columns"`
	Rows            []rowDocument    `json:"rows"`
}

type columnDocument struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	OwnerID  string `json:"ownerId"`
	Division string `json:"division,omitempty"`
}

type rowDocument struct {
	Title  string             `json:"title"`
	Values map[string]*string `json:"values"`
}

type streakDocument struct {
	OwnerID string        `json:"ownerId"`
	Kind    streak.Kind   `json:"kind"`
	Length  int           `json:"length"`
	Start   pointDocument `json:"start"`
	End     pointDocument `json:"end"`
	Ongoing bool          `json:"ongoing"`
}

type pointDocument struct {
	TeamID     string `json:"teamId"`
	YearNumber int    `json:"yearNumber"`
	WeekNumber int    `json:"weekNumber"`
}

func (j *JSONRenderer) Render(w io.Writer, r usecase.Report) error {
	doc := reportDocument{
		League:      r.LeagueName,
		Owners:      make([]ownerDocument, 0, len(r.Owners)),
		Years:       make([]sheetDocument, 0, len(r.Years)),
		WinStreaks:  streakDocuments(r.WinStreaks),
		LossStreaks: streakDocuments(r.LossStreaks),
	}

	ownerColumns := make([]columnDocument, 0, len(r.Owners))
	for _, o := range r.Owners {
		doc.Owners = append(doc.Owners, ownerDocument{ID: o.ID, Name: o.Name, Color: OwnerColor(o.ID).Hex})
		ownerColumns = append(ownerColumns, columnDocument{ID: o.ID, Name: o.Name, OwnerID: o.ID, Division: r.AllTime.Divisions[o.ID]})
	}

	for _, y := range r.Years {
		columns := make([]columnDocument, 0, len(y.Teams))
		for _, team := range y.Teams {
			columns = append(columns, columnDocument{ID: team.ID, Name: team.Name, OwnerID: team.OwnerID, Division: y.Sheet.Divisions[team.ID]})
		}
		doc.Years = append(doc.Years, sheetDocument{
			YearNumber: y.Sheet.YearNumber,
			Columns:    columns,
			Rows:       j.rowDocuments(y.Sheet.Rows(), columns),
		})
	}

	doc.AllTime = sheetDocument{
		YearNumberStart: r.AllTime.YearNumberStart,
		YearNumberEnd:   r.AllTime.YearNumberEnd,
		Columns:         ownerColumns,
		Rows:            j.rowDocuments(allTimeRows(r), ownerColumns),
	}

	enc := sonic.ConfigStd.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func (j *JSONRenderer) rowDocuments(rows []statsheet.Row, columns []columnDocument) []rowDocument {
	out := make([]rowDocument, 0, len(rows))
	for _, row := range rows {
		values := make(map[string]*string, len(columns))
		for _, c := range columns {
			if v, ok := row.Values.Value(c.ID); ok {
				s := v.StringFixed(j.opts.DecimalPlaces)
				values[c.ID] = &s
			} else {
				values[c.ID] = nil
			}
		}
		out = append(out, rowDocument{Title: row.Title, Values: values})
	}
	return out
}

func streakDocuments(streaks []streak.Streak) []streakDocument {
	out := make([]streakDocument, 0, len(streaks))
	for _, s := range streaks {
		out = append(out, streakDocument{
			OwnerID: s.OwnerID,
			Kind:    s.Kind,
			Length:  s.Length,
			Start:   pointDocument(s.Start),
			End:     pointDocument(s.End),
			Ongoing: s.Ongoing,
		})
	}
	return out
}
