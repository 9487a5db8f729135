package web

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/JonMunkholm/census/internal/core"
	"github.com/JonMunkholm/census/internal/logging"
	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
)

// handleView renders a sorted view as an HTML table.
func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	field, err := core.ParseSortField(chi.URLParam(r, "field"))
	if err != nil {
		respondError(w, r, err, 0)
		return
	}

	var page templ.Component
	if field == core.SortByCode {
		records, err := s.service.SortedStateCodes()
		if err != nil {
			respondError(w, r, err, 0)
			return
		}
		page = tablePage("State codes by code", core.StateCodeSchema.Columns(), stateCodeRows(records))
	} else {
		records, err := s.service.SortedCensus(field)
		if err != nil {
			respondError(w, r, err, 0)
			return
		}
		page = tablePage("State census by "+string(field), core.CensusSchema.Columns(), censusRows(records))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(r.Context(), w); err != nil {
		logging.FromContext(r.Context()).Error("render view", "field", field, "error", err)
	}
}

func censusRows(records []core.CensusRecord) [][]string {
	rows := make([][]string, len(records))
	for i, rec := range records {
		rows[i] = []string{
			rec.State,
			strconv.FormatInt(rec.Population, 10),
			strconv.FormatInt(rec.AreaInSqKm, 10),
			strconv.FormatInt(rec.DensityPerSqKm, 10),
		}
	}
	return rows
}

func stateCodeRows(records []core.StateCodeRecord) [][]string {
	rows := make([][]string, len(records))
	for i, rec := range records {
		rows[i] = []string{
			strconv.FormatInt(rec.SrNo, 10),
			rec.StateName,
			strconv.FormatInt(rec.TIN, 10),
			rec.StateCode,
		}
	}
	return rows
}

// tablePage renders a full HTML page holding one table.
func tablePage(title string, columns []string, rows [][]string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		heading := templ.EscapeString(title)
		if _, err := fmt.Fprintf(w, "<!DOCTYPE html><html><head><meta charset=\"utf-8\"><title>%s</title></head><body>", heading); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "<h1>%s</h1>", heading); err != nil {
			return err
		}
		if err := dataTable(columns, rows).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</body></html>")
		return err
	})
}

// dataTable renders the header and rows of a table.
func dataTable(columns []string, rows [][]string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<table><thead><tr>"); err != nil {
			return err
		}
		for _, c := range columns {
			if _, err := fmt.Fprintf(w, "<th>%s</th>", templ.EscapeString(c)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "</tr></thead><tbody>"); err != nil {
			return err
		}
		for _, row := range rows {
			if _, err := io.WriteString(w, "<tr>"); err != nil {
				return err
			}
			for _, cell := range row {
				if _, err := fmt.Fprintf(w, "<td>%s</td>", templ.EscapeString(cell)); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, "</tr>"); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</tbody></table>")
		return err
	})
}
