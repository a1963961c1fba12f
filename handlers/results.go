package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/padraicbc/drafdata/models"
)

type raceRunner struct {
	Position    string   `json:"position"`
	Horse       string   `json:"horse"`
	Driver      string   `json:"driver"`
	BibNumber   *int     `json:"bibNumber,omitempty"`
	Distance    *float64 `json:"distance,omitempty"`
	PaceString  *string  `json:"paceString,omitempty"`
	PaceSeconds *float64 `json:"paceSeconds,omitempty"`
	PrizeCents  int      `json:"prizeCents"`
	OddsDecimal *float64 `json:"oddsDecimal,omitempty"`
}

type raceResults struct {
	EventID      int          `json:"eventID"`
	RaceNumber   string       `json:"raceNumber"`
	Date         string       `json:"date"`
	Time         string       `json:"time"`
	Racecourse   string       `json:"racecourse"`
	Title        string       `json:"title"`
	Description  string       `json:"description,omitempty"`
	RaceDistance *float64     `json:"raceDistance,omitempty"`
	StartType    *string      `json:"startType,omitempty"`
	Runners      []raceRunner `json:"runners"`
}

// Results returns all harness results for a given date, grouped by race.
func (h *Handler) Results(c echo.Context) error {
	date := c.QueryParam("date")
	if date == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing date param")
	}

	var rows []models.Result
	err := h.db.NewSelect().
		Model(&rows).
		Where("date = ?", date).
		OrderExpr("event_id, race_number::int, LENGTH(position), position").
		Scan(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, groupByRace(rows))
}

// groupByRace converts flat result rows into race-grouped slices, keeping
// query order.
func groupByRace(rows []models.Result) []raceResults {
	order := []string{}
	races := map[string]*raceResults{}

	for _, row := range rows {
		key := fmt.Sprintf("%d/%s", row.EventID, row.RaceNumber)
		runner := raceRunner{
			Position:    row.Position,
			Horse:       row.Horse,
			Driver:      row.Driver,
			BibNumber:   row.BibNumber,
			Distance:    row.Distance,
			PaceString:  row.PaceString,
			PaceSeconds: row.PaceSeconds,
			PrizeCents:  row.PrizeCents,
			OddsDecimal: row.OddsDecimal,
		}

		if _, ok := races[key]; !ok {
			order = append(order, key)
			races[key] = &raceResults{
				EventID:      row.EventID,
				RaceNumber:   row.RaceNumber,
				Date:         row.Date,
				Time:         row.Time,
				Racecourse:   row.Racecourse,
				Title:        row.Title,
				Description:  row.Description,
				RaceDistance: row.RaceDistance,
				StartType:    row.StartType,
				Runners:      []raceRunner{},
			}
		}
		races[key].Runners = append(races[key].Runners, runner)
	}

	out := make([]raceResults, 0, len(order))
	for _, k := range order {
		out = append(out, *races[k])
	}
	return out
}
