package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Racecourses returns all distinct racecourses in the dataset, optionally
// restricted to a race date.
func (h *Handler) Racecourses(c echo.Context) error {
	date := c.QueryParam("date")

	var courses []string
	q := h.db.NewSelect().
		TableExpr("results").
		ColumnExpr("DISTINCT racecourse").
		OrderExpr("racecourse ASC")

	if date != "" {
		q = q.Where("date = ?", date)
	}

	if err := q.Scan(c.Request().Context(), &courses); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, courses)
}

// Dates returns all distinct race dates, optionally filtered by racecourse.
func (h *Handler) Dates(c echo.Context) error {
	racecourse := c.QueryParam("racecourse")

	var dates []string
	q := h.db.NewSelect().
		TableExpr("results").
		ColumnExpr("DISTINCT date::text").
		OrderExpr("date DESC")

	if racecourse != "" {
		q = q.Where("racecourse = ?", racecourse)
	}

	if err := q.Scan(c.Request().Context(), &dates); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dates)
}
