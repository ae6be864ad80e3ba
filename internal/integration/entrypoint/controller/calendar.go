// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/application/usecase/calendar"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/dto"
)

// CalendarController handles calendar view endpoints.
type CalendarController struct {
	dayUseCase   *calendar.GetDayViewUseCase
	monthUseCase *calendar.GetMonthViewUseCase
	yearUseCase  *calendar.GetYearViewUseCase
	clock        adapter.Clock
}

// NewCalendarController creates a new calendar controller instance.
func NewCalendarController(
	dayUseCase *calendar.GetDayViewUseCase,
	monthUseCase *calendar.GetMonthViewUseCase,
	yearUseCase *calendar.GetYearViewUseCase,
	clock adapter.Clock,
) *CalendarController {
	return &CalendarController{
		dayUseCase:   dayUseCase,
		monthUseCase: monthUseCase,
		yearUseCase:  yearUseCase,
		clock:        clock,
	}
}

// Day handles GET /calendar/day requests. The date query parameter is
// optional and defaults to today.
func (c *CalendarController) Day(ctx *gin.Context) {
	output, err := c.dayUseCase.Execute(ctx.Request.Context(), calendar.GetDayViewInput{
		Date: ctx.Query("date"),
	})
	if err != nil {
		c.handleCalendarError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDayViewResponse(output))
}

// Month handles GET /calendar/month requests. Year and month default to the
// current month.
func (c *CalendarController) Month(ctx *gin.Context) {
	now := c.clock.Now()

	year, ok := c.queryInt(ctx, "year", now.Year(), string(domainerror.ErrCodeInvalidCalendarYear))
	if !ok {
		return
	}
	month, ok := c.queryInt(ctx, "month", int(now.Month()), string(domainerror.ErrCodeInvalidCalendarMonth))
	if !ok {
		return
	}

	output, err := c.monthUseCase.Execute(ctx.Request.Context(), calendar.GetMonthViewInput{
		Year:  year,
		Month: month,
	})
	if err != nil {
		c.handleCalendarError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthViewResponse(output))
}

// Year handles GET /calendar/year requests. The year defaults to the
// current year.
func (c *CalendarController) Year(ctx *gin.Context) {
	year, ok := c.queryInt(ctx, "year", c.clock.Now().Year(), string(domainerror.ErrCodeInvalidCalendarYear))
	if !ok {
		return
	}

	output, err := c.yearUseCase.Execute(ctx.Request.Context(), calendar.GetYearViewInput{Year: year})
	if err != nil {
		c.handleCalendarError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToYearViewResponse(output))
}

// queryInt parses an optional integer query parameter, writing a 400
// response when the value is present but unparseable.
func (c *CalendarController) queryInt(ctx *gin.Context, name string, fallback int, code string) (int, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return fallback, true
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + name + " parameter",
			Code:  code,
		})
		return 0, false
	}
	return value, true
}

// handleCalendarError maps domain errors to HTTP responses.
func (c *CalendarController) handleCalendarError(ctx *gin.Context, err error) {
	var calErr *domainerror.CalendarError
	if errors.As(err, &calErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: calErr.Message,
			Code:  string(calErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
