package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yigit/linguacrm/internal/app/models/dto"
	"github.com/yigit/linguacrm/internal/pkg/helpers"
)

// parseIDParam reads a uuid path parameter, writing a 400 response when it is malformed
func parseIDParam(ctx *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+label+" ID").
			WithField(name).
			WithDetails(label + " ID must be a valid UUID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return uuid.Nil, false
	}
	return id, true
}

// parseWindow reads the from/to query parameters. Either may be an RFC3339 instant or a date;
// missing bounds default to the current week in loc. A date-only "to" covers that whole day.
func parseWindow(ctx *gin.Context, loc *time.Location, now time.Time) (time.Time, time.Time, bool) {
	from, to := helpers.WeekWindow(now, loc)

	if v := ctx.Query("from"); v != "" {
		t, err := helpers.ParseInstant(v, loc)
		if err != nil {
			writeQueryError(ctx, "from", err)
			return time.Time{}, time.Time{}, false
		}
		from = t
	}
	if v := ctx.Query("to"); v != "" {
		t, err := helpers.ParseInstant(v, loc)
		if err != nil {
			writeQueryError(ctx, "to", err)
			return time.Time{}, time.Time{}, false
		}
		if len(v) == len(helpers.DateLayout) {
			t = t.AddDate(0, 0, 1)
		}
		to = t
	}
	return from, to, true
}

func writeQueryError(ctx *gin.Context, field string, err error) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid query parameter").
		WithField(field).
		WithDetails(err.Error())
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}
