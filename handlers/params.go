package handlers

import (
	"net/http"
	"time"

	"workhub/services/reports"
	"workhub/services/schedule"
	"workhub/utils"

	"github.com/gin-gonic/gin"
)

// Clock returns the current time. Handlers take it so tests can pin "today".
type Clock func() time.Time

func (f Clock) now() time.Time {
	if f == nil {
		return time.Now()
	}
	return f()
}

// dateQuery reads ?date=YYYY-MM-DD, defaulting to today. On a bad date it
// writes a 400 and returns false.
func dateQuery(c *gin.Context, now time.Time) (time.Time, bool) {
	date, err := schedule.ParseDate(c.Query("date"), now)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date", err.Error())
		return time.Time{}, false
	}
	return date, true
}

// sendReport serves a CSV report as a download.
func sendReport(c *gin.Context, report *reports.Report) {
	c.Header("Content-Disposition", `attachment; filename="`+report.Name+`"`)
	if report.ArchiveURL != "" {
		c.Header("X-Report-Archive", report.ArchiveURL)
	}
	c.Data(http.StatusOK, "text/csv; charset=utf-8", report.Content)
}
