package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"go.uber.org/zap"

	"netracare-go/internal/repository"
)

// ScoreTimeline renders one user's score history as echarts line-chart
// options, ready for the dashboard to drop into an echarts instance.
func (h *EyeTrackingHandler) ScoreTimeline(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	metricKey := c.DefaultQuery("metric", "overall_performance")
	if !repository.TimelineMetricValid(metricKey) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown metric"})
		return
	}

	data, err := repository.GetScoreTimeline(c.Request.Context(), userID, metricKey)
	if err != nil {
		h.log.Error("Failed to load score timeline", zap.Error(err), zap.String("metric", metricKey))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load timeline data"})
		return
	}

	metricLabel := strings.Title(strings.ReplaceAll(metricKey, "_", " "))
	c.JSON(http.StatusOK, generateTimelineChart(data, metricLabel).JSON())
}

func generateTimelineChart(data []repository.TimelineDataPoint, metricLabel string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Score Over Time",
			Subtitle: metricLabel,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "time",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:  "value",
			Scale: opts.Bool(true),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider"}),
	)

	items := make([]opts.LineData, 0, len(data))
	for _, point := range data {
		items = append(items, opts.LineData{Value: []interface{}{point.Date, point.Value}})
	}

	line.AddSeries(metricLabel, items).SetSeriesOptions(charts.WithLineStyleOpts(opts.LineStyle{Width: 2}))
	return line
}
