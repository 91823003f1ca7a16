package http

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"function-insights/internal/aggregators"
	"function-insights/internal/models"
)

const (
	queryPeriod = "period"
	queryStart  = "start"
	queryEnd    = "end"
	queryNow    = "now"
)

type currentStatsHandler struct {
	statsService  aggregators.StatsService
	defaultPeriod models.WindowPeriod
	now           func() time.Time
}

func NewCurrentStatsHandler(statsService aggregators.StatsService, defaultPeriod models.WindowPeriod) AppHttpHandler {
	return &currentStatsHandler{
		statsService:  statsService,
		defaultPeriod: defaultPeriod,
		now:           time.Now,
	}
}

// Handle processes GET /api/stats requests.
//
// The window is either explicit, start and/or end in epoch milliseconds
// (start defaults to 0, end to now), or a period (day, week, all) ending now.
func (h *currentStatsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	window, err := h.resolveWindow(r.URL.Query())
	if err != nil {
		return err
	}

	reports, err := h.statsService.CurrentStats(r.Context(), userID(r), window)
	if err != nil {
		return err
	}

	writeJSON(w, r, http.StatusOK, reports)
	return nil
}

func (h *currentStatsHandler) resolveWindow(query url.Values) (models.TimeWindow, error) {
	now := h.now()

	if query.Has(queryStart) || query.Has(queryEnd) {
		window := models.TimeWindow{Start: 0, End: now.UnixMilli()}
		if query.Has(queryStart) {
			start, err := parseEpochMillis(query, queryStart)
			if err != nil {
				return models.TimeWindow{}, err
			}
			window.Start = start
		}
		if query.Has(queryEnd) {
			end, err := parseEpochMillis(query, queryEnd)
			if err != nil {
				return models.TimeWindow{}, err
			}
			window.End = end
		}
		return window, nil
	}

	period := h.defaultPeriod
	if raw := query.Get(queryPeriod); raw != "" {
		p, err := models.NewWindowPeriodFromString(raw)
		if err != nil {
			return models.TimeWindow{}, errInvalidQueryParam(queryPeriod, raw, err)
		}
		period = p
	}
	return period.Window(now), nil
}

type weeklyRollupHandler struct {
	statsService aggregators.StatsService
	now          func() time.Time
}

func NewWeeklyRollupHandler(statsService aggregators.StatsService) AppHttpHandler {
	return &weeklyRollupHandler{
		statsService: statsService,
		now:          time.Now,
	}
}

// Handle processes GET /api/stats/weekly requests. An optional now (epoch
// milliseconds) pins the end of the newest bucket.
func (h *weeklyRollupHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	query := r.URL.Query()
	now := h.now()
	if query.Has(queryNow) {
		ms, err := parseEpochMillis(query, queryNow)
		if err != nil {
			return err
		}
		now = time.UnixMilli(ms)
	}

	series, err := h.statsService.WeeklyRollup(r.Context(), userID(r), now)
	if err != nil {
		return err
	}

	writeJSON(w, r, http.StatusOK, series)
	return nil
}

func parseEpochMillis(query url.Values, name string) (int64, error) {
	raw := query.Get(name)
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errInvalidQueryParam(name, raw, err)
	}
	return ms, nil
}
