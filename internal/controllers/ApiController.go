package controllers

import (
	"net/http"
	"sort"
	"time"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"

	"tod/internal/analytics"
	"tod/internal/models"
	"tod/internal/providers"
	"tod/internal/services"
)

const maxRequestBodySize = 1 << 20 // 1 MB

type ApiController struct {
	logger  providers.Logger
	service services.TimeLogServiceInterface
	cache   providers.CacheProviderInterface
}

func NewApiController(logger providers.Logger, service services.TimeLogServiceInterface, cache providers.CacheProviderInterface) *ApiController {
	return &ApiController{
		logger:  logger,
		service: service,
		cache:   cache,
	}
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func writeJSON(w http.ResponseWriter, status int, result any) {
	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

func validDay(day string) bool {
	_, err := time.Parse(analytics.DayLayout, day)
	return err == nil
}

// ReceiveLog appends one time log entry. Missing ID and timestamp are
// filled in server-side; minute overflow and blank activity labels are
// normalized before storage.
func (ac *ApiController) ReceiveLog(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload models.TimeLogEntry
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if err := payload.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	stored := ac.service.AddEntry(payload)
	writeJSON(w, http.StatusCreated, stored)
}

// GetLogs lists entries; an optional ?day=YYYY-MM-DD narrows the result
// to one calendar day.
func (ac *ApiController) GetLogs(w http.ResponseWriter, r *http.Request) {
	day := r.URL.Query().Get("day")
	if day == "" {
		ac.serveFromCacheOrCompute(w, "logs", func() (any, error) {
			return ac.service.GetAllEntries(), nil
		})
		return
	}
	if !validDay(day) {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	ac.serveFromCacheOrCompute(w, "logs:"+day, func() (any, error) {
		return ac.service.GetDayEntries(day), nil
	})
}

// DeleteLogs removes entries by ID.
func (ac *ApiController) DeleteLogs(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload struct {
		Ids []string `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	deleted := ac.service.DeleteEntries(payload.Ids)
	writeJSON(w, http.StatusOK, map[string]int{"deleted": deleted})
}

// GetToday returns today's per-category totals; a day without entries is
// all zeros, not an error.
func (ac *ApiController) GetToday(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, "today:"+ac.service.Today(), func() (any, error) {
		return ac.service.TodayTotals(), nil
	})
}

// GetTotals returns the day -> minutes mapping for charts. An optional
// ?days=N keeps only the N most recent days.
func (ac *ApiController) GetTotals(w http.ResponseWriter, r *http.Request) {
	days := cast.ToInt(r.URL.Query().Get("days"))
	cacheKey := "totals"
	if days > 0 {
		cacheKey = "totals:" + cast.ToString(days)
	}
	ac.serveFromCacheOrCompute(w, cacheKey, func() (any, error) {
		totals := ac.service.DailyTotals()
		if days > 0 {
			totals = lastNDays(totals, days)
		}
		return totals, nil
	})
}

// lastNDays keeps the n most recent day keys; they sort lexicographically.
func lastNDays(totals map[string]analytics.DayTotals, n int) map[string]analytics.DayTotals {
	if len(totals) <= n {
		return totals
	}
	keys := make([]string, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make(map[string]analytics.DayTotals, n)
	for _, k := range keys[len(keys)-n:] {
		out[k] = totals[k]
	}
	return out
}

// GetScore serves the composite productivity score, or JSON null when
// there is no data to score.
func (ac *ApiController) GetScore(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, "score", func() (any, error) {
		return ac.service.ComputeScore(), nil
	})
}

func (ac *ApiController) GetWeekTrends(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, "trends:week", func() (any, error) {
		return ac.service.WeekTrends(), nil
	})
}

func (ac *ApiController) GetAllTimeTrends(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, "trends:alltime", func() (any, error) {
		return ac.service.AllTimeTrends(), nil
	})
}

// ReceiveTargets appends a new target configuration. History is
// append-only: earlier days keep the policy that governed them.
func (ac *ApiController) ReceiveTargets(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload models.DailyTargets
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if payload.ProductiveHours < 0 || payload.WastefulMaxHours < 0 || payload.NeutralMaxHours < 0 {
		http.Error(w, "targets must be non-negative", http.StatusBadRequest)
		return
	}
	if payload.Timestamp != "" {
		if _, err := time.Parse(time.RFC3339, payload.Timestamp); err != nil {
			http.Error(w, "timestamp must be RFC3339", http.StatusBadRequest)
			return
		}
	}
	stored := ac.service.AddTargets(payload)
	writeJSON(w, http.StatusCreated, stored)
}

func (ac *ApiController) GetTargets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ac.service.GetTargetHistory())
}

// GetTargetsAt resolves the targets governing ?date=YYYY-MM-DD.
func (ac *ApiController) GetTargetsAt(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if !validDay(date) {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, ac.service.TargetsAsOf(date))
}

func (ac *ApiController) ReceiveHoliday(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload struct {
		Date string `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || !validDay(payload.Date) {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	ac.service.AddHoliday(payload.Date)
	w.WriteHeader(http.StatusCreated)
}

func (ac *ApiController) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if !validDay(date) {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	ac.service.RemoveHoliday(date)
	w.WriteHeader(http.StatusOK)
}

func (ac *ApiController) GetHolidays(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ac.service.GetHolidays())
}

func (ac *ApiController) ReceiveActivity(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload models.SavedActivity
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Activity == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	ac.service.SaveActivity(payload)
	w.WriteHeader(http.StatusCreated)
}

func (ac *ApiController) GetActivities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ac.service.GetSavedActivities())
}

// ExportLogs writes the raw log in the backup format: a pretty-printed
// JSON array with the original field names.
func (ac *ApiController) ExportLogs(w http.ResponseWriter, r *http.Request) {
	gson, err := json.MarshalIndent(ac.service.GetAllEntries(), "", "  ")
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="time_logs_backup.json"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

// ImportLogs replaces the whole log with a previously exported backup.
func (ac *ApiController) ImportLogs(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var entries []models.TimeLogEntry
	if err := json.NewDecoder(r.Body).Decode(&entries); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	for i := range entries {
		if err := entries[i].Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	ac.service.ReplaceEntries(entries)
	writeJSON(w, http.StatusOK, map[string]int{"imported": len(entries)})
}
