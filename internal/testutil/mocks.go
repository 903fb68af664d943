package testutil

import (
	"sync"
	"time"

	"tod/internal/analytics"
	"tod/internal/models"
	"tod/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// MockTimeLogService implements services.TimeLogServiceInterface with
// injectable canned data.
type MockTimeLogService struct {
	mu sync.Mutex

	Entries       []models.TimeLogEntry
	AddedEntries  []models.TimeLogEntry
	DeletedIds    []string
	DeleteResult  int
	Replaced      [][]models.TimeLogEntry
	Targets       []models.DailyTargets
	AsOfResult    models.DailyTargets
	Holidays      []string
	Activities    []models.SavedActivity
	Totals        map[string]analytics.DayTotals
	TodayKey      string
	ScoreResult   *analytics.Score
	WeekResult    analytics.WeekSummary
	AllTimeResult *analytics.AllTimeSummary
	Snapshot      *models.Storage
	PutCalls      []*models.Storage
}

func (m *MockTimeLogService) AddEntry(e models.TimeLogEntry) models.TimeLogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	e.Normalize()
	if e.ID == "" {
		e.ID = "mock-id"
	}
	if e.Timestamp == "" {
		e.Timestamp = time.Now().Format(time.RFC3339)
	}
	m.AddedEntries = append(m.AddedEntries, e)
	return e
}

func (m *MockTimeLogService) GetAllEntries() []models.TimeLogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Entries
}

func (m *MockTimeLogService) GetDayEntries(day string) []models.TimeLogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.TimeLogEntry, 0)
	for _, e := range m.Entries {
		if len(e.Timestamp) >= 10 && e.Timestamp[:10] == day {
			out = append(out, e)
		}
	}
	return out
}

func (m *MockTimeLogService) DeleteEntries(ids []string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeletedIds = append(m.DeletedIds, ids...)
	return m.DeleteResult
}

func (m *MockTimeLogService) ReplaceEntries(entries []models.TimeLogEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Replaced = append(m.Replaced, entries)
	m.Entries = entries
}

func (m *MockTimeLogService) EntryCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Entries)
}

func (m *MockTimeLogService) AddTargets(t models.DailyTargets) models.DailyTargets {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t.Timestamp == "" {
		t.Timestamp = time.Now().Format(time.RFC3339)
	}
	m.Targets = append(m.Targets, t)
	return t
}

func (m *MockTimeLogService) GetTargetHistory() []models.DailyTargets {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Targets
}

func (m *MockTimeLogService) TargetsAsOf(day string) models.DailyTargets {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.AsOfResult
}

func (m *MockTimeLogService) AddHoliday(day string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Holidays = append(m.Holidays, day)
}

func (m *MockTimeLogService) RemoveHoliday(day string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.Holidays[:0]
	for _, h := range m.Holidays {
		if h != day {
			kept = append(kept, h)
		}
	}
	m.Holidays = kept
}

func (m *MockTimeLogService) GetHolidays() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Holidays
}

func (m *MockTimeLogService) SaveActivity(a models.SavedActivity) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Activities = append(m.Activities, a)
}

func (m *MockTimeLogService) GetSavedActivities() []models.SavedActivity {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Activities
}

func (m *MockTimeLogService) DailyTotals() map[string]analytics.DayTotals {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Totals
}

func (m *MockTimeLogService) TodayTotals() analytics.DayTotals {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Totals[m.TodayKey]
}

func (m *MockTimeLogService) Today() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.TodayKey
}

func (m *MockTimeLogService) ComputeScore() *analytics.Score {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ScoreResult
}

func (m *MockTimeLogService) WeekTrends() analytics.WeekSummary {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.WeekResult
}

func (m *MockTimeLogService) AllTimeTrends() *analytics.AllTimeSummary {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.AllTimeResult
}

func (m *MockTimeLogService) GetSnapshot() *models.Storage {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Snapshot != nil {
		return m.Snapshot
	}
	return &models.Storage{Version: models.StorageVersion, Entries: m.Entries}
}

func (m *MockTimeLogService) PutSnapshot(s *models.Storage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PutCalls = append(m.PutCalls, s)
	if s != nil {
		m.Entries = s.Entries
	}
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	// Default: return as-is (identity)
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Close() {}

// MockMetrics implements providers.MetricsProviderInterface and records
// gauge values.
type MockMetrics struct {
	mu           sync.Mutex
	Requests     int
	CacheHits    int
	CacheMisses  int
	Persists     int
	LastScore    float64
	LastDays     int
	ScoreUpdates int
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests++
}

func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}

func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}

func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}

func (m *MockMetrics) ObservePersistenceDuration(_ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Persists++
}

func (m *MockMetrics) SetProductivityScore(score float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastScore = score
	m.ScoreUpdates++
}

func (m *MockMetrics) SetTrackedDays(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastDays = count
}
