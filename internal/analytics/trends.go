package analytics

import (
	"sort"
	"time"

	"tod/internal/models"
)

// DayTrend is one chart point.
type DayTrend struct {
	Date              string  `json:"date"`
	ProductiveMinutes int     `json:"productiveMinutes"`
	WastefulMinutes   int     `json:"wastefulMinutes"`
	NeutralMinutes    int     `json:"neutralMinutes"`
	TotalMinutes      int     `json:"totalMinutes"`
	ProductivityPct   float64 `json:"dayProductivityPercent"`
}

// WeekSummary is the trailing 7-day window ending today, oldest first.
type WeekSummary struct {
	Days                 []DayTrend `json:"days"`
	MostProductiveDay    string     `json:"mostProductiveDay"`
	TotalProductiveHours float64    `json:"totalProductiveHours"`
	// ImprovementRate compares the mean productivity percentage of days
	// 4-7 against days 1-3. ImprovementDefined is false when the first
	// half averages zero; the rate is then reported as 0, never Inf/NaN.
	ImprovementRate    float64 `json:"improvementRate"`
	ImprovementDefined bool    `json:"improvementDefined"`
}

type ActivityTotal struct {
	Activity string `json:"activity"`
	Minutes  int    `json:"minutes"`
}

// AllTimeSummary covers the unbounded window from the earliest logged
// entry. Days is sparse: only days with at least one entry appear.
type AllTimeSummary struct {
	StartDate            string          `json:"startDate"`
	Days                 []DayTrend      `json:"days"`
	TotalMinutes         int             `json:"totalMinutes"`
	ProductiveMinutes    int             `json:"productiveMinutes"`
	WastefulMinutes      int             `json:"wastefulMinutes"`
	NeutralMinutes       int             `json:"neutralMinutes"`
	MostProductiveDay    string          `json:"mostProductiveDay"`
	TotalProductiveHours float64         `json:"totalProductiveHours"`
	ImprovementRate      float64         `json:"improvementRate"`
	ImprovementDefined   bool            `json:"improvementDefined"`
	TopProductive        []ActivityTotal `json:"topProductive"`
	TopNeutral           []ActivityTotal `json:"topNeutral"`
	TopWasteful          []ActivityTotal `json:"topWasteful"`
}

func dayTrend(date string, t DayTotals) DayTrend {
	trend := DayTrend{
		Date:              date,
		ProductiveMinutes: t.Productive,
		WastefulMinutes:   t.Wasteful,
		NeutralMinutes:    t.Neutral,
		TotalMinutes:      t.Total(),
	}
	if trend.TotalMinutes > 0 {
		trend.ProductivityPct = float64(t.Productive) / float64(trend.TotalMinutes) * 100
	}
	return trend
}

// WeekTrends builds the fixed 7-day window including today. Absent days
// appear as all-zero points so the chart always has seven columns.
func WeekTrends(entries []models.TimeLogEntry, loc *time.Location, now time.Time) WeekSummary {
	totals := GroupByDay(entries, loc)

	days := make([]DayTrend, 0, 7)
	for i := 6; i >= 0; i-- {
		date := DayKey(now.AddDate(0, 0, -i), loc)
		days = append(days, dayTrend(date, totals[date]))
	}

	summary := WeekSummary{
		Days:              days,
		MostProductiveDay: mostProductiveDay(days),
	}
	productiveMinutes := 0
	for _, d := range days {
		productiveMinutes += d.ProductiveMinutes
	}
	summary.TotalProductiveHours = float64(productiveMinutes) / 60
	summary.ImprovementRate, summary.ImprovementDefined = improvementRate(days, 3)
	return summary
}

// AllTimeTrends summarises the full log. Returns nil when no entry has a
// usable timestamp, mirroring the score contract.
func AllTimeTrends(entries []models.TimeLogEntry, loc *time.Location) *AllTimeSummary {
	totals := GroupByDay(entries, loc)
	if len(totals) == 0 {
		return nil
	}

	dates := make([]string, 0, len(totals))
	for d := range totals {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	days := make([]DayTrend, 0, len(dates))
	for _, d := range dates {
		days = append(days, dayTrend(d, totals[d]))
	}

	summary := &AllTimeSummary{
		StartDate:         dates[0],
		Days:              days,
		MostProductiveDay: mostProductiveDay(days),
	}
	for _, d := range days {
		summary.TotalMinutes += d.TotalMinutes
		summary.ProductiveMinutes += d.ProductiveMinutes
		summary.WastefulMinutes += d.WastefulMinutes
		summary.NeutralMinutes += d.NeutralMinutes
	}
	summary.TotalProductiveHours = float64(summary.ProductiveMinutes) / 60
	summary.ImprovementRate, summary.ImprovementDefined = improvementRate(days, len(days)/2)

	byActivity := activityMinutes(entries, loc)
	summary.TopProductive = topActivities(byActivity[models.CategoryProductive], 3)
	summary.TopNeutral = topActivities(byActivity[models.CategoryNeutral], 3)
	summary.TopWasteful = topActivities(byActivity[models.CategoryWasteful], 3)
	return summary
}

// mostProductiveDay picks the highest absolute productive minutes; ties go
// to the earliest date since days are ordered ascending.
func mostProductiveDay(days []DayTrend) string {
	if len(days) == 0 {
		return ""
	}
	best := days[0]
	for _, d := range days[1:] {
		if d.ProductiveMinutes > best.ProductiveMinutes {
			best = d
		}
	}
	return best.Date
}

// improvementRate compares the mean productivity percentage before and
// after the split index. Undefined when either half is empty or the first
// half averages zero.
func improvementRate(days []DayTrend, split int) (float64, bool) {
	if split <= 0 || split >= len(days) {
		return 0, false
	}
	firstAvg := meanPct(days[:split])
	secondAvg := meanPct(days[split:])
	if firstAvg == 0 {
		return 0, false
	}
	return (secondAvg - firstAvg) / firstAvg * 100, true
}

func meanPct(days []DayTrend) float64 {
	sum := 0.0
	for _, d := range days {
		sum += d.ProductivityPct
	}
	return sum / float64(len(days))
}

func activityMinutes(entries []models.TimeLogEntry, loc *time.Location) map[models.Category]map[string]int {
	out := make(map[models.Category]map[string]int)
	for i := range entries {
		if _, ok := EntryDayKey(&entries[i], loc); !ok {
			continue
		}
		m := out[entries[i].Category]
		if m == nil {
			m = make(map[string]int)
			out[entries[i].Category] = m
		}
		m[entries[i].Activity] += entries[i].DurationMinutes()
	}
	return out
}

func topActivities(minutes map[string]int, n int) []ActivityTotal {
	out := make([]ActivityTotal, 0, len(minutes))
	for activity, m := range minutes {
		out = append(out, ActivityTotal{Activity: activity, Minutes: m})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Minutes != out[j].Minutes {
			return out[i].Minutes > out[j].Minutes
		}
		return out[i].Activity < out[j].Activity
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
