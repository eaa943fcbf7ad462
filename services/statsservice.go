package services

import (
	"sort"
	"time"

	"bloodlink/model"

	"cloud.google.com/go/firestore/apiv1/firestorepb"
)

// AverageResponseTime is reported as-is in user stats. There is no computed
// metric behind it yet.
const AverageResponseTime = "24 hours"

type MonthlyCount struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Count int `json:"count"`
}

type DonorSummary struct {
	DonationsDone         int    `json:"donationsDone"`
	TotalRequests         int    `json:"totalRequests"`
	ActiveRequests        int    `json:"activeRequests"`
	CurrentMonthDonations int    `json:"currentMonthDonations"`
	Level                 string `json:"level"`
}

// ParseDonationDate parses a stored donation date. Unparsable or missing
// dates resolve to the fallback instead of being dropped, so every request
// lands in some monthly bucket.
func ParseDonationDate(s string, fallback time.Time) time.Time {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return fallback
}

func RequestStatusCounts(reqs []model.DonationRequest) map[string]int {
	counts := make(map[string]int)
	for _, r := range reqs {
		counts[r.Status]++
	}
	return counts
}

func UserStatusCounts(users []model.User) map[string]int {
	counts := make(map[string]int)
	for _, u := range users {
		counts[u.Status]++
	}
	return counts
}

// MonthlyRequestCounts groups requests by (year, month) of their donation
// date, sorted chronologically.
func MonthlyRequestCounts(reqs []model.DonationRequest, now time.Time) []MonthlyCount {
	buckets := make(map[[2]int]int)
	for _, r := range reqs {
		t := ParseDonationDate(r.DonationDate, now)
		buckets[[2]int{t.Year(), int(t.Month())}]++
	}

	series := make([]MonthlyCount, 0, len(buckets))
	for key, count := range buckets {
		series = append(series, MonthlyCount{Year: key[0], Month: key[1], Count: count})
	}
	sort.Slice(series, func(i, j int) bool {
		if series[i].Year != series[j].Year {
			return series[i].Year < series[j].Year
		}
		return series[i].Month < series[j].Month
	})
	return series
}

// DonorLevel maps a completed-donation count onto the badge shown on the
// donor dashboard.
func DonorLevel(done int) string {
	switch {
	case done >= 10:
		return "Gold"
	case done >= 5:
		return "Silver"
	default:
		return "Bronze"
	}
}

// BuildDonorSummary derives per-user stats from the user's own requests and
// the requests they donated to.
func BuildDonorSummary(mine, donated []model.DonationRequest, now time.Time) DonorSummary {
	var s DonorSummary
	s.TotalRequests = len(mine)

	for _, r := range mine {
		if r.Status == model.RequestPending || r.Status == model.RequestInProgress {
			s.ActiveRequests++
		}
	}

	for _, r := range donated {
		if r.Status != model.RequestDone {
			continue
		}
		s.DonationsDone++
		t := ParseDonationDate(r.DonationDate, now)
		if t.Year() == now.Year() && t.Month() == now.Month() {
			s.CurrentMonthDonations++
		}
	}

	s.Level = DonorLevel(s.DonationsDone)
	return s
}

// AggregateInt extracts an integer from a Firestore aggregation result.
// Sums come back as integer or double values depending on the stored field
// types.
func AggregateInt(v interface{}) int64 {
	value, ok := v.(*firestorepb.Value)
	if !ok || value == nil {
		return 0
	}
	if d, ok := value.ValueType.(*firestorepb.Value_DoubleValue); ok {
		return int64(d.DoubleValue)
	}
	return value.GetIntegerValue()
}
