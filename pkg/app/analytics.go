package app

import (
	"time"

	"tableflip.dev/keep/pkg/analytics"
)

// Analytics calls operate on a deep-copied snapshot, so callers may run them
// on a background goroutine while the CLI keeps mutating the document.

func (s *Service) Activity(months int) []analytics.DayCount {
	return analytics.ActivityDistribution(s.Doc.Snapshot(), months, s.now())
}

func (s *Service) Trends(months int) []analytics.TrendPoint {
	return analytics.CategoryTrends(s.Doc.Snapshot(), s.Doc.Lookup(), months, s.now())
}

func (s *Service) Growth(months int) []analytics.GrowthPoint {
	return analytics.Growth(s.Doc.Snapshot(), months, s.now())
}

func (s *Service) Heatmap(month time.Time) analytics.Heatmap {
	return analytics.MonthHeatmap(s.Doc.Snapshot(), month, s.now())
}

func (s *Service) Summary() analytics.Summary {
	return analytics.Summarize(s.Doc.Snapshot(), s.now())
}
