package analytics

import (
	"time"

	"tableflip.dev/keep/pkg/commitment"
	"tableflip.dev/keep/pkg/timeutil"
)

// GrowthPoint is one calendar month of collection growth.
type GrowthPoint struct {
	Month    time.Time `json:"month"`
	Created  int       `json:"created"`
	Archived int       `json:"archived"`
	// Net carries the running created-minus-archived total across the
	// window in chronological order.
	Net int `json:"net"`
}

// Growth buckets creations and archivals per calendar month over the
// trailing window. Archivals are attributed to the month of the archived
// ledger entry, not the current date; a commitment archived more than once
// is a data anomaly and only its first entry counts.
func Growth(list []commitment.Commitment, months int, now time.Time) []GrowthPoint {
	points := make([]GrowthPoint, 0, months)
	net := 0
	for _, month := range trailingMonths(months, now) {
		point := GrowthPoint{Month: month}
		for i := range list {
			c := &list[i]
			if timeutil.At(c.CreatedAt.Time).SameMonth(month) {
				point.Created++
			}
			if archivedAt, ok := c.ArchivedAt(); ok && timeutil.At(archivedAt).SameMonth(month) {
				point.Archived++
			}
		}
		net += point.Created - point.Archived
		point.Net = net
		points = append(points, point)
	}
	return points
}
