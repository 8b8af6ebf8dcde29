package state

import (
	"time"

	"go.uber.org/zap"

	"tableflip.dev/keep/pkg/lifecycle"
	"tableflip.dev/keep/pkg/recurrence"
)

// Sweep applies the one automatic transition: ending commitments whose end
// date has passed are archived with an auto-archive note. It runs once after
// load and is idempotent, so re-running at any time is safe. Returns the
// number of commitments archived.
func (d *Document) Sweep(now time.Time, log *zap.Logger) int {
	if log == nil {
		log = zap.NewNop()
	}
	archived := 0
	for i := range d.Commitments {
		c := &d.Commitments[i]
		if !recurrence.ShouldAutoArchive(c, now) {
			continue
		}
		if _, err := lifecycle.Archive(c, lifecycle.AutoArchive, now); err != nil {
			// ShouldAutoArchive only selects non-archived commitments, so
			// a failure here means the document is inconsistent.
			log.Warn("state: sweep could not archive", zap.String("id", c.ID), zap.Error(err))
			continue
		}
		archived++
	}
	if archived > 0 {
		log.Info("state: sweep archived expired commitments", zap.Int("count", archived))
	}
	return archived
}
