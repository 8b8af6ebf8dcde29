package app

import (
	"go.uber.org/zap"

	"tableflip.dev/keep/pkg/state"
)

// Export serialises the whole document for backup. The export format is the
// same plain serialization the store uses, so round-trips are exact.
func (s *Service) Export() ([]byte, error) {
	return state.Encode(s.Doc)
}

// ImportReplace validates the blob by full decode and replaces the current
// document. A blob that fails to decode is rejected; nothing is merged.
func (s *Service) ImportReplace(data []byte) error {
	doc, err := state.Import(data)
	if err != nil {
		return err
	}
	s.Doc = doc
	if archived := s.Doc.Sweep(s.now(), s.Log); archived > 0 {
		s.Log.Info("app: import sweep archived commitments", zap.Int("count", archived))
	}
	return s.save()
}
