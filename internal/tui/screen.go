package tui

import (
	"github.com/BerylCAtieno/document-summarizer-widget/internal/models"
)

// screen is the widget's presenter: the state View draws from.
type screen struct {
	status        string
	resultVisible bool
	summary       string
	snippet       string
	alert         string

	lengths   []string
	lengthIdx int
}

func newScreen(length string) *screen {
	s := &screen{lengths: models.Lengths, lengthIdx: 1}
	for i, l := range s.lengths {
		if l == length {
			s.lengthIdx = i
		}
	}
	return s
}

func (s *screen) ShowStatus(text string) { s.status = text }
func (s *screen) RevealResult()          { s.resultVisible = true }
func (s *screen) HideResult()            { s.resultVisible = false }
func (s *screen) SetSummary(text string) { s.summary = text }
func (s *screen) SetSnippet(text string) { s.snippet = text }
func (s *screen) Alert(text string)      { s.alert = text }

func (s *screen) Length() string {
	return s.lengths[s.lengthIdx]
}

func (s *screen) cycleLength() {
	s.lengthIdx = (s.lengthIdx + 1) % len(s.lengths)
}
