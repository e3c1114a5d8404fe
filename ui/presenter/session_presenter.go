package presenter

import (
	"log/slog"
	"time"

	"github.com/soocke/digitpad-go/ui/model"
)

// SessionPresenter feeds pointer state and results into the session model
// and reports the totals to the log.
type SessionPresenter struct {
	sess    *model.SessionModel
	logger  *slog.Logger
	wasDown bool
}

// NewSessionPresenter returns a new SessionPresenter. logger may be nil.
func NewSessionPresenter(sess *model.SessionModel, logger *slog.Logger) *SessionPresenter {
	return &SessionPresenter{sess: sess, logger: logger}
}

// Tick advances the session model with the pointer state at now.
func (p *SessionPresenter) Tick(down bool, now time.Time) {
	if p == nil || p.sess == nil {
		return
	}
	p.sess.OnTick(down, now)
	if p.wasDown && !down && p.logger != nil {
		stroke, _ := p.sess.Values()
		p.logger.Debug("stroke finished", "duration", stroke)
	}
	p.wasDown = down
}

// Classified records a classification result.
func (p *SessionPresenter) Classified(digit int) {
	if p == nil {
		return
	}
	p.sess.RecordResult(digit)
}

// Report logs the session totals.
func (p *SessionPresenter) Report() {
	if p == nil || p.sess == nil || p.logger == nil {
		return
	}
	_, total := p.sess.Values()
	results := p.sess.Results()
	p.logger.Info("session summary",
		"strokes", p.sess.Strokes(),
		"pen_down", total,
		"results", results[:],
	)
}
