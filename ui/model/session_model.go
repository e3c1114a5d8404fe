package model

import (
	"time"
)

// SessionModel tracks pen-down strokes and classification results for one run.
// A stroke starts when the pointer goes down and ends when it is released.
// The zero value is ready to use.
type SessionModel struct {
	drawing     bool
	strokeStart time.Time
	lastStroke  time.Duration
	accumulated time.Duration
	strokes     int
	results     [10]int
}

// NewSessionModel returns a pointer to a ready-to-use SessionModel.
func NewSessionModel() *SessionModel { return &SessionModel{} }

// OnTick updates the model from the current pointer state and timestamp.
func (m *SessionModel) OnTick(down bool, now time.Time) {
	if m == nil {
		return
	}
	if down {
		if !m.drawing { // up -> down
			m.drawing = true
			m.strokeStart = now
			m.strokes++
		}
		m.lastStroke = now.Sub(m.strokeStart)
	} else if m.drawing { // down -> up
		m.lastStroke = now.Sub(m.strokeStart)
		m.accumulated += m.lastStroke
		m.drawing = false
	}
}

// Values returns the last stroke duration and the total pen-down time.
// The total includes the ongoing stroke.
func (m *SessionModel) Values() (stroke, total time.Duration) {
	if m == nil {
		return 0, 0
	}
	stroke = m.lastStroke
	total = m.accumulated
	if m.drawing {
		total += stroke
	}
	return
}

// Strokes returns the number of pen-down events seen.
func (m *SessionModel) Strokes() int {
	if m == nil {
		return 0
	}
	return m.strokes
}

// RecordResult counts a classification. Digits outside 0-9 are ignored.
func (m *SessionModel) RecordResult(digit int) {
	if m == nil || digit < 0 || digit >= len(m.results) {
		return
	}
	m.results[digit]++
}

// Results returns per-digit classification counts.
func (m *SessionModel) Results() [10]int {
	if m == nil {
		return [10]int{}
	}
	return m.results
}
