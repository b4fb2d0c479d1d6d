package entity

import "time"

// Lesson is a scheduled teaching session. Date and Time are the display
// strings the teacher typed; OccursAt is the source of truth, localized to
// the bot's fixed zone. Reminded flips to true exactly once, when the
// 30-minute pre-lesson notification has been dispatched.
type Lesson struct {
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Description string    `json:"description"`
	OccursAt    time.Time `json:"occurs_at"`
	Reminded    bool      `json:"reminded"`
}

// OccursOn reports whether the lesson falls on the same calendar date as
// day, compared in day's location.
func (l Lesson) OccursOn(day time.Time) bool {
	y1, m1, d1 := l.OccursAt.In(day.Location()).Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
