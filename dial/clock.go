// SPDX-License-Identifier: Unlicense OR MIT

package dial

import (
	"fmt"
	"math"
	"time"
)

// Meridian tracks the half of the day selected by a time dial drag.
//
// The flag toggles when the pointer crosses the horizontal midline of the
// dial. The side of the first sample is recorded without toggling, and
// repeated samples on one side never toggle again, so jitter along the
// midline cannot flicker the flag.
type Meridian struct {
	// PM is set for the afternoon half of the day.
	PM bool

	side int8
}

// Track records a pointer sample at vertical distance dy from the dial
// center, positive upwards. It reports whether PM toggled.
func (m *Meridian) Track(dy float64) bool {
	var side int8
	switch {
	case dy > 0:
		side = 1
	case dy < 0:
		side = -1
	default:
		return false
	}
	if m.side == 0 {
		m.side = side
		return false
	}
	if side == m.side {
		return false
	}
	m.side = side
	m.PM = !m.PM
	return true
}

// Reset forgets the tracked side. Call it when a gesture ends.
func (m *Meridian) Reset() {
	m.side = 0
}

// Clock is a time of day with minute resolution.
type Clock struct {
	Hour, Minute int
}

// ClockOf returns the clock time of t.
func ClockOf(t time.Time) Clock {
	return Clock{Hour: t.Hour(), Minute: t.Minute()}
}

// PM reports whether c is in the afternoon half of the day.
func (c Clock) PM() bool {
	return c.Hour >= 12
}

// On returns c on the day of t in t's location.
func (c Clock) On(t time.Time) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, c.Hour, c.Minute, 0, 0, t.Location())
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// SetHour sets the hour from a possibly fractional value on a 12 hour
// face, in the half of the day given by pm.
func (c *Clock) SetHour(hour float64, pm bool) {
	h := int(hour) % 12
	if h < 0 {
		h += 12
	}
	if pm {
		h += 12
	}
	c.Hour = h
}

// SetMinute sets the minute from a possibly fractional value, rounded
// to five minute steps.
func (c *Clock) SetMinute(minute float64) {
	m := int(RoundMinute(minute)) % 60
	if m < 0 {
		m += 60
	}
	c.Minute = m
}

// RoundMinute rounds minute to the nearest multiple of five.
func RoundMinute(minute float64) float64 {
	return math.Round(minute/5) * 5
}

// HourAngle returns the dial angle of hour. Hours 0 and 12 sit at the
// left end of the half circle, 6 and 18 at the top.
func HourAngle(hour float64) float64 {
	return math.Mod(hour, 12) / 12 * math.Pi
}

// MinuteAngle returns the dial angle of minute.
func MinuteAngle(minute float64) float64 {
	return minute / 60 * math.Pi
}

// LabelOffset returns the offset from the dial center of a label at
// angle on a circle of the given radius, with y extending down.
func LabelOffset(radius, angle float64) Point {
	return Point{X: -math.Cos(angle) * radius, Y: -math.Sin(angle) * radius}
}

// TimeDial is the state of a half circle time picker.
type TimeDial struct {
	Clock    Clock
	Meridian Meridian
	// SelectingHour is set while the dial picks hours; otherwise it
	// picks minutes.
	SelectingHour bool
}

// NewTimeDial returns a dial showing c and picking hours.
func NewTimeDial(c Clock) *TimeDial {
	return &TimeDial{
		Clock:         c,
		Meridian:      Meridian{PM: c.PM()},
		SelectingHour: true,
	}
}

// Angle returns the marker angle for the current mode.
func (d *TimeDial) Angle() float64 {
	if d.SelectingHour {
		return HourAngle(float64(d.Clock.Hour))
	}
	return MinuteAngle(float64(d.Clock.Minute))
}

// Drag updates the dial from a plane drag at pos on a dial of the given
// radius. The dial center is at (radius, radius).
func (d *TimeDial) Drag(pos Point, radius float64) {
	dx, dy := pos.X-radius, radius-pos.Y
	fraction := LineAngle(dx, dy) / math.Pi
	if d.SelectingHour {
		d.Meridian.Track(dy)
		d.Clock.SetHour(12-fraction*12, d.Meridian.PM)
		return
	}
	d.Clock.SetMinute(60 - fraction*60)
}

// EndDrag finishes a plane drag. Picking an hour moves on to minutes.
func (d *TimeDial) EndDrag() {
	d.SelectingHour = false
	d.Meridian.Reset()
}

// Slide updates the dial from a drag along a linear track of width
// 2·radius. The left half of the track holds the morning hours.
func (d *TimeDial) Slide(x, radius float64) {
	if radius <= 0 {
		return
	}
	fraction := x / (radius * 2)
	fraction = math.Min(math.Max(fraction, 0), 1)
	if d.SelectingHour {
		if fraction > 0.5 {
			d.Meridian.PM = true
		}
		if fraction < 0.5 {
			d.Meridian.PM = false
		}
		d.Clock.SetHour(fraction*24, d.Meridian.PM)
		return
	}
	d.Clock.SetMinute(fraction * 60)
}

// EndSlide finishes a linear drag.
func (d *TimeDial) EndSlide() {
	d.SelectingHour = false
}

// TapHour selects hour directly and moves on to minutes.
func (d *TimeDial) TapHour(hour int) {
	d.Clock.SetHour(float64(hour), d.Meridian.PM)
	d.SelectingHour = false
}

// TapMinute selects minute directly.
func (d *TimeDial) TapMinute(minute int) {
	d.Clock.SetMinute(float64(minute))
}

// SetPM switches the half of the day, keeping the hour on the face.
func (d *TimeDial) SetPM(pm bool) {
	d.Meridian.PM = pm
	d.Clock.SetHour(float64(d.Clock.Hour), pm)
}
