// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"strconv"
	"strings"
	"time"

	"gioui.org/layout"
	"gioui.org/op"

	"github.com/cactuskit/cactus/motion"
)

// Ticker shows a number as columns of rolling digits.
type Ticker struct {
	// Value to show.
	Value float64
	// IntegerDigits is the fixed number of digits before the point.
	// Larger values lose their leading digits.
	IntegerDigits int
	// FractionDigits is the fixed number of digits after the point.
	FractionDigits int

	columns []motion.Tween
}

// Column is a position in the formatted number.
type Column struct {
	// Rune is the character shown in a fixed column.
	Rune rune
	// Digit reports whether the column rolls.
	Digit bool
	// Position is the animated digit, a value in [0, 9].
	Position float64
}

// NewTicker returns a ticker with two integer and three fraction
// digits.
func NewTicker() *Ticker {
	return &Ticker{IntegerDigits: 2, FractionDigits: 3}
}

// Format returns v with exactly the given number of integer and
// fraction digits.
func Format(v float64, integer, fraction int) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := strconv.FormatFloat(v, 'f', max(fraction, 0), 64)
	ip, fp, _ := strings.Cut(s, ".")
	if integer > 0 {
		if len(ip) < integer {
			ip = strings.Repeat("0", integer-len(ip)) + ip
		}
		ip = ip[len(ip)-integer:]
	}
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(ip)
	if fraction > 0 {
		b.WriteByte('.')
		b.WriteString(fp)
	}
	return b.String()
}

// Update returns the columns of the ticker at the frame time of gtx.
func (t *Ticker) Update(gtx layout.Context) []Column {
	cols := t.columnsAt(gtx.Now)
	for i := range t.columns {
		if t.columns[i].Running(gtx.Now) {
			gtx.Execute(op.InvalidateCmd{})
			break
		}
	}
	return cols
}

func (t *Ticker) columnsAt(now time.Time) []Column {
	s := Format(t.Value, t.IntegerDigits, t.FractionDigits)
	cols := make([]Column, 0, len(s))
	for i, r := range []rune(s) {
		if i >= len(t.columns) {
			t.columns = append(t.columns, motion.Tween{
				Duration: 350 * time.Millisecond,
				Curve:    motion.EaseInOut,
			})
		}
		tw := &t.columns[i]
		if r < '0' || r > '9' {
			cols = append(cols, Column{Rune: r})
			continue
		}
		tw.Animate(now, float64(r-'0'))
		cols = append(cols, Column{Rune: r, Digit: true, Position: tw.Value(now)})
	}
	t.columns = t.columns[:len(cols)]
	return cols
}
