// Package humidity maps raw soil-moisture values reported by the remote
// device onto a 0-100 percentage where 100 is the wettest soil.
package humidity

import (
	"math"
	"time"
)

// Raw domain observed on the device. Larger raw values mean drier soil.
const (
	RawWet = 700.0  // saturated soil
	RawDry = 1000.0 // dry soil
)

// Reading is a single humidity sample as shown on the panel.
type Reading struct {
	Raw     float64   // value reported by /gethumidity
	Percent int       // normalized, 0 = driest, 100 = wettest
	Time    time.Time // when the response arrived
}

// NewReading normalizes raw and stamps it with t.
func NewReading(raw float64, t time.Time) Reading {
	return Reading{Raw: raw, Percent: Normalize(raw), Time: t}
}

// Normalize inverts and scales a raw value linearly so that RawWet maps to
// 100 and RawDry to 0. The result is floored and clamped to [0, 100];
// out-of-domain input is clamped, never rejected.
func Normalize(raw float64) int {
	v := math.Floor(100 - ((raw-RawWet)/(RawDry-RawWet))*100)
	switch {
	case v >= 100:
		return 100
	case v > 0:
		return int(v)
	default:
		// also catches NaN
		return 0
	}
}
