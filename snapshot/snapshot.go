package snapshot

import (
	"strconv"
	"time"
)

// Meridian is either [AM] or [PM].
type Meridian string

const (
	AM Meridian = "am"
	PM Meridian = "pm"
)

// MeridianOf returns AM for hours before noon and PM otherwise.
func MeridianOf(hour int) Meridian {
	if hour < 12 {
		return AM
	}
	return PM
}

// DigitPair is one clock field split into its decimal digits. It is only
// meaningful for raw values in [0, 99], which every clock field satisfies.
type DigitPair struct {
	Tens int `json:"tens" yaml:"tens"`
	Ones int `json:"ones" yaml:"ones"`
	Raw  int `json:"raw" yaml:"raw"`
}

// Split builds the DigitPair for n. The caller must ensure 0 <= n <= 99.
func Split(n int) DigitPair {
	return DigitPair{
		Tens: n / 10,
		Ones: n % 10,
		Raw:  n,
	}
}

// String returns the raw value without padding.
func (p DigitPair) String() string {
	return strconv.Itoa(p.Raw)
}

// Padded returns the raw value zero-padded to two digits.
func (p DigitPair) Padded() string {
	return ZeroPad(p.Raw)
}

// ZeroPad formats n with a leading zero when n < 10. Like [Split], it is only
// defined for 0 <= n <= 99.
func ZeroPad(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// TwelveHour converts a 24-hour value to the 12-hour dial, where both 0 and
// 12 read as 12.
func TwelveHour(hour int) int {
	if h := hour % 12; h != 0 {
		return h
	}
	return 12
}

// Snapshot is the decomposition of a single instant.
type Snapshot struct {
	Hours    DigitPair `json:"hours" yaml:"hours"`
	Minutes  DigitPair `json:"minutes" yaml:"minutes"`
	Seconds  DigitPair `json:"seconds" yaml:"seconds"`
	Meridian Meridian  `json:"meridian" yaml:"meridian"`
}

// Decompose builds the Snapshot for t in t's location. Sub-second precision
// is dropped.
func Decompose(t time.Time) Snapshot {
	hour, min, sec := t.Clock()
	return New(hour, min, sec)
}

// New builds a Snapshot from raw clock fields. The hour must be in [0, 23]
// and minute and second in [0, 59]; other values produce meaningless digits.
func New(hour, min, sec int) Snapshot {
	return Snapshot{
		Hours:    Split(hour),
		Minutes:  Split(min),
		Seconds:  Split(sec),
		Meridian: MeridianOf(hour),
	}
}

// TwelveHour returns a copy of s whose Hours field is projected onto the
// 12-hour dial. The meridian is kept from the 24-hour value.
func (s Snapshot) TwelveHour() Snapshot {
	s.Hours = Split(TwelveHour(s.Hours.Raw))
	return s
}
