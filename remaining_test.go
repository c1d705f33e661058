package gcountdown

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/durationpb"
)

func TestMaxDays(t *testing.T) {
	assert.Equal(t, uint64(213503982334), MaxDays)

	r, err := NewRemaining(MaxDays, 0, 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, MaxDays, r.Days())

	_, err = NewRemaining(MaxDays+1, 0, 0, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNewRemainingOverflow(t *testing.T) {
	// MaxDays 之后剩余的余量.
	headroom := uint64(math.MaxUint64) - MaxDays*msPerDay
	hours := uint8(headroom / msPerHour)
	minutes := uint8(headroom % msPerHour / msPerMinute)
	seconds := uint8(headroom % msPerMinute / msPerSecond)
	ms := uint16(headroom % msPerSecond)

	r, err := NewRemaining(MaxDays, hours, minutes, seconds, ms)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), r.Ticks())
	assertDecomposed(t, r)

	_, err = NewRemaining(MaxDays, hours, minutes, seconds+1, ms)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNewRemainingRange(t *testing.T) {
	tests := []struct {
		name         string
		hours        uint8
		minutes      uint8
		seconds      uint8
		milliseconds uint16
		wantErr      bool
	}{
		{"Zero", 0, 0, 0, 0, false},
		{"Max", 23, 59, 59, 999, false},
		{"Hours", 24, 0, 0, 0, true},
		{"Minutes", 0, 60, 0, 0, true},
		{"Seconds", 0, 0, 60, 0, true},
		{"Milliseconds", 0, 0, 0, 1000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRemaining(7, tt.hours, tt.minutes, tt.seconds, tt.milliseconds)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArgument)
				assert.Equal(t, Remaining(0), r)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uint64(7), r.Days())
			assert.Equal(t, tt.hours, r.Hours())
			assert.Equal(t, tt.minutes, r.Minutes())
			assert.Equal(t, tt.seconds, r.Seconds())
			assert.Equal(t, tt.milliseconds, r.Milliseconds())
		})
	}
}

func TestRemainingDecompose(t *testing.T) {
	for _, v := range []uint64{0, 1, 999, 1000, 59999, 60000, 3599999, 3600000, 86399999, 86400000, 123456789012, math.MaxUint64} {
		assertDecomposed(t, Remaining(v))
	}

	r := Remaining(1*msPerDay + 2*msPerHour + 3*msPerMinute + 4*msPerSecond + 5)
	assert.Equal(t, uint64(1), r.Days())
	assert.Equal(t, uint8(2), r.Hours())
	assert.Equal(t, uint8(3), r.Minutes())
	assert.Equal(t, uint8(4), r.Seconds())
	assert.Equal(t, uint16(5), r.Milliseconds())
}

func TestRemainingString(t *testing.T) {
	assert.Equal(t, "0 hours, 0 minutes, 0 seconds and 0 milliseconds remain.", Remaining(0).String())
	assert.Equal(t, "1 hours, 2 minutes, 3 seconds and 4 milliseconds remain.",
		Remaining(msPerHour+2*msPerMinute+3*msPerSecond+4).String())
	assert.Equal(t, "2 days, 0 hours, 0 minutes, 1 seconds and 0 milliseconds remain.",
		Remaining(2*msPerDay+msPerSecond).String())
}

func TestRemainingDuration(t *testing.T) {
	r, err := RemainingFromDuration(time.Hour + 250*time.Millisecond + 999*time.Microsecond)
	require.NoError(t, err)
	assert.Equal(t, Remaining(msPerHour+250), r)
	assert.Equal(t, time.Hour+250*time.Millisecond, r.Duration())

	_, err = RemainingFromDuration(-time.Millisecond)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	assert.Equal(t, time.Duration(math.MaxInt64), Remaining(math.MaxUint64).Duration())
}

func TestRemainingDurationpb(t *testing.T) {
	r := Remaining(90*msPerSecond + 125)
	d := r.Durationpb()
	assert.Equal(t, int64(90), d.GetSeconds())
	assert.Equal(t, int32(125*time.Millisecond), d.GetNanos())
	assert.Equal(t, r.Duration(), d.AsDuration())

	back, err := RemainingFromDurationpb(d)
	require.NoError(t, err)
	assert.Equal(t, r, back)

	_, err = RemainingFromDurationpb(durationpb.New(-time.Second))
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = RemainingFromDurationpb(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
