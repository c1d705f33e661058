package gcountdown

import (
	"fmt"
	"math"
	"math/bits"
	"strings"
	"time"

	pkgerrors "github.com/pkg/errors"
	"google.golang.org/protobuf/types/known/durationpb"
)

// 各时间单位对应的毫秒数.
const (
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
)

// MaxDays 允许的最大天数.
// MaxDays*msPerDay 是不超过 uint64 上限的最大整天毫秒数, 余量约 14 小时.
const MaxDays uint64 = math.MaxUint64 / msPerDay

// Remaining 剩余时间, 单位毫秒.
// 天、时、分、秒、毫秒均由它计算得出，因此彼此之间永远一致.
type Remaining uint64

// NewRemaining 根据各时间单位构造 Remaining.
// hours < 24, minutes < 60, seconds < 60, milliseconds < 1000, days <= MaxDays,
// 且总毫秒数不能溢出 uint64. 否则返回 ErrInvalidArgument.
func NewRemaining(days uint64, hours, minutes, seconds uint8, milliseconds uint16) (Remaining, error) {
	if days > MaxDays {
		return 0, pkgerrors.WithMessagef(ErrInvalidArgument, "days %d must <= %d", days, MaxDays)
	}
	if hours >= 24 {
		return 0, pkgerrors.WithMessagef(ErrInvalidArgument, "hours %d must < 24", hours)
	}
	if minutes >= 60 {
		return 0, pkgerrors.WithMessagef(ErrInvalidArgument, "minutes %d must < 60", minutes)
	}
	if seconds >= 60 {
		return 0, pkgerrors.WithMessagef(ErrInvalidArgument, "seconds %d must < 60", seconds)
	}
	if milliseconds >= 1000 {
		return 0, pkgerrors.WithMessagef(ErrInvalidArgument, "milliseconds %d must < 1000", milliseconds)
	}

	rest := uint64(hours)*msPerHour + uint64(minutes)*msPerMinute + uint64(seconds)*msPerSecond + uint64(milliseconds)
	total, carry := bits.Add64(days*msPerDay, rest, 0)
	if carry != 0 {
		return 0, pkgerrors.WithMessagef(ErrInvalidArgument, "%d days %d ms overflows uint64 milliseconds", days, rest)
	}

	return Remaining(total), nil
}

// RemainingFromDuration 将 d 截断到毫秒后转换为 Remaining. d 不能为负.
func RemainingFromDuration(d time.Duration) (Remaining, error) {
	if d < 0 {
		return 0, pkgerrors.WithMessagef(ErrInvalidArgument, "duration %s must >= 0", d)
	}
	return Remaining(d.Milliseconds()), nil
}

// RemainingFromDurationpb 将 protobuf Duration 转换为 Remaining.
func RemainingFromDurationpb(d *durationpb.Duration) (Remaining, error) {
	if err := d.CheckValid(); err != nil {
		return 0, pkgerrors.WithMessage(ErrInvalidArgument, err.Error())
	}
	if d.GetSeconds() < 0 || d.GetNanos() < 0 {
		return 0, pkgerrors.WithMessagef(ErrInvalidArgument, "duration %ds %dns must >= 0", d.GetSeconds(), d.GetNanos())
	}
	return Remaining(uint64(d.GetSeconds())*msPerSecond + uint64(d.GetNanos())/uint64(time.Millisecond)), nil
}

// Ticks 总毫秒数.
func (r Remaining) Ticks() uint64 { return uint64(r) }

// IsZero 是否已经归零.
func (r Remaining) IsZero() bool { return r == 0 }

// Days 剩余天数.
func (r Remaining) Days() uint64 { return uint64(r) / msPerDay }

// Hours 剩余小时, [0, 23].
func (r Remaining) Hours() uint8 { return uint8(uint64(r) % msPerDay / msPerHour) }

// Minutes 剩余分钟, [0, 59].
func (r Remaining) Minutes() uint8 { return uint8(uint64(r) % msPerHour / msPerMinute) }

// Seconds 剩余秒, [0, 59].
func (r Remaining) Seconds() uint8 { return uint8(uint64(r) % msPerMinute / msPerSecond) }

// Milliseconds 剩余毫秒, [0, 999].
func (r Remaining) Milliseconds() uint16 { return uint16(uint64(r) % msPerSecond) }

// Duration 转换为 time.Duration. 超出 time.Duration 表示范围时取最大值.
func (r Remaining) Duration() time.Duration {
	if uint64(r) > uint64(math.MaxInt64/int64(time.Millisecond)) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(r) * time.Millisecond
}

// Durationpb 转换为 protobuf Duration.
// 超过约 10000 年的值超出 protobuf Duration 的合法范围, CheckValid 会返回错误.
func (r Remaining) Durationpb() *durationpb.Duration {
	return &durationpb.Duration{
		Seconds: int64(uint64(r) / msPerSecond),
		Nanos:   int32(uint64(r)%msPerSecond) * int32(time.Millisecond),
	}
}

func (r Remaining) String() string {
	var sb strings.Builder
	if days := r.Days(); days > 0 {
		fmt.Fprintf(&sb, "%d days, ", days)
	}
	fmt.Fprintf(&sb, "%d hours, %d minutes, %d seconds and %d milliseconds remain.",
		r.Hours(), r.Minutes(), r.Seconds(), r.Milliseconds())
	return sb.String()
}
