package driver

import "time"

// TimerSystem 定时器系统. Periodic 驱动器基于它实现周期触发.
type TimerSystem interface {
	// StartTimer 启动定时器. periodic 为 true 时，每隔 delay 触发一次.
	StartTimer(delay time.Duration, periodic bool, args any, f TimerFunc) TimerId

	// StopTimer 停止定时器. 对不存在的定时器无效.
	StopTimer(tid TimerId)
}

// TimerId 定时器ID.
type TimerId = uint64

// TimerIdNone 无效定时器ID.
const TimerIdNone = 0

// TimerArgs 定时器回调参数.
type TimerArgs struct {
	TID  TimerId // 定时器ID.
	Args any     // 启动时传入的参数.
}

// TimerFunc 定时器回调函数.
type TimerFunc func(*TimerArgs)
