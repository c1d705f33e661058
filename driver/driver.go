// Package driver 提供倒计时使用的周期驱动器.
//
// Driver 以固定间隔调用注册的回调，可启动、停止. 包内提供两种实现:
//   - Periodic: 基于 TimerSystem(例如 TimerHeap) 的周期定时器.
//   - Manual: 由宿主主动调用 Fire 触发，适用于自带主循环的程序以及测试.
package driver

import "time"

// Driver 周期驱动器.
type Driver interface {
	// Start 启动驱动器. 已启动时无效.
	Start()

	// Stop 停止驱动器. 已停止时无效.
	Stop()

	// Running 返回驱动器是否在运行.
	Running() bool

	// Interval 返回触发间隔.
	Interval() time.Duration
}

// Creator 驱动器构造器. fire 在每次间隔到达时被调用.
type Creator func(interval time.Duration, fire func()) Driver

var (
	_ Driver      = (*Periodic)(nil)
	_ Driver      = (*Manual)(nil)
	_ TimerSystem = (*TimerHeap)(nil)
)
