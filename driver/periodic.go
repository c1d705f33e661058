package driver

import (
	"sync"
	"time"
)

// Periodic 基于 TimerSystem 的周期驱动器.
type Periodic struct {
	mtx      sync.Mutex
	ts       TimerSystem
	interval time.Duration
	fire     func()
	tid      TimerId // 当前周期定时器, 未运行时为 TimerIdNone.
}

// NewPeriodic 构造 Periodic.
func NewPeriodic(ts TimerSystem, interval time.Duration, fire func()) *Periodic {
	if ts == nil {
		panic("timer system is nil")
	}

	if interval <= 0 {
		panic("interval must > 0")
	}

	if fire == nil {
		panic("fire func is nil")
	}

	return &Periodic{
		ts:       ts,
		interval: interval,
		fire:     fire,
	}
}

// PeriodicCreator 返回在 ts 上创建 Periodic 的构造器.
func PeriodicCreator(ts TimerSystem) Creator {
	return func(interval time.Duration, fire func()) Driver {
		return NewPeriodic(ts, interval, fire)
	}
}

// Start 启动周期定时器.
// 若 TimerSystem 已停止，定时器无法启动，Running 保持 false.
func (p *Periodic) Start() {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if p.tid != TimerIdNone {
		return
	}

	p.tid = p.ts.StartTimer(p.interval, true, nil, p.onTimer)
}

// Stop 停止周期定时器.
func (p *Periodic) Stop() {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if p.tid == TimerIdNone {
		return
	}

	p.ts.StopTimer(p.tid)
	p.tid = TimerIdNone
}

// Running 返回是否在运行.
func (p *Periodic) Running() bool {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	return p.tid != TimerIdNone
}

// Interval 返回触发间隔.
func (p *Periodic) Interval() time.Duration {
	return p.interval
}

// onTimer 定时器回调.
func (p *Periodic) onTimer(args *TimerArgs) {
	p.mtx.Lock()
	// 停止或重启之后，旧定时器可能仍有一次已出队的触发.
	current := args.TID == p.tid
	p.mtx.Unlock()

	if current {
		p.fire()
	}
}
