package driver

import (
	"sync"
	"time"
)

// Manual 手动驱动器. 不创建任何 goroutine，由宿主调用 Fire 模拟间隔到达.
type Manual struct {
	mtx      sync.Mutex
	interval time.Duration
	fire     func()
	running  bool
	fired    uint64 // 累计触发次数.
}

// NewManual 构造 Manual.
func NewManual(interval time.Duration, fire func()) *Manual {
	if interval <= 0 {
		panic("interval must > 0")
	}

	if fire == nil {
		panic("fire func is nil")
	}

	return &Manual{
		interval: interval,
		fire:     fire,
	}
}

// ManualCreator 创建 Manual 的构造器.
func ManualCreator(interval time.Duration, fire func()) Driver {
	return NewManual(interval, fire)
}

func (m *Manual) Start() {
	m.mtx.Lock()
	m.running = true
	m.mtx.Unlock()
}

func (m *Manual) Stop() {
	m.mtx.Lock()
	m.running = false
	m.mtx.Unlock()
}

func (m *Manual) Running() bool {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	return m.running
}

func (m *Manual) Interval() time.Duration {
	return m.interval
}

// Fired 返回累计触发次数.
func (m *Manual) Fired() uint64 {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	return m.fired
}

// Fire 在运行状态下最多触发 n 次，返回实际触发次数.
// 回调中停止驱动器会终止后续触发.
func (m *Manual) Fire(n int) int {
	count := 0
	for ; count < n; count++ {
		m.mtx.Lock()
		if !m.running {
			m.mtx.Unlock()
			break
		}
		m.fired++
		m.mtx.Unlock()

		m.fire()
	}
	return count
}
