package gcountdown

import (
	"errors"
	"sync"
	"time"

	"github.com/godyy/gcountdown/driver"
	"github.com/godyy/glog"
	pkgerrors "github.com/pkg/errors"
)

// State 倒计时状态.
type State int8

const (
	// StateIdle 未启动、已停止或已归零.
	StateIdle State = iota

	// StateRunning 驱动器运行中，每次 Tick 扣减剩余时间.
	StateRunning

	// StatePaused 已暂停，剩余时间保留.
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateRunning:
		return "RUNNING"
	case StatePaused:
		return "PAUSED"
	default:
		return "UNKNOWN"
	}
}

// Countdown 倒计时.
// 由驱动器周期性触发，每次触发扣减一个 Tick 间隔，并通知观察者.
// 剩余时间归零时通知 Alarm 并回到 StateIdle.
//
// Countdown 内部以互斥锁保护状态，观察者回调在锁外按注册顺序同步执行，
// 回调内可以直接调用 Countdown 的任意方法.
type Countdown struct {
	mtx       sync.Mutex
	remaining Remaining     // 剩余时间.
	step      Remaining     // 每次 Tick 扣减的毫秒数.
	state     State         // 状态.
	driver    driver.Driver // 驱动器.
	observers observerList  // 观察者.
	logger    glog.Logger   // 日志工具.
}

// CreateCountdown 创建 Countdown.
func CreateCountdown(cfg *Config, options ...Option) (*Countdown, error) {
	if err := cfg.init(); err != nil {
		return nil, err
	}

	c := &Countdown{
		step:   Remaining(cfg.TickInterval.Milliseconds()),
		state:  StateIdle,
		logger: createStdLogger(glog.InfoLevel).Named("gcountdown"),
	}

	for _, opt := range options {
		opt(c)
	}

	c.driver = cfg.DriverCreator(cfg.TickInterval, c.onTick)
	if c.driver == nil {
		return nil, errors.New("Config.DriverCreator returned nil driver")
	}

	return c, nil
}

// Start 从指定时长开始倒计时.
// 参数超出范围时返回 ErrInvalidArgument, 状态不变.
// 运行中调用会以新的时长重新开始，Tick 相位同时重置.
func (c *Countdown) Start(days uint64, hours, minutes, seconds uint8, milliseconds uint16) error {
	r, err := NewRemaining(days, hours, minutes, seconds, milliseconds)
	if err != nil {
		c.logger.WarnFields("start with invalid argument", lfdError(err))
		return err
	}

	c.StartRemaining(r)
	return nil
}

// StartDuration 从 d 开始倒计时. d 截断到毫秒, 不能为负.
func (c *Countdown) StartDuration(d time.Duration) error {
	r, err := RemainingFromDuration(d)
	if err != nil {
		c.logger.WarnFields("start with invalid duration", lfdError(err))
		return err
	}

	c.StartRemaining(r)
	return nil
}

// StartRemaining 从 r 开始倒计时. r 为 0 时，下一次 Tick 即触发 Alarm.
func (c *Countdown) StartRemaining(r Remaining) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	prev := c.state
	c.remaining = r
	c.state = StateRunning
	c.driver.Stop()
	c.driver.Start()

	c.logger.DebugFields("started", lfdRemaining(r), lfdTickInterval(c.step), lfdState(prev))
}

// Resume 以当前剩余时间继续倒计时.
// 运行中调用无效. 处于 StateIdle(从未启动、已停止或已归零) 时返回 ErrInvalidState.
func (c *Countdown) Resume() error {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	switch c.state {
	case StateRunning:
		return nil
	case StateIdle:
		return pkgerrors.WithMessage(ErrInvalidState, "resume idle countdown")
	}

	c.state = StateRunning
	c.driver.Start()

	c.logger.DebugFields("resumed", lfdRemaining(c.remaining))
	return nil
}

// Pause 暂停倒计时，保留剩余时间. 仅在运行中有效.
func (c *Countdown) Pause() {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if c.state != StateRunning {
		return
	}

	c.driver.Stop()
	c.state = StatePaused

	c.logger.DebugFields("paused", lfdRemaining(c.remaining))
}

// Stop 停止倒计时并清零. 可重复调用.
func (c *Countdown) Stop() {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.driver.Stop()
	prev := c.state
	c.remaining = 0
	c.state = StateIdle

	if prev != StateIdle {
		c.logger.DebugFields("stopped", lfdState(prev))
	}
}

// onTick 驱动器回调.
func (c *Countdown) onTick() {
	c.mtx.Lock()

	// 暂停或停止之后到达的触发直接丢弃.
	if c.state != StateRunning {
		c.mtx.Unlock()
		return
	}

	observers := c.observers.snapshot()

	if c.remaining <= c.step {
		c.remaining = 0
		c.state = StateIdle
		c.driver.Stop()
		c.mtx.Unlock()

		c.logger.Info("alarm")
		for _, e := range observers {
			e.observer.OnCountdownAlarm(c, 0)
		}
		return
	}

	c.remaining -= c.step
	r := c.remaining
	c.mtx.Unlock()

	for _, e := range observers {
		e.observer.OnCountdownTick(c, r)
	}
}

// Subscribe 注册观察者，返回观察者ID.
func (c *Countdown) Subscribe(o Observer) ObserverId {
	if o == nil {
		panic("observer is nil")
	}

	c.mtx.Lock()
	defer c.mtx.Unlock()

	id := c.observers.add(o)
	c.logger.DebugFields("observer subscribed", lfdObserverId(id))
	return id
}

// OnTick 注册 Tick 回调.
func (c *Countdown) OnTick(fn TickFunc) ObserverId {
	if fn == nil {
		panic("tick func is nil")
	}
	return c.Subscribe(&funcObserver{onTick: fn})
}

// OnAlarm 注册 Alarm 回调.
func (c *Countdown) OnAlarm(fn AlarmFunc) ObserverId {
	if fn == nil {
		panic("alarm func is nil")
	}
	return c.Subscribe(&funcObserver{onAlarm: fn})
}

// Unsubscribe 取消注册观察者. 正在进行中的通知仍会送达该观察者.
func (c *Countdown) Unsubscribe(id ObserverId) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if c.observers.remove(id) {
		c.logger.DebugFields("observer unsubscribed", lfdObserverId(id))
	}
}

// Observers 返回已注册的观察者数量.
func (c *Countdown) Observers() int {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.observers.len()
}

// State 当前状态.
func (c *Countdown) State() State {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.state
}

// Remaining 剩余时间.
func (c *Countdown) Remaining() Remaining {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.remaining
}

func (c *Countdown) Days() uint64         { return c.Remaining().Days() }
func (c *Countdown) Hours() uint8         { return c.Remaining().Hours() }
func (c *Countdown) Minutes() uint8       { return c.Remaining().Minutes() }
func (c *Countdown) Seconds() uint8       { return c.Remaining().Seconds() }
func (c *Countdown) Milliseconds() uint16 { return c.Remaining().Milliseconds() }

// TickInterval 每次 Tick 扣减的时长.
func (c *Countdown) TickInterval() time.Duration {
	return c.step.Duration()
}

// Driver 返回 Countdown 持有的驱动器.
func (c *Countdown) Driver() driver.Driver {
	return c.driver
}
