package driver

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/godyy/glog"
	"github.com/godyy/gutils/container/heap"
)

// heapTimer TimerHeap 定时器.
type heapTimer struct {
	id        TimerId       // 定时器ID.
	heapIndex int           // 堆索引.
	delay     time.Duration // 延迟时间.
	periodic  bool          // 是否周期性定时器.
	args      any           // 参数.
	cb        TimerFunc     // 回调函数.
	expireAt  int64         // 到期时间.
}

func (t *heapTimer) HeapLess(other *heapTimer) bool {
	if n := t.expireAt - other.expireAt; n == 0 {
		return t.id < other.id
	} else {
		return n < 0
	}
}

func (t *heapTimer) HeapIndex() int {
	return t.heapIndex
}

func (t *heapTimer) SetHeapIndex(index int) {
	t.heapIndex = index
}

// TimerHeapOption TimerHeap 选项.
type TimerHeapOption func(*TimerHeap)

// WithTimerHeapLogger 日志工具选项. 用于记录回调中发生的 panic.
func WithTimerHeapLogger(logger glog.Logger) TimerHeapOption {
	return func(th *TimerHeap) {
		th.logger = logger.Named("TimerHeap")
	}
}

// TimerHeap 最小堆定时器系统.
// 所有回调都在同一个 goroutine 中依次执行，回调执行期间不持有锁，
// 因此回调内可以再次调用 StartTimer/StopTimer.
type TimerHeap struct {
	mtx        sync.Mutex             // 互斥锁.
	sysTimer   *time.Timer            // 系统定时器.
	timerIdGen uint64                 // 定时器ID生成自增键.
	timerHeap  *heap.Heap[*heapTimer] // 定时器最小堆.
	timerMap   map[TimerId]*heapTimer // 定时器映射.
	stopped    bool                   // 是否已停止.
	cStopped   chan struct{}          // 已停止信号.
	logger     glog.Logger            // 日志工具.
}

// NewTimerHeap 构造 TimerHeap 并启动主循环.
func NewTimerHeap(options ...TimerHeapOption) *TimerHeap {
	th := &TimerHeap{
		sysTimer:  time.NewTimer(time.Hour),
		timerHeap: heap.NewHeap[*heapTimer](),
		timerMap:  make(map[TimerId]*heapTimer),
		cStopped:  make(chan struct{}),
	}
	th.stopSysTimer()

	for _, opt := range options {
		opt(th)
	}

	if th.logger == nil {
		th.logger = createStdLogger(glog.WarnLevel).Named("TimerHeap")
	}

	go th.loop()

	return th
}

// genTimerId 生成定时器ID.
func (th *TimerHeap) genTimerId() TimerId {
	timerId := atomic.AddUint64(&th.timerIdGen, 1)
	if timerId == TimerIdNone {
		timerId = atomic.AddUint64(&th.timerIdGen, 1)
	}
	return timerId
}

// addTimer 添加定时器.
func (th *TimerHeap) addTimer(t *heapTimer) {
	th.timerHeap.Push(t)
	th.timerMap[t.id] = t
}

// remTimer 移除定时器.
func (th *TimerHeap) remTimer(t *heapTimer) {
	th.timerHeap.Remove(t.heapIndex)
	delete(th.timerMap, t.id)
}

// resetSysTimer 重置系统定时器.
func (th *TimerHeap) resetSysTimer(expireAt int64) {
	th.stopSysTimer()
	th.sysTimer.Reset(time.Duration(expireAt - time.Now().UnixNano()))
}

// stopSysTimer 停止系统定时器.
func (th *TimerHeap) stopSysTimer() {
	if !th.sysTimer.Stop() {
		select {
		case <-th.sysTimer.C:
		default:
		}
	}
}

// Stop 停止 TimerHeap. 未触发的定时器全部丢弃.
func (th *TimerHeap) Stop() {
	th.mtx.Lock()
	defer th.mtx.Unlock()

	if th.stopped {
		return
	}

	th.stopSysTimer()
	th.timerHeap = nil
	th.timerMap = nil
	close(th.cStopped)
	th.stopped = true
}

// Len 返回未触发的定时器数量.
func (th *TimerHeap) Len() int {
	th.mtx.Lock()
	defer th.mtx.Unlock()

	if th.stopped {
		return 0
	}
	return th.timerHeap.Len()
}

// StartTimer 启动定时器. TimerHeap 已停止时返回 TimerIdNone.
func (th *TimerHeap) StartTimer(delay time.Duration, periodic bool, args any, cb TimerFunc) TimerId {
	if delay <= 0 {
		panic("delay must > 0")
	}

	if cb == nil {
		panic("callback func is nil")
	}

	t := &heapTimer{
		id:        th.genTimerId(),
		heapIndex: -1,
		delay:     delay,
		periodic:  periodic,
		args:      args,
		cb:        cb,
		expireAt:  time.Now().Add(delay).UnixNano(),
	}

	th.mtx.Lock()
	defer th.mtx.Unlock()

	if th.stopped {
		return TimerIdNone
	}

	th.addTimer(t)
	if t == th.timerHeap.Top() {
		th.resetSysTimer(t.expireAt)
	}

	return t.id
}

// StopTimer 停止定时器.
func (th *TimerHeap) StopTimer(tid TimerId) {
	th.mtx.Lock()
	defer th.mtx.Unlock()

	if th.stopped {
		return
	}

	t, exists := th.timerMap[tid]
	if !exists {
		return
	}

	top := t == th.timerHeap.Top()

	th.remTimer(t)

	// 移除的是堆顶时需要重新校准系统定时器.
	if top {
		if th.timerHeap.Len() == 0 {
			th.stopSysTimer()
		} else {
			th.resetSysTimer(th.timerHeap.Top().expireAt)
		}
	}
}

// update 触发所有到期的定时器.
func (th *TimerHeap) update() {
	var (
		t    *heapTimer
		cb   TimerFunc
		args TimerArgs
	)
	for {
		now := time.Now().UnixNano()

		th.mtx.Lock()
		if th.stopped || th.timerHeap.Len() == 0 {
			th.mtx.Unlock()
			return
		}
		t = th.timerHeap.Top()
		if t.expireAt > now {
			th.resetSysTimer(t.expireAt)
			th.mtx.Unlock()
			return
		}
		cb = t.cb
		args.TID = t.id
		args.Args = t.args
		if t.periodic {
			t.expireAt += int64(t.delay)
			th.timerHeap.Fix(t.heapIndex)
		} else {
			th.remTimer(t)
		}
		th.mtx.Unlock()

		th.invokeCallback(cb, &args)
	}
}

// invokeCallback 调用回调函数. 回调 panic 不会终止主循环.
func (th *TimerHeap) invokeCallback(cb TimerFunc, args *TimerArgs) {
	defer func() {
		if r := recover(); r != nil {
			th.logger.ErrorFields("timer callback panic", lfdTimerId(args.TID), lfdPanic(r))
		}
	}()
	cb(args)
}

// loop 主循环逻辑.
func (th *TimerHeap) loop() {
	for {
		select {
		case <-th.sysTimer.C:
			th.update()
		case <-th.cStopped:
			return
		}
	}
}
