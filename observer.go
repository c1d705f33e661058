package gcountdown

import (
	"sync/atomic"
)

// Observer 倒计时观察者.
type Observer interface {
	// OnCountdownTick 每次成功扣减后调用, r 为扣减后的剩余时间.
	OnCountdownTick(c *Countdown, r Remaining)

	// OnCountdownAlarm 倒计时归零时调用一次, r 恒为 0.
	OnCountdownAlarm(c *Countdown, r Remaining)
}

// TickFunc Tick 回调函数.
type TickFunc func(c *Countdown, r Remaining)

// AlarmFunc Alarm 回调函数.
type AlarmFunc func(c *Countdown, r Remaining)

// ObserverId 观察者ID.
type ObserverId = uint64

// ObserverIdNone 无效观察者ID.
const ObserverIdNone = 0

// funcObserver 将单个回调函数包装为 Observer.
type funcObserver struct {
	onTick  TickFunc
	onAlarm AlarmFunc
}

func (o *funcObserver) OnCountdownTick(c *Countdown, r Remaining) {
	if o.onTick != nil {
		o.onTick(c, r)
	}
}

func (o *funcObserver) OnCountdownAlarm(c *Countdown, r Remaining) {
	if o.onAlarm != nil {
		o.onAlarm(c, r)
	}
}

// observerEntry 已注册的观察者.
type observerEntry struct {
	id       ObserverId
	observer Observer
}

// observerList 按注册顺序保存观察者.
// 每次修改都生成新切片，通知时持有的快照不受后续注册/取消影响.
type observerList struct {
	idGen   uint64
	entries []observerEntry
}

// genId 生成观察者ID.
func (l *observerList) genId() ObserverId {
	id := atomic.AddUint64(&l.idGen, 1)
	if id == ObserverIdNone {
		id = atomic.AddUint64(&l.idGen, 1)
	}
	return id
}

func (l *observerList) add(o Observer) ObserverId {
	id := l.genId()
	entries := make([]observerEntry, len(l.entries), len(l.entries)+1)
	copy(entries, l.entries)
	l.entries = append(entries, observerEntry{id: id, observer: o})
	return id
}

func (l *observerList) remove(id ObserverId) bool {
	for i := range l.entries {
		if l.entries[i].id != id {
			continue
		}
		entries := make([]observerEntry, 0, len(l.entries)-1)
		entries = append(entries, l.entries[:i]...)
		l.entries = append(entries, l.entries[i+1:]...)
		return true
	}
	return false
}

func (l *observerList) snapshot() []observerEntry {
	return l.entries
}

func (l *observerList) len() int {
	return len(l.entries)
}
