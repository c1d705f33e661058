package gcountdown

import (
	"github.com/godyy/glog"
)

// Option 选项.
type Option func(*Countdown)

// WithLogger 日志工具选项.
func WithLogger(logger glog.Logger) Option {
	return func(c *Countdown) {
		c.logger = logger.Named("gcountdown")
	}
}

// WithObservers 创建时注册观察者. 通过该选项注册的观察者无法取消注册.
func WithObservers(observers ...Observer) Option {
	return func(c *Countdown) {
		for _, o := range observers {
			c.Subscribe(o)
		}
	}
}
