package gcountdown

import (
	"errors"
	"time"

	"github.com/godyy/gcountdown/driver"
)

// DefaultTickInterval 默认 Tick 间隔.
const DefaultTickInterval = time.Millisecond

// Config Countdown 配置.
type Config struct {
	// TickInterval 每次 Tick 扣减的时长，同时也是驱动器的触发间隔.
	// 为 0 时使用 DefaultTickInterval. 必须为整数毫秒.
	TickInterval time.Duration `yaml:"tick_interval"`

	// TimerSystem 定时器系统. 未指定 DriverCreator 时，
	// 基于它创建 driver.Periodic 驱动器.
	TimerSystem driver.TimerSystem `yaml:"-"`

	// DriverCreator 驱动器构造器. 优先于 TimerSystem.
	DriverCreator driver.Creator `yaml:"-"`
}

func (c *Config) init() error {
	if c == nil {
		return errors.New("Config nil")
	}

	if c.TickInterval == 0 {
		c.TickInterval = DefaultTickInterval
	}

	if c.TickInterval < time.Millisecond {
		return errors.New("Config.TickInterval must >= 1ms")
	}

	if c.TickInterval%time.Millisecond != 0 {
		return errors.New("Config.TickInterval must be a whole number of milliseconds")
	}

	if c.DriverCreator == nil {
		if c.TimerSystem == nil {
			return errors.New("Config.TimerSystem or Config.DriverCreator not specified")
		}
		c.DriverCreator = driver.PeriodicCreator(c.TimerSystem)
	}

	return nil
}
