package gcountdown

import (
	"github.com/godyy/glog"
	"go.uber.org/zap"
)

// createStdLogger 创建面向标准输出的 logger.
func createStdLogger(level glog.Level) glog.Logger {
	return glog.NewLogger(&glog.Config{
		Level:        level,
		EnableCaller: true,
		CallerSkip:   0,
		Development:  false,
		Cores:        []glog.CoreConfig{glog.NewStdCoreConfig()},
	})
}

func lfdError(err error) zap.Field {
	return zap.NamedError("error", err)
}

func lfdState(state State) zap.Field {
	return zap.Stringer("state", state)
}

func lfdRemaining(r Remaining) zap.Field {
	return zap.Uint64("remaining", r.Ticks())
}

func lfdTickInterval(step Remaining) zap.Field {
	return zap.Uint64("tickInterval", step.Ticks())
}

func lfdObserverId(id ObserverId) zap.Field {
	return zap.Uint64("observerId", id)
}
