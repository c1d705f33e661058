package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/godyy/gcountdown"
	"github.com/godyy/gcountdown/driver"
	"github.com/godyy/glog"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

var flags = []cli.Flag{
	cli.StringFlag{
		Name:  "config, c",
		Usage: "yaml file holding tick_interval and the start time",
	},
	cli.DurationFlag{
		Name:   "interval, i",
		Usage:  "tick interval, a whole number of milliseconds",
		EnvVar: "GCOUNTDOWN_INTERVAL",
		Value:  gcountdown.DefaultTickInterval,
	},
	cli.Uint64Flag{Name: "days, d"},
	cli.UintFlag{Name: "hours, H"},
	cli.UintFlag{Name: "minutes, m"},
	cli.UintFlag{Name: "seconds, s"},
	cli.UintFlag{Name: "milliseconds, ms"},
	cli.StringFlag{
		Name:   "log-level, l",
		Usage:  "debug, info, warn or error",
		EnvVar: "GCOUNTDOWN_LOG_LEVEL",
		Value:  "info",
	},
}

func main() {
	app := cli.App{
		Name:      "gcountdown",
		HelpName:  "gcountdown",
		Usage:     "counts down from the given time and reports every tick",
		UsageText: "gcountdown [--config file] [--days N --hours N --minutes N --seconds N --milliseconds N] [--interval 1s]",
		Flags:     flags,
		Action:    run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Printf("gcountdown: %s\n", err.Error())
		os.Exit(1)
	}
}

// parseLevel 解析日志等级.
func parseLevel(s string) (glog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return glog.DebugLevel, nil
	case "info":
		return glog.InfoLevel, nil
	case "warn":
		return glog.WarnLevel, nil
	case "error":
		return glog.ErrorLevel, nil
	default:
		return glog.InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
}

func run(c *cli.Context) error {
	level, err := parseLevel(c.String("log-level"))
	if err != nil {
		return err
	}
	logger := glog.NewLogger(&glog.Config{
		Level:        level,
		EnableCaller: false,
		CallerSkip:   0,
		Development:  false,
		Cores:        []glog.CoreConfig{glog.NewStdCoreConfig()},
	})

	fc := &fileConfig{}
	if path := c.String("config"); path != "" {
		if fc, err = loadFileConfig(path); err != nil {
			return err
		}
	}
	if fc.TickInterval == 0 {
		fc.TickInterval = c.Duration("interval")
	}
	fc.applyFlags(c)

	hours, minutes, seconds, milliseconds, err := fc.units()
	if err != nil {
		return err
	}

	th := driver.NewTimerHeap(driver.WithTimerHeapLogger(logger))
	defer th.Stop()
	fc.TimerSystem = th

	cd, err := gcountdown.CreateCountdown(&fc.Config, gcountdown.WithLogger(logger))
	if err != nil {
		return err
	}

	chAlarm := make(chan struct{})
	cd.OnTick(func(_ *gcountdown.Countdown, r gcountdown.Remaining) {
		logger.DebugFields("tick", zap.Stringer("remaining", r))
	})
	cd.OnAlarm(func(*gcountdown.Countdown, gcountdown.Remaining) {
		close(chAlarm)
	})

	if err := cd.Start(fc.Days, hours, minutes, seconds, milliseconds); err != nil {
		return err
	}
	logger.InfoFields("countdown started",
		zap.Stringer("remaining", cd.Remaining()),
		zap.Duration("tickInterval", cd.TickInterval()))

	chSignal := make(chan os.Signal, 1)
	signal.Notify(chSignal, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(chSignal)

	select {
	case <-chAlarm:
		logger.Info("countdown finished")
	case sig := <-chSignal:
		remaining := cd.Remaining()
		cd.Stop()
		logger.InfoFields("countdown interrupted",
			zap.Stringer("signal", sig),
			zap.Stringer("remaining", remaining))
	}

	return nil
}
