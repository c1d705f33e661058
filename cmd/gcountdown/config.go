package main

import (
	"math"
	"os"

	"github.com/godyy/gcountdown"
	pkgerrors "github.com/pkg/errors"
	"github.com/urfave/cli"
	"gopkg.in/yaml.v3"
)

// fileConfig 配置文件结构.
type fileConfig struct {
	gcountdown.Config `yaml:",inline"`

	Days         uint64 `yaml:"days"`
	Hours        uint   `yaml:"hours"`
	Minutes      uint   `yaml:"minutes"`
	Seconds      uint   `yaml:"seconds"`
	Milliseconds uint   `yaml:"milliseconds"`
}

// loadFileConfig 读取 yaml 配置文件.
func loadFileConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pkgerrors.WithMessage(err, "read config file")
	}

	fc := &fileConfig{}
	if err := yaml.Unmarshal(data, fc); err != nil {
		return nil, pkgerrors.WithMessagef(err, "parse config file %s", path)
	}
	return fc, nil
}

// applyFlags 命令行参数覆盖配置文件.
func (fc *fileConfig) applyFlags(c *cli.Context) {
	if c.IsSet("interval") {
		fc.TickInterval = c.Duration("interval")
	}
	if c.IsSet("days") {
		fc.Days = c.Uint64("days")
	}
	if c.IsSet("hours") {
		fc.Hours = c.Uint("hours")
	}
	if c.IsSet("minutes") {
		fc.Minutes = c.Uint("minutes")
	}
	if c.IsSet("seconds") {
		fc.Seconds = c.Uint("seconds")
	}
	if c.IsSet("milliseconds") {
		fc.Milliseconds = c.Uint("milliseconds")
	}
}

// units 返回启动倒计时所需的各时间单位.
// 超出目标类型宽度的值直接报错，避免截断后恰好落入合法范围.
func (fc *fileConfig) units() (hours, minutes, seconds uint8, milliseconds uint16, err error) {
	for _, u := range []struct {
		name string
		v    uint
		max  uint
	}{
		{"hours", fc.Hours, math.MaxUint8},
		{"minutes", fc.Minutes, math.MaxUint8},
		{"seconds", fc.Seconds, math.MaxUint8},
		{"milliseconds", fc.Milliseconds, math.MaxUint16},
	} {
		if u.v > u.max {
			return 0, 0, 0, 0, pkgerrors.WithMessagef(gcountdown.ErrInvalidArgument, "%s %d out of range", u.name, u.v)
		}
	}
	return uint8(fc.Hours), uint8(fc.Minutes), uint8(fc.Seconds), uint16(fc.Milliseconds), nil
}
