package main

import (
	"flag"
	"fmt"
	"log/slog"
	"strings"

	"citynight/internal/city"
)

type logLevelFlag struct {
	value slog.Level
}

func (l *logLevelFlag) String() string {
	return l.value.String()
}

func (l *logLevelFlag) Set(value string) error {
	m := map[string]slog.Level{"DEBUG": slog.LevelDebug, "INFO": slog.LevelInfo, "WARN": slog.LevelWarn, "ERROR": slog.LevelError}
	v, ok := m[strings.ToUpper(value)]
	if !ok {
		return fmt.Errorf("unknown log level")
	}
	l.value = v
	return nil
}

// defined flags
var (
	levelFlag     logLevelFlag
	buildingsFlag = flag.Int("buildings", city.DefaultBuildings, "Number of buildings to generate")
	seedFlag      = flag.Uint64("seed", 0, "Random seed for the city layout (0 = from "+city.SeedEnv+" or the clock)")
	configFlag    = flag.String("config", "", "Path to a YAML settings file (default: user config dir)")
	logFileFlag   = flag.Bool("logfile", false, "Write logs to a file instead of the console")
	muteFlag      = flag.Bool("mute", false, "Disable the ambient city sound")
	deltaTimeFlag = flag.Bool("delta-time", false, "Scale camera movement by frame time instead of a fixed step per frame")
	showDirsFlag  = flag.Bool("show-dirs", false, "Show directories where settings and logs are stored")
)

func init() {
	levelFlag.value = slog.LevelInfo
	flag.Var(&levelFlag, "loglevel", "set log level")
}

// applyFlags overrides settings with the flags given on the command line.
func applyFlags(fs *flag.FlagSet, s *city.Settings) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "buildings":
			s.Buildings = *buildingsFlag
		case "seed":
			s.Seed = *seedFlag
		case "mute":
			s.Audio.Enabled = !*muteFlag
		case "delta-time":
			s.Camera.DeltaTime = *deltaTimeFlag
		}
	})
}
