// Citynight generates a random night city and lets you fly through it.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"citynight/internal/city"
	"citynight/internal/desktop"
)

func main() {
	flag.Parse()
	slog.SetLogLoggerLevel(levelFlag.value)
	ad := newAppDirs()
	if *showDirsFlag {
		ad.show()
		return
	}
	if *logFileFlag {
		fn, err := ad.initLogFile()
		if err != nil {
			log.Fatal(err)
		}
		log.SetOutput(&lumberjack.Logger{
			Filename:   fn,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
		})
	}
	settings, err := city.LoadSettings(ad.settingsPath(*configFlag))
	if err != nil {
		log.Fatal(err)
	}
	applyFlags(flag.CommandLine, &settings)
	if err := settings.Validate(); err != nil {
		log.Fatalf("invalid settings: %s", err)
	}
	if err := desktop.Run(settings); err != nil {
		slog.Error("citynight failed", "error", err)
		os.Exit(1)
	}
}
