package main

import (
	"fmt"
	"os"
	"path/filepath"

	xappdirs "github.com/chasinglogic/appdirs"
)

const (
	appName          = "citynight"
	logFileName      = "citynight.log"
	settingsFileName = "settings.yaml"
)

// appDirs represents the app's local directories for settings and logs.
type appDirs struct {
	log      string
	settings string
}

func newAppDirs() appDirs {
	ad := xappdirs.New(appName)
	return appDirs{
		log:      ad.UserLog(),
		settings: ad.UserConfig(),
	}
}

func (ad appDirs) initLogFile() (string, error) {
	if err := os.MkdirAll(ad.log, os.ModePerm); err != nil {
		return "", err
	}
	return filepath.Join(ad.log, logFileName), nil
}

// settingsPath returns the settings file to read. It is not created.
func (ad appDirs) settingsPath(override string) string {
	if override != "" {
		return override
	}
	return filepath.Join(ad.settings, settingsFileName)
}

func (ad appDirs) show() {
	fmt.Printf("Settings: %s\n", ad.settingsPath(""))
	fmt.Printf("Logs: %s\n", ad.log)
}
