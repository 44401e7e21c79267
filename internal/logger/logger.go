// Package logger holds the process-wide logrus logger.
package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// prefixHook tags every entry with the program name.
type prefixHook struct {
	prefix string
}

func (h *prefixHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *prefixHook) Fire(entry *logrus.Entry) error {
	entry.Message = h.prefix + entry.Message
	return nil
}

// Init points Log at stderr with timestamped text output and sets its
// level. Calling it again replaces the previous setup.
func Init(appName, levelName string) {
	Log.SetOutput(os.Stderr)
	Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	Log.ReplaceHooks(logrus.LevelHooks{})
	Log.AddHook(&prefixHook{prefix: "[" + appName + "] "})

	level, ok := parseLevel(levelName)
	Log.SetLevel(level)
	if !ok {
		Log.WithField("level", levelName).Warn("Unknown log level, using info")
	}
}

func parseLevel(name string) (logrus.Level, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return logrus.InfoLevel, true
	}
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return logrus.InfoLevel, false
	}
	return level, true
}
