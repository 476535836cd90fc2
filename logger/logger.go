package logger

import (
	"fmt"
	"os"
	"path"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
)

const DefaultTimeFormat = "2006-01-02 15:04:05.000"

var logger = logrus.New()

type Configuration struct {
	Level         logrus.Level
	TimeFormat    string
	LogPath       string
	EnableFileLog bool
}

// Configure resets the package logger. Console output always goes to stderr,
// file output adds one rotating file per level under LogPath.
func Configure(config *Configuration) error {
	timeFormat := config.TimeFormat
	if timeFormat == "" {
		timeFormat = DefaultTimeFormat
	}
	logger.SetLevel(config.Level)
	logger.ReplaceHooks(make(logrus.LevelHooks))

	logger.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: timeFormat,
		FullTimestamp:   true,
	})
	logger.SetOutput(os.Stderr)

	if !config.EnableFileLog {
		return nil
	}
	writerMap := lfshook.WriterMap{}
	for _, level := range []logrus.Level{logrus.DebugLevel, logrus.InfoLevel, logrus.WarnLevel, logrus.ErrorLevel} {
		writer, err := setupWriter(config.LogPath, level.String())
		if err != nil {
			return err
		}
		writerMap[level] = writer
	}
	// no colour codes in files
	fileFormatter := &logrus.TextFormatter{
		TimestampFormat: timeFormat,
		FullTimestamp:   true,
		DisableColors:   true,
	}
	logger.AddHook(lfshook.NewHook(writerMap, fileFormatter))
	return nil
}

func setupWriter(logPath string, level string) (*rotatelogs.RotateLogs, error) {
	logFullPath := path.Join(logPath, level)
	writer, err := rotatelogs.New(
		logFullPath+".%Y%m%d.log",
		rotatelogs.WithMaxAge(7*24*time.Hour),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		return nil, fmt.Errorf("logger: rotate writer for %s: %w", level, err)
	}
	return writer, nil
}

func InfoF(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

func DebugF(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

func WarnF(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

func ErrorF(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}

func IsEnabledDebug() bool {
	return logger.IsLevelEnabled(logrus.DebugLevel)
}
