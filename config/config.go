package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/xuning888/deq/logger"
	"github.com/xuning888/deq/pkg/util"
)

var defaultLogLevel = "info"

type LogProperties struct {
	LogLevel      string `cfg:"loglevel"`
	LogPath       string `cfg:"logpath"`
	EnableFileLog bool   `cfg:"enablefilelog"`
	TimeFormat    string `cfg:"timeformat"`

	// config file path
	CfPath string `cfg:"cf,omitempty"`
}

var Properties = defaults()

func defaults() *LogProperties {
	return &LogProperties{
		LogLevel:   defaultLogLevel,
		LogPath:    ".",
		TimeFormat: logger.DefaultTimeFormat,
	}
}

func parse(src io.Reader) (*LogProperties, error) {
	config := defaults()

	// read config file
	rawMap := make(map[string]string)
	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		line := strings.TrimLeft(scanner.Text(), " ")
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		pivot := strings.IndexAny(line, " ")
		if pivot > 0 && pivot < len(line)-1 { // separator found
			key := line[0:pivot]
			value := strings.Trim(line[pivot+1:], " ")
			rawMap[strings.ToLower(key)] = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// fill fields by cfg tag
	t := reflect.TypeOf(config)
	v := reflect.ValueOf(config)
	n := t.Elem().NumField()
	for i := 0; i < n; i++ {
		field := t.Elem().Field(i)
		fieldVal := v.Elem().Field(i)
		key, ok := field.Tag.Lookup("cfg")
		if !ok || strings.TrimLeft(key, " ") == "" {
			key = field.Name
		}
		key = strings.Split(key, ",")[0]
		value, ok := rawMap[strings.ToLower(key)]
		if !ok {
			continue
		}
		switch field.Type.Kind() {
		case reflect.String:
			fieldVal.SetString(value)
		case reflect.Int:
			intValue, err := strconv.ParseInt(value, 10, 64)
			if err == nil {
				fieldVal.SetInt(intValue)
			}
		case reflect.Bool:
			fieldVal.SetBool("yes" == value)
		}
	}
	return config, nil
}

// LoggerConfiguration converts the properties into a logger setup.
func (p *LogProperties) LoggerConfiguration() (*logger.Configuration, error) {
	level, err := logrus.ParseLevel(p.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("config: loglevel %q: %w", p.LogLevel, err)
	}
	return &logger.Configuration{
		Level:         level,
		TimeFormat:    p.TimeFormat,
		LogPath:       p.LogPath,
		EnableFileLog: p.EnableFileLog,
	}, nil
}

func SetUpConfig(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer util.Close(file)
	props, err := parse(file)
	if err != nil {
		return err
	}
	configFilePath, err := filepath.Abs(filename)
	if err == nil {
		props.CfPath = configFilePath
	}
	if props.LogPath == "" {
		props.LogPath = "."
	}
	Properties = props
	return nil
}

// SetUpLogger loads filename and configures the package logger from it.
func SetUpLogger(filename string) error {
	if err := SetUpConfig(filename); err != nil {
		return err
	}
	lc, err := Properties.LoggerConfiguration()
	if err != nil {
		return err
	}
	return logger.Configure(lc)
}
