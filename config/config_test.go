package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name string
		src  string
		want LogProperties
	}{
		{
			name: "empty file keeps defaults",
			src:  "",
			want: LogProperties{LogLevel: "info", LogPath: ".", TimeFormat: "2006-01-02 15:04:05.000"},
		},
		{
			name: "override every key",
			src: strings.Join([]string{
				"# deq logging",
				"loglevel debug",
				"LogPath /tmp/deq",
				"enablefilelog yes",
				"timeformat 15:04:05",
			}, "\n"),
			want: LogProperties{LogLevel: "debug", LogPath: "/tmp/deq", EnableFileLog: true, TimeFormat: "15:04:05"},
		},
		{
			name: "comments and keys without value are skipped",
			src:  "  # loglevel error\nloglevel\nenablefilelog no\n",
			want: LogProperties{LogLevel: "info", LogPath: ".", TimeFormat: "2006-01-02 15:04:05.000"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parse(strings.NewReader(tc.src))
			require.NoError(t, err)
			assert.Equal(t, tc.want, *got)
		})
	}
}

func TestLoggerConfiguration(t *testing.T) {
	props := &LogProperties{LogLevel: "warn", LogPath: "logs", EnableFileLog: true, TimeFormat: "15:04"}
	lc, err := props.LoggerConfiguration()
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, lc.Level)
	assert.Equal(t, "logs", lc.LogPath)
	assert.True(t, lc.EnableFileLog)
	assert.Equal(t, "15:04", lc.TimeFormat)

	props.LogLevel = "loud"
	_, err = props.LoggerConfiguration()
	assert.Error(t, err)
}

func TestSetUpLogger(t *testing.T) {
	dir := t.TempDir()
	cf := filepath.Join(dir, "deq.conf")
	require.NoError(t, os.WriteFile(cf, []byte("loglevel error\nenablefilelog no\n"), 0o644))

	require.NoError(t, SetUpLogger(cf))
	assert.Equal(t, cf, Properties.CfPath)
	assert.Equal(t, "error", Properties.LogLevel)

	assert.Error(t, SetUpConfig(filepath.Join(dir, "missing.conf")))
}
