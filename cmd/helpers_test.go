package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/inovacc/feedr/internal/device"
	"github.com/inovacc/feedr/internal/model"
	"github.com/inovacc/feedr/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFeedSpec(t *testing.T) {
	tests := []struct {
		input    string
		expected model.FeedTime
		wantErr  bool
	}{
		{input: "08:00", expected: model.FeedTime{Hour: 8, Minute: 0, Rotations: 1}},
		{input: "8:05x3", expected: model.FeedTime{Hour: 8, Minute: 5, Rotations: 3}},
		{input: "23:59X9", expected: model.FeedTime{Hour: 23, Minute: 59, Rotations: 9}},
		{input: "24:00", wantErr: true},
		{input: "12:60", wantErr: true},
		{input: "12:00x0", wantErr: true},
		{input: "12:00x10", wantErr: true},
		{input: "noon", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseFeedSpec(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseFeedSpec(%q) = %v, want error", tt.input, got)
				}
				return
			}

			if err != nil {
				t.Fatalf("parseFeedSpec(%q) error = %v", tt.input, err)
			}

			if got != tt.expected {
				t.Errorf("parseFeedSpec(%q) = %+v, want %+v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger, err := newLogger(&buf, "debug", "json")
	require.NoError(t, err)

	logger.Debug("hello", "feeds", 3)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["msg"])
	assert.EqualValues(t, 3, line["feeds"])

	buf.Reset()

	logger, err = newLogger(&buf, "warn", "text")
	require.NoError(t, err)

	logger.Info("hidden")
	assert.Empty(t, buf.String())

	_, err = newLogger(&buf, "loud", "text")
	assert.Error(t, err)

	_, err = newLogger(&buf, "info", "xml")
	assert.Error(t, err)
}

func TestBuildSchedule(t *testing.T) {
	now := device.DateTime{Hour: 10, Minute: 0, Day: 1, Month: 1, Year: 2025}

	s := model.NewSchedule()
	require.NoError(t, buildSchedule(&s, []string{"19:45x3", "08:00x2", "12:30"}, now))

	assert.Equal(t, 3, s.Count())
	assert.Equal(t, model.FeedTime{Hour: 8, Minute: 0, Rotations: 2}, s.Feeds.At(0))
	assert.Equal(t, model.FeedTime{Hour: 19, Minute: 45, Rotations: 3}, s.Feeds.At(2))
	assert.Equal(t, 1, s.NextFeed)

	err := buildSchedule(&s, []string{"08:00", "08:04"}, now)
	assert.Error(t, err, "entries within five minutes")

	err = buildSchedule(&s, []string{"23:58", "00:02"}, now)
	assert.Error(t, err, "conflict across midnight")

	require.NoError(t, buildSchedule(&s, nil, now))
	assert.Equal(t, 0, s.Count())
	assert.Equal(t, model.NoFeed, s.NextFeed)
}

func TestPrintSchedule(t *testing.T) {
	var buf bytes.Buffer

	printSchedule(&buf, store.DefaultState())
	out := buf.String()
	assert.Contains(t, out, "Mode:            Paused")
	assert.Contains(t, out, "Next feed:       N/A")
	assert.Contains(t, out, "01/01/1970  14:00:00")
	assert.Contains(t, out, "No feeds scheduled.")

	st := store.DefaultState()
	st.Schedule.Mode = model.ModeAuto
	require.NoError(t, buildSchedule(&st.Schedule, []string{"08:00x2", "16:00"}, device.DateTime{Hour: 14}))

	buf.Reset()
	printSchedule(&buf, st)
	out = buf.String()
	assert.Contains(t, out, "Next feed:       16:00")
	assert.Contains(t, out, "TIME")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(lines[len(lines)-1]), "*"), "next feed marked")
}

func TestScheduleCommands(t *testing.T) {
	dir := t.TempDir()
	base := []string{"--config", filepath.Join(dir, "config.yaml"), "--data-dir", dir, "--log-level", "error"}

	run := func(args ...string) error {
		rootCmd.SetArgs(append(append([]string{}, base...), args...))
		return rootCmd.Execute()
	}

	require.NoError(t, run("config", "init"))
	assert.Error(t, run("config", "init"), "file exists")

	require.NoError(t, run("schedule", "set", "12:30", "08:00x2"))
	require.NoError(t, run("schedule", "mode", "auto"))
	assert.Error(t, run("schedule", "set", "08:00", "08:05"))
	assert.Error(t, run("schedule", "mode", "turbo"))

	st, err := store.NewFileStore(dir)
	require.NoError(t, err)

	state, err := st.LoadState()
	require.NoError(t, err)
	assert.Equal(t, model.ModeAuto, state.Schedule.Mode)
	assert.Equal(t, 2, state.Schedule.Count())
	assert.Equal(t, model.FeedTime{Hour: 8, Minute: 0, Rotations: 2}, state.Schedule.Feeds.At(0))
	assert.Equal(t, 0, state.Schedule.NextFeed)

	require.NoError(t, run("schedule", "show"))
	require.NoError(t, run("history"))
}

func TestServiceArguments(t *testing.T) {
	oldFile, oldCfg := cfgFile, cfg
	t.Cleanup(func() { cfgFile, cfg = oldFile, oldCfg })

	cfgFile = ""
	cfg = model.DefaultConfig()
	assert.Equal(t, []string{"service", "--run"}, serviceArguments())

	cfgFile = "/etc/feedr.yaml"
	cfg.DataDir = "/var/lib/feedr"
	assert.Equal(t, []string{"service", "--run", "--config", "/etc/feedr.yaml", "--data-dir", "/var/lib/feedr"}, serviceArguments())
}
