package store

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/inovacc/feedr/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleState(t *testing.T) State {
	t.Helper()

	feeds, err := model.NewFeedTimes(
		model.FeedTime{Hour: 8, Minute: 0, Rotations: 2},
		model.FeedTime{Hour: 12, Minute: 30, Rotations: 1},
		model.FeedTime{Hour: 20, Minute: 15, Rotations: 3},
	)
	require.NoError(t, err)

	return State{
		WarmStart: 1700000000,
		Schedule: model.Schedule{
			Mode:          model.ModeAuto,
			Feeds:         feeds,
			NextFeed:      1,
			AutoFeedsDone: 42,
		},
	}
}

func TestEncodeRecord(t *testing.T) {
	assert.Equal(t, "0 1 0 0 -1", EncodeRecord(DefaultState()))
	assert.Equal(t, "1700000000 0 3 42 1 2 8 0 1 12 30 3 20 15", EncodeRecord(sampleState(t)))
}

func TestDecodeRecord_RoundTrip(t *testing.T) {
	want := sampleState(t)

	got, err := DecodeRecord(EncodeRecord(want))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDecodeRecord_EmptyScheduleForcesNoFeed(t *testing.T) {
	got, err := DecodeRecord("5 0 0 7 3")
	require.NoError(t, err)
	assert.Equal(t, model.NoFeed, got.Schedule.NextFeed)
	assert.Equal(t, 7, got.Schedule.AutoFeedsDone)
	assert.Equal(t, model.ModeAuto, got.Schedule.Mode)
}

func TestDecodeRecord_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		record string
	}{
		{"empty", ""},
		{"short header", "0 1 0"},
		{"not a number", "0 x 0 0 -1"},
		{"bad warm start", "abc 1 0 0 -1"},
		{"bad mode", "0 2 0 0 -1"},
		{"count too large", "0 0 10 0 0"},
		{"negative count", "0 0 -1 0 0"},
		{"auto feeds too large", "0 0 0 1000 -1"},
		{"missing entry fields", "0 0 2 0 0 1 8 0"},
		{"trailing fields", "0 0 1 0 0 1 8 0 9"},
		{"hour out of range", "0 0 1 0 0 1 24 0"},
		{"rotations out of range", "0 0 1 0 0 0 8 0"},
		{"unsorted", "0 0 2 0 0 1 9 0 1 8 0"},
		{"conflict", "0 0 2 0 0 1 8 0 1 8 5"},
		{"next feed out of range", "0 0 1 0 1 1 8 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeRecord(tt.record)
			if !errors.Is(err, ErrMalformedRecord) {
				t.Errorf("DecodeRecord(%q) error = %v, want ErrMalformedRecord", tt.record, err)
			}
		})
	}
}

func TestLoad_FallsBackToDefault(t *testing.T) {
	dir := t.TempDir()

	s, err := NewFileStore(dir)
	require.NoError(t, err)

	assert.Equal(t, DefaultState(), Load(s, discardLogger()), "missing file")

	require.NoError(t, os.WriteFile(filepath.Join(dir, stateFileName), []byte("garbage\n"), 0o600))
	assert.Equal(t, DefaultState(), Load(s, discardLogger()), "malformed file")
}

func TestOpen_UnknownKind(t *testing.T) {
	_, err := Open(model.StoreKind("etcd"), t.TempDir())
	assert.Error(t, err)
}

func TestStores(t *testing.T) {
	for _, kind := range []model.StoreKind{model.StoreFile, model.StoreBolt, model.StoreSQLite} {
		t.Run(string(kind), func(t *testing.T) {
			s, err := Open(kind, t.TempDir())
			require.NoError(t, err)
			t.Cleanup(func() { _ = s.Close() })

			require.NoError(t, s.Ping())

			_, err = s.LoadState()
			assert.ErrorIs(t, err, ErrNoState)

			want := sampleState(t)
			require.NoError(t, Save(s, want, discardLogger()))
			assert.Equal(t, want, Load(s, discardLogger()))

			want.Schedule.Mode = model.ModePaused
			want.WarmStart++
			require.NoError(t, s.SaveState(want))

			got, err := s.LoadState()
			require.NoError(t, err)
			assert.Equal(t, want, got)

			events, err := s.ListEvents(0)
			require.NoError(t, err)
			assert.Empty(t, events)

			base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
			for i := 0; i < 3; i++ {
				ev := model.NewFeedEvent(model.SourceAuto, i+1, base.Add(time.Duration(i)*time.Hour), i+1)
				require.NoError(t, s.AppendEvent(ev))
			}

			events, err = s.ListEvents(0)
			require.NoError(t, err)
			require.Len(t, events, 3)
			assert.Equal(t, 3, events[0].Rotations, "newest first")
			assert.True(t, events[0].FedAt.Equal(base.Add(2*time.Hour)))
			assert.Equal(t, model.SourceAuto, events[2].Source)

			events, err = s.ListEvents(2)
			require.NoError(t, err)
			require.Len(t, events, 2)
			assert.Equal(t, 2, events[1].Rotations)
		})
	}
}
