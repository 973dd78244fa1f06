package replay

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/rockman/internal/application/system"
)

func TestFrameInput_RoundTripsInputState(t *testing.T) {
	in := system.InputState{
		Horizontal: -0.75,
		FaceLeft:   true,
		Jump:       true,
		FireDown:   true,
		FireHeld:   true,
	}

	fi := FromInput(7, in)

	assert.Equal(t, 7, fi.F)
	assert.Equal(t, in, fi.Input())
}

func TestReplayer_GetInput(t *testing.T) {
	data := ReplayData{
		Version: FormatVersion,
		Frames: []FrameInput{
			{F: 0, H: 1, FR: true},
			{F: 1, H: 1, FD: true, FH: true},
			{F: 2, FU: true},
		},
	}

	replayer := NewReplayer(data)

	// Frame 0
	input, ok := replayer.GetInput()
	require.True(t, ok)
	assert.Equal(t, 1.0, input.Horizontal)
	assert.True(t, input.FaceRight)
	assert.False(t, input.FireDown)

	// Frame 1
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.FireDown)
	assert.True(t, input.FireHeld)

	// Frame 2
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.FireUp)
	assert.Equal(t, 0.0, input.Horizontal)
	assert.True(t, replayer.Done())

	// End of frames
	input, ok = replayer.GetInput()
	assert.False(t, ok)
	assert.Equal(t, system.InputState{}, input, "neutral past the end")
}

func TestReplayer_FramesAndReset(t *testing.T) {
	data := CreateTestReplayData(3)
	replayer := NewReplayer(data)

	assert.Equal(t, 3, replayer.TotalFrames())
	assert.Equal(t, 60, replayer.TickRate())

	replayer.GetInput()
	replayer.GetInput()
	assert.Equal(t, 2, replayer.CurrentFrame())

	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())
	assert.False(t, replayer.Done())
}

func TestCreateTestReplayData(t *testing.T) {
	data := CreateTestReplayData(60)

	assert.Equal(t, FormatVersion, data.Version)
	assert.Equal(t, "test", data.Config)
	assert.Len(t, data.Frames, 60)
	for i, frame := range data.Frames {
		assert.Equal(t, i, frame.F, "Frame number mismatch at index %d", i)
		assert.Equal(t, system.InputState{}, frame.Input())
	}
}

func TestRecorder_RecordFrame(t *testing.T) {
	r := NewRecorder("embedded:game.json", 60)
	assert.True(t, r.IsRecording())

	r.RecordFrame(system.InputState{Horizontal: 1})
	r.RecordFrame(system.InputState{FireDown: true, FireHeld: true})

	assert.Equal(t, 2, r.FrameCount())
	data := r.Data()
	assert.Equal(t, 0, data.Frames[0].F)
	assert.Equal(t, 1, data.Frames[1].F)
	assert.True(t, data.Frames[1].FD)
	assert.Equal(t, "embedded:game.json", data.Config)

	r.Stop()
	r.RecordFrame(system.InputState{Jump: true})
	assert.Equal(t, 2, r.FrameCount(), "stopped recorder ignores frames")
}

func TestRecorder_SaveAndLoad(t *testing.T) {
	r := NewRecorder("test", 60)
	inputs := []system.InputState{
		{Horizontal: 1, FaceRight: true},
		{Horizontal: 1, FireDown: true, FireHeld: true},
		{FireHeld: true},
		{FireUp: true, Jump: true},
	}
	for _, in := range inputs {
		r.RecordFrame(in)
	}

	filename := filepath.Join(t.TempDir(), "replay.json")
	require.NoError(t, r.Save(filename))

	data, err := LoadReplay(filename)
	require.NoError(t, err)
	assert.Equal(t, 60, data.TickRate)

	replayer := NewReplayer(*data)
	for i, want := range inputs {
		got, ok := replayer.GetInput()
		require.True(t, ok)
		assert.Equal(t, want, got, "frame %d", i)
	}
}

func TestRecorder_SaveEmpty(t *testing.T) {
	r := NewRecorder("test", 60)
	err := r.Save(filepath.Join(t.TempDir(), "empty.json"))
	assert.Error(t, err)
}

func TestLoadReplay_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadReplay(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = LoadReplay(bad)
	assert.Error(t, err)

	old := filepath.Join(dir, "old.json")
	require.NoError(t, os.WriteFile(old, []byte(`{"version":"1.0","frames":[]}`), 0o644))
	_, err = LoadReplay(old)
	assert.ErrorContains(t, err, "unsupported replay version")
}

func TestGenerateFilename(t *testing.T) {
	name := GenerateFilename()
	assert.True(t, strings.HasPrefix(name, "replay_"))
	assert.True(t, strings.HasSuffix(name, ".json"))
}
