package replay

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/wizzy/internal/application/controller"
	"github.com/younwookim/wizzy/internal/application/state"
	"github.com/younwookim/wizzy/internal/domain/geom"
	"github.com/younwookim/wizzy/internal/domain/input"
)

func TestReplayData_JSONMarshal(t *testing.T) {
	data := ReplayData{
		Version:   "1.0",
		StartTime: "2024-01-01T00:00:00Z",
		Frames: []FrameInput{
			{F: 0, PX: 100, PY: 100},
			{F: 1, A: true, PX: 110, PY: 100, PP: true, PJ: true},
		},
	}

	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	var decoded ReplayData
	require.NoError(t, json.Unmarshal(jsonData, &decoded))

	assert.Equal(t, data, decoded)
}

func TestFrameInput_OmitsFalseFlags(t *testing.T) {
	out, err := json.Marshal(FrameInput{F: 3, PX: 1, PY: 2})
	require.NoError(t, err)

	assert.JSONEq(t, `{"f":3,"px":1,"py":2}`, string(out))
}

func TestReplayer_Next(t *testing.T) {
	data := ReplayData{
		Version: "1.0",
		Frames: []FrameInput{
			{F: 0, A: true, PX: 100, PY: 100},
			{F: 1, PX: 110, PY: 95, PP: true, PJ: true},
			{F: 2, PX: 120, PY: 90, PP: true},
		},
	}

	replayer := NewReplayer(data)

	// Frame 0
	in, ok := replayer.Next()
	require.True(t, ok)
	assert.True(t, in.ActionJustPressed)
	assert.False(t, in.PointerPressed)
	assert.Equal(t, 100, in.PointerX)

	// Frame 1
	in, ok = replayer.Next()
	require.True(t, ok)
	assert.False(t, in.ActionJustPressed)
	assert.True(t, in.PointerPressed)
	assert.True(t, in.PointerJustPressed)

	// Frame 2
	in, ok = replayer.Next()
	require.True(t, ok)
	assert.True(t, in.PointerPressed)
	assert.False(t, in.PointerJustPressed)
	assert.Equal(t, 90, in.PointerY)

	// End of frames
	_, ok = replayer.Next()
	assert.False(t, ok)
}

func TestReplayer_CurrentFrame(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData(5, 100, 100))

	assert.Equal(t, 0, replayer.CurrentFrame())

	replayer.Next()
	assert.Equal(t, 1, replayer.CurrentFrame())

	replayer.Next()
	replayer.Next()
	assert.Equal(t, 3, replayer.CurrentFrame())
}

func TestReplayer_TotalFrames(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData(10, 100, 100))

	assert.Equal(t, 10, replayer.TotalFrames())
}

func TestReplayer_Reset(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData(3, 100, 100))

	// Advance to end
	replayer.Next()
	replayer.Next()
	replayer.Next()
	_, ok := replayer.Next()
	assert.False(t, ok)

	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())

	in, ok := replayer.Next()
	assert.True(t, ok)
	assert.Equal(t, 100, in.PointerX)
}

func TestCreateTestReplayData(t *testing.T) {
	data := CreateTestReplayData(60, 200, 150)

	assert.Equal(t, Version, data.Version)
	assert.Equal(t, 60, len(data.Frames))

	for i, frame := range data.Frames {
		assert.Equal(t, i, frame.F, "Frame number mismatch at index %d", i)
		assert.Equal(t, 200, frame.PX)
		assert.Equal(t, 150, frame.PY)
		assert.False(t, frame.A)
	}
}

func TestRecorder_RecordFrame(t *testing.T) {
	r := NewRecorder()

	r.RecordFrame(input.State{ActionJustPressed: true, PointerX: 5, PointerY: 6})
	r.RecordFrame(input.State{PointerPressed: true, PointerJustPressed: true})

	data := r.GetData()
	require.Len(t, data.Frames, 2)
	assert.Equal(t, FrameInput{F: 0, A: true, PX: 5, PY: 6}, data.Frames[0])
	assert.Equal(t, FrameInput{F: 1, PP: true, PJ: true}, data.Frames[1])
	assert.Equal(t, 2, r.FrameCount())
}

func TestRecorder_Stop(t *testing.T) {
	r := NewRecorder()
	assert.True(t, r.IsRecording())

	r.RecordFrame(input.State{})
	r.Stop()
	r.RecordFrame(input.State{})

	assert.False(t, r.IsRecording())
	assert.Equal(t, 1, r.FrameCount())
}

func TestRecorder_SaveEmpty(t *testing.T) {
	r := NewRecorder()

	assert.Error(t, r.Save(filepath.Join(t.TempDir(), "empty.json")))
}

func TestRecorder_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replay.json")
	r := NewRecorder()
	r.RecordFrame(input.State{ActionJustPressed: true})
	r.RecordFrame(input.State{PointerX: 120, PointerY: 85, PointerPressed: true, PointerJustPressed: true})

	require.NoError(t, r.Save(path))

	loaded, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, r.GetData(), *loaded)
}

func TestLoadReplay_MissingFile(t *testing.T) {
	_, err := LoadReplay(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestGenerateFilename(t *testing.T) {
	name := GenerateFilename()

	assert.Regexp(t, `^replay_\d{8}_\d{6}\.json$`, name)
}

// runSession drives a fresh controller with inputs and returns the screen
// after each frame plus the final state.
func runSession(next func() (input.State, bool)) ([]state.Screen, *state.GameState) {
	ctrl := controller.New(controller.DefaultConfig(), nil)
	st := state.Default()
	canvas := geom.New(0, 0, 256, 144)

	var screens []state.Screen
	for {
		in, ok := next()
		if !ok {
			break
		}
		ctrl.Update(st, in, canvas)
		screens = append(screens, st.Screen)
	}
	return screens, st
}

func TestReplay_ReproducesSession(t *testing.T) {
	inputs := []input.State{
		{},
		{ActionJustPressed: true},
		{PointerX: 120, PointerY: 85},
		{PointerX: 120, PointerY: 85, PointerPressed: true, PointerJustPressed: true},
		{PointerX: 120, PointerY: 85, PointerPressed: true},
		{},
		{ActionJustPressed: true},
		{},
	}

	// Record a live session
	rec := NewRecorder()
	i := 0
	liveScreens, liveState := runSession(func() (input.State, bool) {
		if i >= len(inputs) {
			return input.State{}, false
		}
		in := inputs[i]
		i++
		rec.RecordFrame(in)
		return in, true
	})

	// Replay it
	replayScreens, replayState := runSession(NewReplayer(rec.GetData()).Next)

	assert.Equal(t, liveScreens, replayScreens)
	assert.Equal(t, liveState.Screen, replayState.Screen)
	assert.Equal(t, liveState.Wizzy.State(), replayState.Wizzy.State())

	assert.Equal(t, state.ScreenTitle, replayState.Screen)
	assert.Equal(t, 200.0, replayState.Wizzy.Target())
}
