package infra

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path"
	"runtime"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

var initPC = caller()

func caller() Frame {
	var PCs [3]uintptr
	n := runtime.Callers(2, PCs[:])
	frames := runtime.CallersFrames(PCs[:n])
	frame, _ := frames.Next()
	return Frame(frame.PC)
}

func TestFrameFormat(t *testing.T) {
	wantName := initPC.name()
	wantFile := initPC.file()
	wantLine := strconv.Itoa(initPC.line())

	testcases := []struct {
		Frame
		format string
		want   string
	}{
		{initPC, "%s", path.Base(wantFile)},
		{initPC, "%+s", wantName + "\n\t" + wantFile},
		{initPC, "%n", funcName(wantName)},
		{initPC, "%d", wantLine},
		{initPC, "%v", path.Base(wantFile) + ":" + wantLine},
		{initPC, "%+v", wantName + "\n\t" + wantFile + ":" + wantLine},
		{Frame(0), "%s", "unknownFile"},
		{Frame(0), "%n", "unknownFunc"},
		{Frame(0), "%d", "0"},
	}

	for _, tc := range testcases {
		frameRes := fmt.Sprintf(tc.format, tc.Frame)
		require.Equal(t, tc.want, frameRes)
	}
}

func TestFrameMarshalText(t *testing.T) {
	want := initPC.name() + " " + initPC.file() + ":" + strconv.Itoa(initPC.line())

	testcases := []struct {
		Frame
		expected []byte
	}{
		{initPC, []byte(want)},
		{Frame(0), []byte("unknownFrame")},
	}
	for _, tc := range testcases {
		_bytes, err := tc.Frame.MarshalText()
		require.NoError(t, err)
		require.Greater(t, len(_bytes), 0)
		require.True(t, bytes.Equal(_bytes, tc.expected))
	}
}

func TestFrameMarshalJSON(t *testing.T) {
	want := fmt.Sprintf(`{"func":"%s","fileAndLine":"%s:%d"}`, initPC.name(), initPC.file(), initPC.line())

	testcases := []struct {
		Frame
		expected []byte
	}{
		{initPC, []byte(want)},
		{Frame(0), []byte("{\"frame\":\"unknownFrame\"}")},
	}
	for _, tc := range testcases {
		_bytes, err := json.Marshal(tc.Frame)
		require.NoError(t, err)
		require.Greater(t, len(_bytes), 0)
		require.True(t, bytes.Equal(_bytes, tc.expected))
	}
}

func TestNewErrorStack_CapturesCallerAndMessage(t *testing.T) {
	err := NewErrorStack("invalid max level %d", 99)
	require.Equal(t, "invalid max level 99", err.Error())

	frames := err.StackTrace()
	require.NotEmpty(t, frames)
	require.Contains(t, frames[0].name(), "TestNewErrorStack_CapturesCallerAndMessage")
}
