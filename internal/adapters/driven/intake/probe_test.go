package intake

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// box assembles one ISO-BMFF box.
func box(name string, payload []byte) []byte {
	b := make([]byte, 8+len(payload))
	binary.BigEndian.PutUint32(b[:4], uint32(8+len(payload)))
	copy(b[4:8], name)
	copy(b[8:], payload)
	return b
}

// mvhdV0 builds a version 0 movie header with the given timescale and duration.
func mvhdV0(timescale, duration uint32) []byte {
	payload := make([]byte, 100)
	binary.BigEndian.PutUint32(payload[12:16], timescale)
	binary.BigEndian.PutUint32(payload[16:20], duration)
	return box("mvhd", payload)
}

// tkhdV0 builds a version 0 track header with 16.16 fixed-point dimensions.
func tkhdV0(width, height uint32) []byte {
	payload := make([]byte, 84)
	binary.BigEndian.PutUint32(payload[76:80], width<<16)
	binary.BigEndian.PutUint32(payload[80:84], height<<16)
	return box("tkhd", payload)
}

func writeMP4(t *testing.T, boxes ...[]byte) string {
	t.Helper()
	var data []byte
	for _, b := range boxes {
		data = append(data, b...)
	}
	path := filepath.Join(t.TempDir(), "clip.mp4")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestMP4Probe_Probe(t *testing.T) {
	ftyp := box("ftyp", []byte("isom\x00\x00\x02\x00isomiso2"))
	moov := box("moov", append(mvhdV0(1000, 45000), box("trak", tkhdV0(1080, 1920))...))
	path := writeMP4(t, ftyp, moov)

	video, err := NewMP4Probe().Probe(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 45*time.Second, video.Duration)
	assert.Equal(t, 1080, video.Width)
	assert.Equal(t, 1920, video.Height)
	assert.True(t, video.Portrait())
}

func TestMP4Probe_Probe_MvhdV1(t *testing.T) {
	payload := make([]byte, 112)
	payload[0] = 1 // version
	binary.BigEndian.PutUint32(payload[20:24], 600)
	binary.BigEndian.PutUint64(payload[24:32], 36000)
	moov := box("moov", box("mvhd", payload))
	path := writeMP4(t, box("ftyp", []byte("isom")), moov)

	video, err := NewMP4Probe().Probe(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, time.Minute, video.Duration)
}

func TestMP4Probe_Probe_SkipsAudioTrack(t *testing.T) {
	// An audio track carries zero dimensions; the probe keeps looking.
	audio := box("trak", tkhdV0(0, 0))
	videoTrack := box("trak", tkhdV0(1920, 1080))
	moov := box("moov", append(mvhdV0(1000, 10000), append(audio, videoTrack...)...))
	path := writeMP4(t, box("ftyp", []byte("isom")), moov)

	video, err := NewMP4Probe().Probe(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 1920, video.Width)
	assert.Equal(t, 1080, video.Height)
	assert.False(t, video.Portrait())
}

func TestMP4Probe_Probe_NotISOBMFF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.webm")
	require.NoError(t, os.WriteFile(path, []byte("\x1a\x45\xdf\xa3 not mp4 data"), 0o644))

	// Unparseable containers import with unverified metadata, not an error.
	video, err := NewMP4Probe().Probe(context.Background(), path)
	require.NoError(t, err)
	assert.Zero(t, video.Duration)
	assert.Zero(t, video.Width)
}

func TestMP4Probe_Probe_Truncated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.mp4")
	require.NoError(t, os.WriteFile(path, []byte{0, 0}, 0o644))

	video, err := NewMP4Probe().Probe(context.Background(), path)
	require.NoError(t, err)
	assert.Zero(t, video.Duration)
}

func TestMP4Probe_Probe_MissingFile(t *testing.T) {
	_, err := NewMP4Probe().Probe(context.Background(), filepath.Join(t.TempDir(), "absent.mp4"))
	assert.Error(t, err)
}
