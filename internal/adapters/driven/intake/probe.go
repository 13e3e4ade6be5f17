// Package intake provides video file intake adapters: container probing
// and drop-directory watching.
package intake

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/crosspost-labs/crosspost-cli/internal/core/domain"
	"github.com/crosspost-labs/crosspost-cli/internal/core/ports/driven"
	"github.com/crosspost-labs/crosspost-cli/internal/logger"
)

// Ensure MP4Probe implements the interface.
var _ driven.VideoProbe = (*MP4Probe)(nil)

// maxMoovSize caps how much movie header we are willing to load. A moov box
// past this size is not a normal clip.
const maxMoovSize = 32 << 20

// MP4Probe reads duration and dimensions from ISO-BMFF containers (.mp4 and
// .mov). Other containers, and files it cannot parse, probe as zero metadata
// with no error; intake treats those clips as unverified.
type MP4Probe struct{}

// NewMP4Probe creates an MP4 probe.
func NewMP4Probe() *MP4Probe {
	return &MP4Probe{}
}

// Probe inspects the container at path.
func (p *MP4Probe) Probe(_ context.Context, path string) (*domain.Video, error) {
	video := &domain.Video{Path: path}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	moov, err := findTopLevelBox(f, "moov")
	if err != nil {
		// Not a parseable ISO-BMFF file. The clip still imports, just
		// without verified metadata.
		logger.Debug("probe: %s: %v", path, err)
		return video, nil
	}

	parseMoov(moov, video)
	return video, nil
}

// findTopLevelBox scans the top-level boxes of an ISO-BMFF stream and
// returns the payload of the first box with the given type.
func findTopLevelBox(r io.ReadSeeker, boxType string) ([]byte, error) {
	for {
		var header [8]byte
		if _, err := io.ReadFull(r, header[:]); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, fmt.Errorf("box %q not found", boxType)
			}
			return nil, err
		}

		size := int64(binary.BigEndian.Uint32(header[:4]))
		name := string(header[4:8])

		headerLen := int64(8)
		if size == 1 {
			// 64-bit largesize follows the type.
			var large [8]byte
			if _, err := io.ReadFull(r, large[:]); err != nil {
				return nil, err
			}
			size = int64(binary.BigEndian.Uint64(large[:]))
			headerLen = 16
		}
		if size < headerLen {
			return nil, fmt.Errorf("malformed box %q with size %d", name, size)
		}

		payload := size - headerLen
		if name == boxType {
			if payload > maxMoovSize {
				return nil, fmt.Errorf("box %q too large (%d bytes)", name, payload)
			}
			buf := make([]byte, payload)
			if _, err := io.ReadFull(r, buf); err != nil {
				return nil, err
			}
			return buf, nil
		}

		if _, err := r.Seek(payload, io.SeekCurrent); err != nil {
			return nil, err
		}
	}
}

// parseMoov walks the moov children for mvhd (duration) and the first tkhd
// carrying non-zero dimensions.
func parseMoov(moov []byte, video *domain.Video) {
	walkBoxes(moov, func(name string, payload []byte) {
		switch name {
		case "mvhd":
			if d, ok := parseMvhd(payload); ok {
				video.Duration = d
			}
		case "trak":
			walkBoxes(payload, func(child string, childPayload []byte) {
				if child != "tkhd" || video.Width != 0 {
					return
				}
				if w, h, ok := parseTkhd(childPayload); ok && w > 0 && h > 0 {
					video.Width = w
					video.Height = h
				}
			})
		}
	})
}

// walkBoxes iterates the boxes packed into buf, calling fn for each.
func walkBoxes(buf []byte, fn func(name string, payload []byte)) {
	for len(buf) >= 8 {
		size := int(binary.BigEndian.Uint32(buf[:4]))
		name := string(buf[4:8])
		if size < 8 || size > len(buf) {
			return
		}
		fn(name, buf[8:size])
		buf = buf[size:]
	}
}

// parseMvhd extracts the presentation duration from a movie header box.
func parseMvhd(b []byte) (time.Duration, bool) {
	if len(b) < 4 {
		return 0, false
	}
	version := b[0]

	var timescale uint32
	var duration uint64
	switch version {
	case 0:
		// version/flags 4, ctime 4, mtime 4, timescale 4, duration 4.
		if len(b) < 20 {
			return 0, false
		}
		timescale = binary.BigEndian.Uint32(b[12:16])
		duration = uint64(binary.BigEndian.Uint32(b[16:20]))
	case 1:
		// version/flags 4, ctime 8, mtime 8, timescale 4, duration 8.
		if len(b) < 32 {
			return 0, false
		}
		timescale = binary.BigEndian.Uint32(b[20:24])
		duration = binary.BigEndian.Uint64(b[24:32])
	default:
		return 0, false
	}

	if timescale == 0 {
		return 0, false
	}
	return time.Duration(float64(duration) / float64(timescale) * float64(time.Second)), true
}

// parseTkhd extracts pixel dimensions from a track header box. Width and
// height are 16.16 fixed-point.
func parseTkhd(b []byte) (width, height int, ok bool) {
	if len(b) < 4 {
		return 0, 0, false
	}

	// The matrix and dimensions sit at the end of the box; their offset
	// depends on the version's timestamp width.
	var off int
	switch b[0] {
	case 0:
		off = 76
	case 1:
		off = 88
	default:
		return 0, 0, false
	}
	if len(b) < off+8 {
		return 0, 0, false
	}

	width = int(binary.BigEndian.Uint32(b[off:off+4]) >> 16)
	height = int(binary.BigEndian.Uint32(b[off+4:off+8]) >> 16)
	return width, height, true
}
