package domain

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Video intake limits.
const (
	// MaxVideoSize is the largest accepted file (500 MiB).
	MaxVideoSize = 500 * 1024 * 1024
	// MaxVideoDuration is the longest accepted clip (90 seconds).
	MaxVideoDuration = 90 * time.Second
)

// videoExtensions are the accepted container extensions, lower-cased.
var videoExtensions = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".webm": true,
}

// Video is an imported clip together with its probed metadata.
type Video struct {
	// Path is the local file path.
	Path string `json:"path"`
	// Size is the file size in bytes.
	Size int64 `json:"size"`
	// Duration is the probed clip length. Zero when the container could not
	// be probed (the clip is accepted with a warning).
	Duration time.Duration `json:"duration"`
	// Width and Height are the probed pixel dimensions, zero when unknown.
	Width  int `json:"width"`
	Height int `json:"height"`
}

// IsVideoFile returns true if the path carries a known video extension.
func IsVideoFile(path string) bool {
	return videoExtensions[strings.ToLower(filepath.Ext(path))]
}

// Portrait returns true when the clip is taller than it is wide.
func (v *Video) Portrait() bool {
	return v.Height > v.Width
}

// Validate checks the intake limits. The extension is checked first so an
// unsupported container never reports a size or duration problem.
func (v *Video) Validate() error {
	if !IsVideoFile(v.Path) {
		return fmt.Errorf("%w: %s", ErrVideoUnsupported, filepath.Ext(v.Path))
	}
	if v.Size > MaxVideoSize {
		return fmt.Errorf("%w: %d bytes (maximum 500MB)", ErrVideoTooLarge, v.Size)
	}
	if v.Duration > MaxVideoDuration {
		return fmt.Errorf("%w: video is %ds long, maximum allowed is 90 seconds",
			ErrVideoTooLong, int(v.Duration.Seconds()+0.5))
	}
	return nil
}
