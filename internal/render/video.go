package render

import (
	"bytes"
	"fmt"
	"image/jpeg"

	"github.com/icza/mjpeg"

	"wildfire-ca/internal/core"
	"wildfire-ca/internal/scenario"
)

// VideoRecorder writes one MJPEG frame per simulated hour to an AVI file. It
// is a scenario.StepObserver and records a single run.
type VideoRecorder struct {
	w      mjpeg.AviWriter
	scale  int
	width  int
	height int
	buf    bytes.Buffer
	opts   jpeg.Options
	frames int
}

// NewVideoRecorder creates path for a size grid drawn at scale pixels per cell.
func NewVideoRecorder(path string, size core.Size, scale, fps int) (*VideoRecorder, error) {
	if scale < 1 {
		scale = 1
	}
	if fps < 1 {
		fps = 1
	}
	width := size.W * scale
	height := size.H*scale + labelHeight
	w, err := mjpeg.New(path, int32(width), int32(height), int32(fps))
	if err != nil {
		return nil, fmt.Errorf("create video %s: %w", path, err)
	}
	return &VideoRecorder{
		w:      w,
		scale:  scale,
		width:  width,
		height: height,
		opts:   jpeg.Options{Quality: 90},
	}, nil
}

// ObserveStep appends a frame of grid captioned with the hour and burned area.
func (v *VideoRecorder) ObserveStep(_ *scenario.Run, rec scenario.StepRecord, grid *core.FloatGrid) error {
	if grid.W*v.scale != v.width || grid.H*v.scale+labelHeight != v.height {
		return fmt.Errorf("video: grid %dx%d does not match recorder", grid.W, grid.H)
	}
	label := fmt.Sprintf("hour %d  %.2f ha", rec.Hour+1, rec.Metrics.BurnedAreaHectares)
	img := Frame(grid, v.scale, label)

	v.buf.Reset()
	if err := jpeg.Encode(&v.buf, img, &v.opts); err != nil {
		return fmt.Errorf("video: encode frame: %w", err)
	}
	if err := v.w.AddFrame(v.buf.Bytes()); err != nil {
		return fmt.Errorf("video: add frame: %w", err)
	}
	v.frames++
	return nil
}

// Frames reports how many frames were written.
func (v *VideoRecorder) Frames() int { return v.frames }

// Close finalises the AVI index.
func (v *VideoRecorder) Close() error {
	return v.w.Close()
}
