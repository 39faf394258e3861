package minase

import (
	"context"
	"strconv"
	"time"

	"github.com/sat1226/minase/src/procexec"
)

// ScaleToFit computes the largest (dstW, dstH) that preserves aspect ratio
// and fits within (boxW, boxH), choosing the smaller of the width-ratio and
// height-ratio and flooring (spec.md 4.3, tested by the "Image scale"
// property in spec.md 8).
func ScaleToFit(srcW, srcH, boxW, boxH int) (dstW, dstH int) {
	if srcW <= 0 || srcH <= 0 || boxW <= 0 || boxH <= 0 {
		return 0, 0
	}
	wRatio := float64(boxW) / float64(srcW)
	hRatio := float64(boxH) / float64(srcH)
	ratio := wRatio
	if hRatio < ratio {
		ratio = hRatio
	}
	if ratio > 1 {
		ratio = 1 // never upscale past the source
	}
	dstW = int(float64(srcW) * ratio)
	dstH = int(float64(srcH) * ratio)
	if dstW < 1 {
		dstW = 1
	}
	if dstH < 1 {
		dstH = 1
	}
	return dstW, dstH
}

// renderImagePreview spawns the configured sixel converter with -w/-h
// target dimensions (the preview pane's pixel box, set by the Controller
// from the terminal backend's reported geometry) and captures its stdout
// as the raw payload (spec.md 4.3 "Image path").  Returns ok=false when the
// converter is missing or fails, so the caller falls back to a stub.
func renderImagePreview(job *PreviewJob, target FileEntry, cfg PreviewConfig) (PreviewPayload, bool) {
	if job.Cancelled() {
		return PreviewPayload{}, false
	}
	converter := cfg.SixelCommand
	if converter == "" {
		converter = "img2sixel"
	}
	boxW, boxH := cfg.PreviewBoxPixelW, cfg.PreviewBoxPixelH
	if boxW <= 0 {
		boxW = 640
	}
	if boxH <= 0 {
		boxH = 480
	}
	cmd, err := procexec.Command(converter,
		"-w", strconv.Itoa(boxW), "-h", strconv.Itoa(boxH), target.Path())
	if err != nil {
		return PreviewPayload{}, false
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		ticker := time.NewTicker(5 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				if job.Cancelled() {
					cancel()
					cmd.Kill()
					return
				}
			}
		}
	}()

	out, err := cmd.Output(ctx)
	if err != nil || job.Cancelled() {
		return PreviewPayload{}, false
	}
	return PreviewPayload{Kind: PayloadSixel, Sixel: out}, true
}
