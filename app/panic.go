package app

import (
	"fmt"
	"runtime/debug"
	"strings"

	"fxray/hal"
	"fxray/rt/frame"
	"fxray/rt/overlay"
)

// showPanic logs a recovered panic with its stack, paints it on the display
// when one is available and returns it as an error.
func showPanic(h hal.HAL, v any) error {
	stack := strings.Split(string(debug.Stack()), "\n")
	logLine(h, fmt.Sprintf("fxray panic: %v", v))
	for _, line := range stack {
		if line != "" {
			logLine(h, line)
		}
	}

	err := fmt.Errorf("app: panic: %v", v)
	if h == nil || h.Display() == nil {
		return err
	}
	fb := h.Display().Framebuffer()
	if fb == nil || fb.Buffer() == nil || fb.Format() != hal.PixelFormatRGB565 {
		return err
	}

	lines := []string{"fxray panic:", fmt.Sprintf("%v", v), "stack:"}
	for _, line := range stack {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	t := &frame.RGB565Target{Buf: fb.Buffer(), Stride: fb.StrideBytes(), W: fb.Width(), H: fb.Height()}
	overlay.Lines(overlay.New(t), lines, overlay.Black, overlay.White)
	_ = fb.Present()
	return err
}
