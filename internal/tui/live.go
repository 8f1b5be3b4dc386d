package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/san-kum/dynarray/internal/script"
	"github.com/san-kum/dynarray/internal/viz"
)

// LiveRenderer is a script.Observer that prints each step as it is applied,
// pausing between frames so a run can be watched.
type LiveRenderer struct {
	out       io.Writer
	theme     viz.Theme
	frameRate int
	sleep     func(time.Duration)
}

func NewLiveRenderer(out io.Writer, theme viz.Theme, frameRate int) *LiveRenderer {
	return &LiveRenderer{
		out:       out,
		theme:     theme,
		frameRate: frameRate,
		sleep:     time.Sleep,
	}
}

func (r *LiveRenderer) OnStep(step script.Step) {
	highlight := -1
	if step.OK() {
		highlight = step.Pos
	}
	fmt.Fprintln(r.out, viz.StepLine(step, r.theme))
	fmt.Fprintln(r.out, "     "+viz.Slots(step.After, highlight, r.theme))

	if r.frameRate > 0 {
		r.sleep(time.Second / time.Duration(r.frameRate))
	}
}
