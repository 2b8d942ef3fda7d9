package cmd

import (
	"time"

	"github.com/akawashiro/BriCA1/pkg/config"
	"github.com/akawashiro/BriCA1/pkg/scheduler"
)

// demoComponent is the stand-in processing unit driven by the run command.
// It counts lifecycle calls and optionally burns wall-clock time in Fire to
// exercise the real time scheduler's pacing.
type demoComponent struct {
	name     string
	interval float64
	offset   float64
	work     time.Duration

	lastInputTime float64
	fires         int
}

func (c *demoComponent) Input(t float64) error {
	c.lastInputTime = t
	return nil
}

func (c *demoComponent) Fire() error {
	if c.work > 0 {
		time.Sleep(c.work)
	}
	c.fires++
	return nil
}

func (c *demoComponent) Output(t float64) error { return nil }

func (c *demoComponent) Offset() float64        { return c.offset }
func (c *demoComponent) Interval() float64      { return c.interval }
func (c *demoComponent) LastInputTime() float64 { return c.lastInputTime }

// componentList is a Source over a fixed component slice.
type componentList []scheduler.Component

func (l componentList) AllComponents() []scheduler.Component { return l }

// demoSource builds components from the run configuration, falling back to
// a single one-second component when none are configured.
func demoSource(defs []config.ComponentConfig) componentList {
	if len(defs) == 0 {
		defs = []config.ComponentConfig{{Name: "demo", Interval: 1.0}}
	}
	list := make(componentList, 0, len(defs))
	for _, d := range defs {
		list = append(list, &demoComponent{
			name:     d.Name,
			interval: d.Interval,
			offset:   d.Offset,
			work:     time.Duration(d.Work * float64(time.Second)),
		})
	}
	return list
}
