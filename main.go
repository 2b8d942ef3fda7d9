package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/akawashiro/BriCA1/pkg/scheduler"
)

// counter is a minimal component that counts its fires.
type counter struct {
	lastInputTime float64
	fires         int
}

func (c *counter) Input(t float64) error  { c.lastInputTime = t; return nil }
func (c *counter) Fire() error            { c.fires++; return nil }
func (c *counter) Output(t float64) error { return nil }
func (c *counter) Offset() float64        { return 0 }
func (c *counter) Interval() float64      { return 1.0 }
func (c *counter) LastInputTime() float64 { return c.lastInputTime }

type components []scheduler.Component

func (s components) AllComponents() []scheduler.Component { return s }

func main() {
	steps := 5
	if len(os.Args) > 1 {
		n, err := strconv.Atoi(os.Args[1])
		if err != nil || n < 0 {
			fmt.Println("Usage: brica [steps]")
			return
		}
		steps = n
	}

	c := &counter{}
	s := scheduler.NewVirtualTimeSync(1.0)
	if err := s.Update(components{c}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for i := 0; i < steps; i++ {
		t, err := s.Step()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("step %d: time %.1f\n", i+1, t)
	}
	fmt.Printf("fired %d times\n", c.fires)
}
