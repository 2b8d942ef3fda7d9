package scheduler

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
)

// StepRecord is a single step observation in a trace. Spent and Lagged are
// populated only for schedulers that sample wall-clock cost.
type StepRecord struct {
	Step   int     `json:"step"`
	Time   float64 `json:"time"`
	Spent  float64 `json:"spent,omitempty"`
	Lagged bool    `json:"lagged,omitempty"`
}

// LoadTrace reads a trace from a JSON-lines file.
func LoadTrace(filename string) ([]StepRecord, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace file: %w", err)
	}
	defer f.Close()

	var trace []StepRecord
	dec := json.NewDecoder(bufio.NewReader(f))
	for dec.More() {
		var r StepRecord
		if err := dec.Decode(&r); err != nil {
			return nil, fmt.Errorf("failed to decode step record: %w", err)
		}
		trace = append(trace, r)
	}
	return trace, nil
}

// SaveTrace writes a trace to a JSON-lines file.
func SaveTrace(filename string, trace []StepRecord) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create trace file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for _, r := range trace {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode step record: %w", err)
		}
	}
	return w.Flush()
}
