package orrery

import (
	"fmt"
	"os"
	"time"

	"github.com/soniakeys/meeus/julian"
)

// ExportConfig configures the orbit-trace exporter.
type ExportConfig struct {
	Filename  string // base name; no output is written when empty
	OutputDir string
	Timestamp bool // stamp the file name with the wall-clock creation time
}

// IsUseless returns whether this configuration would not export anything.
func (c ExportConfig) IsUseless() bool {
	return c.Filename == ""
}

// createTraceFile returns a file which requires a defer close statement!
func createTraceFile(conf ExportConfig, start time.Time) (*os.File, error) {
	dir := conf.OutputDir
	if dir == "" {
		dir = "."
	}
	var filename string
	if conf.Timestamp {
		t := time.Now()
		filename = fmt.Sprintf("%s/trace-%s-%d-%02d-%02dT%02d.%02d.%02d.csv", dir, conf.Filename, t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
	} else {
		filename = fmt.Sprintf("%s/trace-%s.csv", dir, conf.Filename)
	}
	f, err := os.Create(filename)
	if err != nil {
		return nil, err
	}
	// Header. Time is a Julian date, angles are in radians.
	f.WriteString(fmt.Sprintf(`# Creation date (UTC): %s
# Simulation time start (UTC): %s
jd,body,x,y,z,vx,vy,vz,radius,meanAnomaly,eccentricAnomaly,trueAnomaly
`, time.Now().UTC(), start.UTC()))
	return f, nil
}

// StreamStates writes every state received on the channel to a CSV trace
// file, for offline plotting or replay by the renderer. It returns when the
// channel is closed. Run it in its own goroutine next to the propagation
// loop, the way cmd/orrery does.
func StreamStates(conf ExportConfig, states <-chan OrbitState) error {
	if conf.IsUseless() {
		for range states {
			// Drain so the producer never blocks.
		}
		return nil
	}
	var f *os.File
	for state := range states {
		if f == nil {
			var err error
			if f, err = createTraceFile(conf, state.Epoch); err != nil {
				return err
			}
			defer f.Close()
		}
		f.WriteString(fmt.Sprintf("%.8f,%s,%f,%f,%f,%f,%f,%f,%f,%f,%f,%f\n",
			julian.TimeToJD(state.Epoch), state.Body,
			state.R[0], state.R[1], state.R[2],
			state.V[0], state.V[1], state.V[2],
			state.Radius, state.MeanAnomaly, state.EccentricAnomaly, state.TrueAnomaly))
	}
	return nil
}
