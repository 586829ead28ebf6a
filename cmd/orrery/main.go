package main

import (
	"flag"
	"fmt"
	"os"
	"sync"

	kitlog "github.com/go-kit/kit/log"

	orrery "github.com/vesmiranmara-gif/Pixelversum-sub002"
)

// Demo propagation: generates a small star system from a seed, runs it for
// the requested number of ticks and streams the orbit traces to CSV.
func main() {
	seed := flag.String("seed", "pixelversum", "world generation seed")
	ticks := flag.Int("ticks", 1000, "number of simulation ticks")
	dt := flag.Float64("dt", 1.0, "tick duration in seconds")
	trace := flag.String("trace", "", "base name of the CSV trace (empty disables export)")
	flag.Parse()

	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))

	cfg, err := orrery.LoadSimConfig()
	if err != nil {
		logger.Log("level", "warning", "subsys", "config", "err", err)
	}

	prop := orrery.NewPropagator(cfg.G, logger)
	star := orrery.NewCelestialBody("star", "Vesmira", 5000, 300)
	prop.AddBody(star)

	rng := orrery.NewRandFromString(*seed)
	order := []orrery.BodyID{}
	for p := 0; p < 4; p++ {
		id := orrery.BodyID(fmt.Sprintf("planet-%d", p))
		body := orrery.NewCelestialBody(id, fmt.Sprintf("Planet %d", p+1), rng.Range(50, 400), rng.Range(20, 80))
		prop.AddBody(body)
		a := 800 + 600*float64(p) + rng.Range(0, 200)
		if _, err := prop.InitializeOrbit(id, star.ID, a, rng.Next()); err != nil {
			logger.Log("level", "critical", "subsys", "orbit", "body", id, "err", err)
			os.Exit(1)
		}
		order = append(order, id)
	}
	// A moon around the innermost planet, to exercise nested orbits.
	moon := orrery.NewCelestialBody("moon-0", "Moon", 5, 8)
	prop.AddBody(moon)
	if _, err := prop.InitializeOrbit(moon.ID, "planet-0", 60, rng.Next()); err != nil {
		logger.Log("level", "critical", "subsys", "orbit", "body", moon.ID, "err", err)
		os.Exit(1)
	}
	order = append(order, moon.ID)

	states := make(chan orrery.OrbitState, 1000)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		conf := orrery.ExportConfig{Filename: *trace, OutputDir: cfg.OutputDir, Timestamp: true}
		if err := orrery.StreamStates(conf, states); err != nil {
			logger.Log("level", "critical", "subsys", "export", "err", err)
		}
	}()

	for tick := 0; tick < *ticks; tick++ {
		for _, state := range prop.PropagateSystem(order, *dt) {
			states <- state
		}
	}
	close(states)
	wg.Wait()

	for _, id := range order {
		body, _ := prop.Body(id)
		logger.Log("level", "info", "subsys", "astro", "status", "finished", "body", id,
			"x", fmt.Sprintf("%.1f", body.R[0]), "y", fmt.Sprintf("%.1f", body.R[1]), "z", fmt.Sprintf("%.1f", body.R[2]))
	}
}
