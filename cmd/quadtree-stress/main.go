package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 2000, "The number of moving entities to index every frame.")
	width := flag.Float64("width", 1920, "Width of the playing field.")
	height := flag.Float64("height", 1080, "Height of the playing field.")
	capacity := flag.Int("capacity", 50, "Entities per leaf before it splits.")
	maxDepth := flag.Int("max-depth", 8, "Depth at which leaves stop splitting.")
	seed := flag.Int64("seed", 1, "Seed for the initial entity layout.")
	reuse := flag.Bool("reuse", false, "Clear and refill one tree instead of building a new one every frame.")
	unique := flag.Bool("unique", false, "Deduplicate query results by entity ID.")
	flag.Parse()

	if *entityCount < 0 || *width <= 0 || *height <= 0 || *capacity < 0 || *maxDepth < 0 {
		log.Fatalf("invalid configuration: entities=%d width=%v height=%v capacity=%d max-depth=%d",
			*entityCount, *width, *height, *capacity, *maxDepth)
	}

	log.Println("Starting quadtree stress test...")

	log.Printf("Populating field with %d entities...\n", *entityCount)
	w := newWorld(*width, *height, *entityCount, *capacity, *maxDepth, rand.New(rand.NewSource(*seed)))
	w.reuse = *reuse
	w.unique = *unique
	log.Println("Population complete.")

	report := &Report{
		Duration: *duration,
		Entities: *entityCount,
		Width:    *width,
		Height:   *height,
		Capacity: *capacity,
		MaxDepth: *maxDepth,
		Reuse:    *reuse,
		Unique:   *unique,
		Seed:     *seed,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	run(ctx, w, report)
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

// run steps the world until ctx is done, recording per-frame timings into report.
func run(ctx context.Context, w *world, report *Report) {
	startTime := time.Now()
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()
			w.move(deltaTime.Seconds())

			buildStart := time.Now()
			inserted := w.build()
			report.BuildTime.Samples = append(report.BuildTime.Samples, time.Since(buildStart))
			report.Dropped += int64(len(w.bodies) - inserted)

			queryStart := time.Now()
			report.Candidates += int64(w.collide())
			report.QueryTime.Samples = append(report.QueryTime.Samples, time.Since(queryStart))

			report.TotalFrames++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.BuildTime.Finalize()
	report.QueryTime.Finalize()
	if w.tree != nil {
		report.LastTree = w.tree.Stats()
	}
}
