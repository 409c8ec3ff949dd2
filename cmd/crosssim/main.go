// Command crosssim runs the simulation without a window, replaying a
// scripted button sequence at the fixed tick rate.
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/cross/config"
	"github.com/automoto/cross/session"
)

const defaultScript = "idle:30,right:20,right+a:1,right:15,right+b:1,idle:40,left+up+b:1,idle:30"

func main() {
	script := flag.String("script", defaultScript, "Button script: comma-separated buttons:ticks steps")
	tickRate := flag.Int("tickrate", config.C.TickRate, "Ticks per second")
	trace := flag.Bool("trace", false, "Log position and camera every tick")
	tuning := flag.String("tuning", "", "YAML file overriding physics and camera tuning")
	watch := flag.Bool("watch", false, "Reload the tuning file when it changes")
	freeFly := flag.Bool("freefly", false, "Use the free-fly profile")
	flag.Parse()

	if *tickRate <= 0 {
		log.Fatalf("Invalid tick rate %d", *tickRate)
	}

	if *tuning != "" {
		t, err := config.LoadTuning(*tuning)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		t.Apply()
	}

	source, err := session.ParseScript(*script)
	if err != nil {
		log.Fatalf("Failed to parse script: %v", err)
	}

	opts := session.Options{}
	if *freeFly {
		opts.Profile = config.ProfileFreeFly
	}
	s, err := session.New(opts)
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}
	defer s.Close()

	loop := session.NewGameLoop(s, source, *tickRate)
	if *trace {
		loop.OnFrame = func(f session.Frame) {
			log.Printf("tick %d x: %d, y: %d, camX: %d, camY: %d, pose: %s/%d",
				f.Tick, f.Body.X, f.Body.Y, f.Camera.X, f.Camera.Y, f.Pose, f.Frame)
		}
	}

	if *watch && *tuning != "" {
		w, err := config.NewTuningWatcher(*tuning)
		if err != nil {
			log.Printf("Warning: Could not watch tuning file: %v", err)
		} else {
			defer w.Close()
			loop.Tuning = w.Updates
			go func() {
				for err := range w.Errors {
					log.Printf("Warning: Could not reload tuning: %v", err)
				}
			}()
		}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Stopping simulation...")
		loop.Stop()
	}()

	log.Printf("Running %d scripted ticks (tick rate: %d/s, profile: %s)", source.Len(), *tickRate, opts.Profile)
	loop.Run()

	body := s.Body()
	cam := s.Camera()
	log.Printf("Final x: %d, y: %d, vx: %.2f, vy: %.2f, camX: %d, camY: %d, pose: %s",
		body.X, body.Y, body.VX, body.VY, cam.X, cam.Y, body.Pose)
}
