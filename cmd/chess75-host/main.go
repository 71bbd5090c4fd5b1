package main

import (
	"flag"
	"log"
	"os"

	"github.com/hailam/chess75/internal/engine"
	"github.com/hailam/chess75/internal/host"
	"github.com/hailam/chess75/internal/telemetry"
)

var (
	telemetryPath = flag.String("telemetry-path", "", "directory for session telemetry (empty: $CHESS75_TELEMETRY_PATH, else the platform data directory)")
	noTelemetry   = flag.Bool("no-telemetry", false, "disable session telemetry entirely")
)

func main() {
	flag.Parse()

	dir := *telemetryPath
	if dir == "" {
		dir = os.Getenv("CHESS75_TELEMETRY_PATH")
	}

	var store *telemetry.Store
	if !*noTelemetry {
		if dir == "" {
			d, err := telemetry.DefaultDir()
			if err != nil {
				log.Printf("telemetry disabled: %v", err)
			} else {
				dir = d
			}
		}
		if dir != "" {
			s, err := telemetry.Open(dir)
			if err != nil {
				log.Printf("telemetry disabled: could not open %s: %v", dir, err)
			} else {
				store = s
				defer store.Close()
			}
		}
	}

	eng := engine.New()
	protocol := host.New(eng, store, os.Stdout)
	protocol.Run(os.Stdin)
}
