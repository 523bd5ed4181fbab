package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"keyboard3d/internal/assets"
	"keyboard3d/internal/config"
	"keyboard3d/internal/keyboard"
	"keyboard3d/internal/viewer"
)

func main() {
	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	configPath := flag.String("config", config.DefaultPath, "path to the JSON config file")
	check := flag.Bool("check", false, "validate the keyboard bundle and exit without opening a window")
	dumpScene := flag.String("dump-scene", "", "write a JSON snapshot of the scene here on exit")
	debug := flag.Bool("debug", false, "show the debug overlay")
	writeConfig := flag.Bool("write-config", false, "write the effective config to the -config path and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("Config %s ignored: %v", *configPath, err)
	}

	if *writeConfig {
		if err := config.Save(*configPath, cfg); err != nil {
			log.Fatalf("Writing config failed: %v", err)
		}
		log.Printf("Config written to %s", *configPath)
		return
	}
	if *debug {
		cfg.DebugOverlay = true
	}

	cache := assets.Init(cfg.AssetRoot, assets.RaylibUploader())
	keyboard.Preload(cache)

	if *check {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := keyboard.Check(ctx, cache); err != nil {
			log.Fatalf("Bundle check failed: %v", err)
		}
		log.Printf("Bundle %s OK", cache.Resolve(keyboard.AssetPath))
		return
	}

	v := viewer.New(cfg, cache)
	v.DumpPath = *dumpScene
	v.Run()
}
