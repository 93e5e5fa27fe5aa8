package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"trueskate-exporter/internal/config"
	"trueskate-exporter/internal/exporter"
	"trueskate-exporter/internal/park"
	"trueskate-exporter/internal/scene"
	"trueskate-exporter/internal/shapes"
)

func main() {
	prefs, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "exporter:", err)
		os.Exit(1)
	}

	out := flag.String("out", prefs.OutputDir, "output directory")
	catalogPath := flag.String("catalog", "", "optional shape catalog YAML with per-type parameter overrides")
	verbose := flag.Bool("v", prefs.Verbose, "debug logging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <park.json>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	var catalog shapes.Catalog
	if *catalogPath != "" {
		catalog, err = shapes.LoadCatalog(*catalogPath)
		if err != nil {
			log.Error("loading shape catalog", "err", err)
			os.Exit(1)
		}
	}

	p, err := park.Load(flag.Arg(0))
	if err != nil {
		log.Error("loading park", "err", err)
		os.Exit(1)
	}

	dir, err := exporter.Export(p, *out, exporter.Options{
		Scene:  scene.Options{GroundSize: prefs.GroundSize, Catalog: catalog},
		Logger: log,
	})
	if err != nil {
		log.Error("export failed", "err", err)
		os.Exit(1)
	}
	fmt.Println(dir)
}
