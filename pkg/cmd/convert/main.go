package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/gilchrisn/graph-datasets/pkg/config"
	"github.com/gilchrisn/graph-datasets/pkg/datasets"
	"github.com/gilchrisn/graph-datasets/pkg/normalizer"
)

func main() {
	configFile := flag.String("config", "", "Optional config file (yaml, json or toml)")
	list := flag.Bool("list", false, "List known datasets and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [dataset ...]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Converts downloaded datasets into bidirectional edge lists.\n")
		fmt.Fprintf(os.Stderr, "With no dataset names every known dataset is converted, in order.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *list {
		for _, ds := range datasets.All {
			fmt.Printf("%-28s %s%s%s\n", ds.Name, ds.Path, ds.Name, ds.Extension)
		}
		return
	}

	cfg := config.NewConfig()
	if *configFile != "" {
		if err := cfg.LoadFromFile(*configFile); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config %s: %v\n", *configFile, err)
			os.Exit(1)
		}
	}
	log.Logger = cfg.CreateLogger("convert")

	selected, err := datasets.Select(flag.Args()...)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid dataset selection")
	}

	paths := cfg.Paths()
	n := normalizer.NewNormalizer(paths.DownloadDir, paths.InputDir, paths.SizesFile, log.Logger)

	log.Info().
		Int("datasets", len(selected)).
		Str("source", paths.DownloadDir).
		Str("destination", paths.InputDir).
		Msg("Starting conversion")

	start := time.Now()
	for i, ds := range selected {
		log.Info().Msgf("[%d/%d] Converting %s", i+1, len(selected), ds.Name)
		if _, err := n.Normalize(ds); err != nil {
			log.Fatal().Err(err).Str("dataset", ds.Name).Msg("Conversion failed")
		}
	}

	log.Info().Dur("elapsed", time.Since(start)).Msg("All datasets converted")
}
