package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/gilchrisn/graph-datasets/pkg/config"
	"github.com/gilchrisn/graph-datasets/pkg/report"
)

func main() {
	configFile := flag.String("config", "", "Optional config file (yaml, json or toml)")
	prefix := flag.String("prefix", "running-times", "Chart file name prefix")
	flag.Parse()

	cfg := config.NewConfig()
	if *configFile != "" {
		if err := cfg.LoadFromFile(*configFile); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config %s: %v\n", *configFile, err)
			os.Exit(1)
		}
	}
	log.Logger = cfg.CreateLogger("runtimes")

	b := report.NewBuilder(cfg.Paths(), log.Logger)
	b.Chart.Prefix = *prefix

	res, err := b.Build()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build running-time report")
	}

	fmt.Printf("Slope: %g ns per (node + edge)\n", res.Model.Slope)
	log.Info().
		Int("datasets", len(res.Points)).
		Int("charts", len(res.Files)).
		Int64("runtime_ms", res.RuntimeMS).
		Msg("Report complete")
}
