package main

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/signalforge/analytics/internal/analyze"
	"github.com/signalforge/analytics/internal/config"
	"github.com/signalforge/analytics/models"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	barsFile := flag.String("bars", cfg.BarsFile, "path to bars JSON file (array of {t,o,h,l,c,v})")
	outFile := flag.String("out", cfg.OutFile, "write the analytics bundle here instead of stdout")
	symbol := flag.String("symbol", cfg.Symbol, "symbol label attached to the bundle")
	flag.Parse()

	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl)

	if *barsFile == "" {
		log.Fatal().Msg("no bars file given, set -bars or BARS_FILE")
	}

	bars, err := readBars(*barsFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", *barsFile).Msg("failed to read bars")
	}
	log.Info().Int("bars", len(bars)).Str("symbol", *symbol).Msg("loaded bar series")

	analysisCfg, err := cfg.AnalysisConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid analysis configuration")
	}

	bundle, err := analyze.Analyze(bars, analysisCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("analysis failed")
	}
	bundle.Symbol = *symbol

	log.Info().
		Int("indicators", len(bundle.Indicators)).
		Int("signals", len(bundle.Signals)).
		Int("backtests", len(bundle.Backtests)).
		Msg("analysis complete")

	raw, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to marshal bundle")
	}

	if *outFile != "" {
		if err := os.WriteFile(*outFile, raw, 0o644); err != nil {
			log.Fatal().Err(err).Str("file", *outFile).Msg("failed to write bundle")
		}
		log.Info().Str("file", *outFile).Msg("bundle written")
		return
	}
	os.Stdout.Write(raw)
	os.Stdout.Write([]byte("\n"))
}

func readBars(path string) ([]models.Bar, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var bars []models.Bar
	if err := json.Unmarshal(raw, &bars); err != nil {
		return nil, err
	}
	return bars, nil
}
