package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/adventofcode2019/internal/config"
	"github.com/bmatcuk/adventofcode2019/internal/registry"
	"github.com/bmatcuk/adventofcode2019/internal/setup"
	"github.com/bmatcuk/adventofcode2019/internal/setup/logger"
	"github.com/joho/godotenv"
)

func main() {
	startTime := time.Now()

	day := flag.Int("day", 0, "Puzzle day to run (2-24)")
	part := flag.Int("part", 0, "Part to run: 1, 2, or 0 for every part the day has")
	inputDir := flag.String("input", "", "Directory holding dayNN/input.txt files (overrides AOC_INPUT_DIR)")
	list := flag.Bool("list", false, "List the solved days and exit")

	flag.Parse()

	// .env may set AOC_LOG_LEVEL, so load it before building the logger
	dotenvErr := godotenv.Load()

	cfg := setup.LoadConfig()
	log := logger.New(cfg.LogLevel)

	if dotenvErr != nil {
		log.Warn().Msg("No .env file found, using environment variables")
	}

	manifest, err := config.LoadManifest()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load days manifest")
	}

	if *list {
		listDays(manifest)
		return
	}

	if *day == 0 {
		log.Fatal().Msg("required flag -day not provided")
	}
	entry, ok := registry.Lookup(*day)
	if !ok {
		log.Fatal().Int("day", *day).Msg("No solution registered for this day")
	}
	if *part != 0 && !entry.HasPart(*part) {
		log.Fatal().
			Int("day", *day).
			Int("part", *part).
			Str("have", partsString(entry.Parts)).
			Msg("Part not implemented for this day")
	}

	dir := cfg.InputDir
	if *inputDir != "" {
		dir = *inputDir
	}
	path := filepath.Join(dir, fmt.Sprintf("day%02d", *day), "input.txt")
	input, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("Failed to read puzzle input")
	}

	log.Info().Int("day", *day).Str("file", path).Msg("Running solution")
	entry.Run(string(input), *part)

	log.Info().
		Int("day", *day).
		Dur("duration", time.Since(startTime)).
		Msg("Done")
}

func listDays(manifest *config.Manifest) {
	for _, d := range manifest.Days {
		fmt.Printf("Day %2d: %s (parts %s)\n", d.Day, d.Title, partsString(d.Parts))
	}
}

func partsString(parts []int) string {
	s := make([]string, len(parts))
	for i, p := range parts {
		s[i] = fmt.Sprintf("%d", p)
	}
	return strings.Join(s, ",")
}
