package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/bairdj/afl-crowds/internal/logger"
	"github.com/bairdj/afl-crowds/pkg/util/afl"
)

func main() {
	// Parse command line flags
	debug := flag.Bool("debug", false, "Enable debug logging")
	outputFile := flag.String("output", "", "Write the dataset as JSON to this path (if not provided, stdout will be used)")
	includeFinals := flag.Bool("finals", false, "Include finals matches in the dataset")
	flag.Parse()

	// Configure logging
	logger.SetShowDateTime(true)
	if *debug {
		logger.SetLevel(logger.DEBUG)
		logger.Debug("Debug logging enabled")
	}

	logger.Info("Starting crowd dataset build")

	if *includeFinals {
		cfg := *afl.Config
		cfg.IncludeFinals = true
		afl.UpdateConfig(&cfg)
	}

	// Build the full dataset: fetch, link, derive features, persist
	dataset, err := afl.BuildDataset()
	if err != nil {
		logger.Error("Failed to build dataset", err)
		os.Exit(1)
	}

	result, err := json.MarshalIndent(dataset.Matches, "", "  ")
	if err != nil {
		logger.Fatal("Failed to serialise dataset", err)
	}

	// Determine output destination
	if *outputFile != "" {
		err = os.WriteFile(*outputFile, result, 0644)
		if err != nil {
			logger.Fatal("Failed to write to output file", err)
		}
		logger.Info("Dataset written to", *outputFile)
	} else {
		fmt.Print(string(result))
	}

	if len(dataset.Unmatched) > 0 {
		logger.Warn("Completed with", len(dataset.Unmatched), "unmatched schedule records, see warnings above")
	} else {
		logger.Info("Crowd dataset build completed successfully")
	}
}
