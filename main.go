package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"github.com/patrickmn/go-cache"
	"github.com/username/comdirectparser/src/config"
	"github.com/username/comdirectparser/src/database"
	"github.com/username/comdirectparser/src/extraction"
	"github.com/username/comdirectparser/src/logger"
	"github.com/username/comdirectparser/src/parsers"
	"github.com/username/comdirectparser/src/services"
)

func main() {
	persist := flag.Bool("persist", false, "store parsed records in the database")
	jsonOut := flag.String("out", "", "write the parse result as JSON to this file")
	flag.Parse()

	config.LoadConfig()
	logger.InitLogger(config.Cfg.LogLevel)
	logger.L.Info("comdirect statement parser starting...")

	inputs := flag.Args()
	if len(inputs) == 0 {
		inputs = config.Cfg.InputPaths
	}
	if len(inputs) == 0 {
		logger.L.Error("No input paths. Pass file or directory paths as arguments or set INPUT_PATHS.")
		os.Exit(1)
	}

	if *persist {
		database.InitDB(config.Cfg.DatabasePath)
	}

	textCache := cache.New(config.Cfg.CacheExpiration, config.Cfg.CacheCleanup)
	extractor := extraction.NewCachingExtractor(extraction.NewPDFExtractor(), textCache)
	parser := parsers.NewParser(logger.L)
	svc := services.NewParseService(extractor, parser, logger.L, config.Cfg.MaxExtractWorkers, *persist)

	run, err := svc.Run(context.Background(), inputs)
	if err != nil {
		logger.L.Error("parse run failed", "error", err)
		os.Exit(1)
	}

	if *jsonOut != "" {
		data, err := json.MarshalIndent(run.Result, "", "  ")
		if err != nil {
			logger.L.Error("encoding parse result", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*jsonOut, data, 0o644); err != nil {
			logger.L.Error("writing parse result", "path", *jsonOut, "error", err)
			os.Exit(1)
		}
		logger.L.Info("parse result written", "path", *jsonOut)
	}
}
