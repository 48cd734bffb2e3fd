// Package main - Entry point for the artquote quotation server
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"artquote/api"
	"artquote/core/engine"
	"artquote/core/pricing"
	"artquote/core/rates"
	"artquote/core/route"
	"artquote/internal/config"
	"artquote/internal/logging"
)

const version = "0.1.0"

func main() {
	addr := flag.String("addr", "", "server address (default from config)")
	cfgFile := flag.String("config", "", "config file path")
	pricingFile := flag.String("pricing", "", "pricing table file (HCL)")
	flag.Parse()

	godotenv.Load()

	if *cfgFile != "" {
		cfg, err := config.Load(*cfgFile)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
		config.Set(cfg)
	}
	cfg := config.Get()

	if err := logging.Initialize(cfg.Logging); err != nil {
		log.Fatalf("initializing logging: %v", err)
	}
	defer logging.Sync()

	eng, err := buildEngine(cfg, *pricingFile)
	if err != nil {
		log.Fatalf("building engine: %v", err)
	}

	listen := *addr
	if listen == "" {
		listen = cfg.Server.Addr
	}

	server := api.NewServer(version, eng, cfg.Quote.DefaultMarginPct)

	fmt.Printf("artquote server v%s listening on %s\n", version, listen)
	logging.Info("server starting", zap.String("addr", listen))
	if err := server.ListenAndServe(listen); err != nil {
		log.Fatal(err)
	}
}

func buildEngine(cfg *config.Config, pricingPath string) (*engine.Engine, error) {
	path := pricingPath
	if path == "" {
		path = cfg.Pricing.FilePath
	}

	pcfg := pricing.Default()
	table := rates.DefaultTable()
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			pcfg, err = pricing.LoadHCL(path)
			if err != nil {
				return nil, fmt.Errorf("loading pricing table: %w", err)
			}
			table, err = rates.LoadHCL(path)
			if err != nil {
				return nil, fmt.Errorf("loading zone rates: %w", err)
			}
		}
	}

	for _, warning := range pcfg.Validate() {
		logging.Warn("pricing table", zap.String("warning", warning))
	}

	return engine.New(pcfg, table, route.NewResolver(cfg.Routing)), nil
}
