package main

import (
	"flag"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/complyboard/complyboard"
	"github.com/complyboard/complyboard/config"
	"github.com/complyboard/complyboard/log"
)

func main() {
	standardsPath := flag.String("standards", "", "Path to standards directory (default: built-in standards or COMPLYBOARD_STANDARDS_PATH)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Log.Errorf("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	// Override standards path if provided via flag
	if *standardsPath != "" {
		cfg.StandardsPath = *standardsPath
	}

	log.Log.Infof("=== ComplyBoard Server v%s ===", complyboard.Version())
	log.Log.Infof("Store backend: %s", cfg.Store.Backend)
	log.Log.Infof("Charts enabled: %v", cfg.Features.ChartsEnabled)
	log.Log.Infof("AI summaries enabled: %v", cfg.Features.AISummaryEnabled)

	cb, err := complyboard.New(cfg)
	if err != nil {
		log.Log.Errorf("Failed to create ComplyBoard instance: %v", err)
		os.Exit(1)
	}
	defer cb.Close()

	router := gin.Default()
	cb.RegisterRoutes(router)

	log.Log.Infof("Starting HTTP server on %s", cfg.GetAddress())
	if err := router.Run(cfg.GetAddress()); err != nil {
		log.Log.Errorf("HTTP server failed: %v", err)
		os.Exit(1)
	}
}
