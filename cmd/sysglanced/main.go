package main

import (
	"flag"
	"log"
	"net/http"

	"sysglance/internal/battery"
	"sysglance/internal/collector"
	"sysglance/internal/config"
	"sysglance/internal/handler"
	"sysglance/internal/publicip"
)

func main() {
	configFile := flag.String("config", "config.yaml", "Path to config file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Printf("Warning: Could not load config file '%s', using defaults: %v", *configFile, err)
		cfg = config.Default()
	}

	c := collector.New(cfg.Settle(), cfg.TopProcesses)
	resolver := publicip.New(cfg.PublicIPURL)
	h := handler.New(c, battery.Read, resolver, collector.Hardware)

	log.Printf("Starting server on %s", cfg.ListenAddress)
	log.Fatal(http.ListenAndServe(cfg.ListenAddress, h))
}
