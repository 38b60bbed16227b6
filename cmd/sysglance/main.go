package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sysglance/internal/battery"
	"sysglance/internal/collector"
	"sysglance/internal/config"
	"sysglance/internal/daemon"
	"sysglance/internal/display"
	"sysglance/internal/handler"
	"sysglance/internal/publicip"
)

type Mode int

const (
	ModeServe Mode = iota
	ModeShow
	ModeConnect
	ModeDaemon
	ModeHelp
)

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "-h" || os.Args[1] == "--help" || os.Args[1] == "help") {
		printHelp()
		return
	}

	var (
		port       int
		configFile string
		settleMS   int
		timeout    int
	)

	flagSet := flag.NewFlagSet("sysglance", flag.ExitOnError)
	flagSet.IntVar(&port, "port", 0, "Port for server/client")
	flagSet.StringVar(&configFile, "config", "", "Path to config file")
	flagSet.IntVar(&settleMS, "settle", 0, "CPU sampling settle window in milliseconds")
	flagSet.IntVar(&timeout, "timeout", 5, "Connection timeout in seconds")

	mode, arg, args := parseArgs(os.Args[1:])

	flagSet.Parse(args)

	switch mode {
	case ModeServe:
		runServe(port, configFile, settleMS)
	case ModeShow:
		runShow(configFile, settleMS)
	case ModeConnect:
		runConnect(arg, port, timeout)
	case ModeDaemon:
		runDaemon(arg, configFile)
	case ModeHelp:
		printHelp()
	}
}

func parseArgs(args []string) (Mode, string, []string) {
	if len(args) == 0 {
		return ModeServe, "", args
	}

	switch args[0] {
	case "serve":
		return ModeServe, "", args[1:]
	case "show":
		return ModeShow, "", args[1:]
	case "connect":
		if len(args) > 1 {
			return ModeConnect, args[1], args[2:]
		}
		log.Fatal("connect mode requires a host argument")
	case "daemon":
		if len(args) > 1 {
			return ModeDaemon, args[1], args[2:]
		}
		log.Fatal("daemon mode requires an action (start|stop|status)")
	}

	if !isFlag(args[0]) {
		return ModeConnect, args[0], args[1:]
	}

	return ModeServe, "", args
}

func isFlag(arg string) bool {
	return len(arg) > 0 && arg[0] == '-'
}

func runShow(configFile string, settleMS int) {
	cfg := loadConfig(configFile, 0, settleMS)

	c := collector.New(cfg.Settle(), cfg.TopProcesses)
	fmt.Print(display.Render(c.Snapshot(), true))
	fmt.Print(display.RenderBattery(battery.Read()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if ip, err := publicip.New(cfg.PublicIPURL).Resolve(ctx); err == nil {
		fmt.Printf("Public IP: %s\n", ip.IP)
	}
}

func runServe(port int, configFile string, settleMS int) {
	cfg := loadConfig(configFile, port, settleMS)

	c := collector.New(cfg.Settle(), cfg.TopProcesses)
	resolver := publicip.New(cfg.PublicIPURL)
	h := handler.New(c, battery.Read, resolver, collector.Hardware)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	server := &http.Server{
		Addr:    cfg.ListenAddress,
		Handler: h,
	}

	go func() {
		log.Printf("Starting server on %s", cfg.ListenAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-sigChan
	log.Println("Shutting down server...")
	if err := server.Close(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
}

func runConnect(host string, port, timeout int) {
	if host == "" {
		log.Fatal("No host specified for connect mode")
	}

	if port == 0 {
		port = config.DefaultPort
	}

	fullHost := host
	if !containsPort(host) {
		fullHost = fmt.Sprintf("%s:%d", host, port)
	}

	client := &http.Client{
		Timeout: time.Duration(timeout) * time.Second,
	}

	resp, err := client.Get(fmt.Sprintf("http://%s", fullHost))
	if err != nil {
		log.Fatalf("Failed to connect to %s: %v", fullHost, err)
	}
	defer resp.Body.Close()

	if _, err := io.Copy(os.Stdout, resp.Body); err != nil {
		log.Fatalf("Error reading response: %v", err)
	}
}

func runDaemon(action, configFile string) {
	exePath, err := os.Executable()
	if err != nil {
		log.Fatalf("Failed to resolve executable path: %v", err)
	}
	if configFile == "" {
		configFile = "config.yaml"
	}

	d := daemon.New(exePath, configFile)

	switch action {
	case "start":
		err = d.Start()
	case "stop":
		err = d.Stop()
	case "status":
		err = d.Status()
	default:
		log.Fatalf("Unknown daemon action '%s' (want start|stop|status)", action)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func loadConfig(configFile string, port, settleMS int) *config.Config {
	if configFile == "" {
		configFile = "config.yaml"
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		log.Printf("Warning: Could not load config file '%s', using defaults: %v", configFile, err)
		cfg = config.Default()
	}

	if port > 0 {
		cfg.ListenAddress = fmt.Sprintf(":%d", port)
	}
	if settleMS > 0 {
		cfg.SettleMillis = settleMS
	}

	return cfg
}

func containsPort(host string) bool {
	for i := len(host) - 1; i >= 0; i-- {
		if host[i] == ':' {
			return true
		}
		if host[i] == ']' {
			return false
		}
	}
	return false
}

func printHelp() {
	fmt.Println(`sysglance - Host telemetry snapshots

USAGE:
    sysglance [MODE] [OPTIONS] [HOST]

MODES:
    (default)
        Start HTTP server (default mode when no arguments)

    serve
        Start HTTP server exposing snapshot endpoints
        sysglance serve [OPTIONS]

    show
        Print a local snapshot to the console
        sysglance show [OPTIONS]

    connect <host>
        Fetch a snapshot from a remote sysglance server
        sysglance connect <host> [OPTIONS]
        sysglance <host> [OPTIONS]

    daemon <start|stop|status>
        Manage a background sysglanced process

OPTIONS:
    -port int
        Port number for server/client (default: 8790)

    -config string
        Path to config file (default: config.yaml)

    -settle int
        CPU sampling settle window in milliseconds (default: 200)

    -timeout int
        Connection timeout in seconds (default: 5)

    -h, -help, help
        Show this help message

ENDPOINTS (serve mode):
    /api/system    full snapshot (JSON)
    /api/battery   battery status, JSON null when absent
    /api/ip        public IP and geolocation
    /api/hardware  machine vendor/product/firmware identity`)
}
