package handler

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"sysglance/internal/display"
	"sysglance/internal/model"
)

// SystemProvider yields one full host snapshot per call.
type SystemProvider interface {
	Snapshot() *model.FullSystemInfo
}

// BatteryReader returns battery status, or nil when no battery is present.
type BatteryReader func() *model.BatteryInfo

// IPResolver performs one public-IP lookup.
type IPResolver interface {
	Resolve(ctx context.Context) (*model.PublicIPInfo, error)
}

// HardwareReader returns machine identity facts.
type HardwareReader func() model.HardwareInfo

type Handler struct {
	system   SystemProvider
	battery  BatteryReader
	resolver IPResolver
	hardware HardwareReader
	mux      *http.ServeMux
}

func New(system SystemProvider, battery BatteryReader, resolver IPResolver, hardware HardwareReader) *Handler {
	h := &Handler{
		system:   system,
		battery:  battery,
		resolver: resolver,
		hardware: hardware,
		mux:      http.NewServeMux(),
	}

	h.mux.HandleFunc("/api/system", h.handleSystem)
	h.mux.HandleFunc("/api/battery", h.handleBattery)
	h.mux.HandleFunc("/api/ip", h.handleIP)
	h.mux.HandleFunc("/api/hardware", h.handleHardware)
	h.mux.HandleFunc("/", h.handleRoot)

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) handleSystem(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.system.Snapshot())
}

// handleBattery encodes a missing battery as a JSON null body, keeping "no
// battery" a normal response rather than an error status.
func (h *Handler) handleBattery(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.battery())
}

func (h *Handler) handleIP(w http.ResponseWriter, r *http.Request) {
	info, err := h.resolver.Resolve(r.Context())
	if err != nil {
		log.Printf("public ip lookup failed: %v", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	writeJSON(w, info)
}

func (h *Handler) handleHardware(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.hardware())
}

// handleRoot serves plain text to curl and the JSON aggregate to everything
// else.
func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	info := h.system.Snapshot()
	if strings.Contains(r.Header.Get("User-Agent"), "curl") {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, err := w.Write([]byte(display.Render(info, false))); err != nil {
			log.Printf("Error writing response: %v", err)
		}
		return
	}
	writeJSON(w, info)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
