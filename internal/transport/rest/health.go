package rest

import (
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const probeTimeout = 3 * time.Second

// pinger is anything the health endpoints can probe.
type pinger interface {
	Ping(ctx context.Context) error
}

type probe struct {
	name     string
	p        pinger
	required bool
}

// HealthHandler serves /live, /ready and /health. The database is required:
// when it is unreachable the service is down. Optional components such as
// the plant cache only degrade it.
type HealthHandler struct {
	version string
	probes  []probe
}

func NewHealthHandler(db pinger, version string) *HealthHandler {
	return &HealthHandler{
		version: version,
		probes:  []probe{{name: "database", p: db, required: true}},
	}
}

// WithOptional registers a component the service can run without.
func (h *HealthHandler) WithOptional(name string, p pinger) *HealthHandler {
	h.probes = append(h.probes, probe{name: name, p: p})
	return h
}

type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live always answers 200 while the process serves HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready answers 503 while a required component is unreachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	status, _ := h.check(r.Context())
	code := http.StatusOK
	if status == "down" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{Status: status, Timestamp: time.Now()})
}

// Health reports every component with its ping latency.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status, components := h.check(r.Context())
	code := http.StatusOK
	if status == "down" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

// check pings all components concurrently and folds the results into ok,
// degraded or down.
func (h *HealthHandler) check(ctx context.Context) (string, map[string]CompStatus) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	var (
		mu         sync.Mutex
		components = make(map[string]CompStatus, len(h.probes))
		status     = "ok"
	)

	var g errgroup.Group
	for _, pr := range h.probes {
		g.Go(func() error {
			start := time.Now()
			err := pr.p.Ping(ctx)
			elapsed := time.Since(start)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				components[pr.name] = CompStatus{Status: "down"}
				switch {
				case pr.required:
					status = "down"
				case status == "ok":
					status = "degraded"
				}
				return nil
			}
			components[pr.name] = CompStatus{Status: "ok", Latency: elapsed.String()}
			return nil
		})
	}
	_ = g.Wait()

	return status, components
}
