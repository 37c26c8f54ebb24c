// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"net/http"
	"runtime"
	"sort"
	"time"
)

// HealthCheck probes one dependency; a nil error means healthy.
type HealthCheck func(ctx context.Context) error

// HealthResponse is the body of /health.
type HealthResponse struct {
	Status    string                 `json:"status"` // "healthy" or "unhealthy"
	Timestamp time.Time              `json:"timestamp"`
	Uptime    string                 `json:"uptime"`
	GoVersion string                 `json:"go_version"`
	Checks    map[string]CheckResult `json:"checks,omitempty"`
}

// CheckResult is the outcome of one HealthCheck.
type CheckResult struct {
	Status   string        `json:"status"` // "pass" or "fail"
	Message  string        `json:"message,omitempty"`
	Duration time.Duration `json:"duration"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Uptime:    time.Since(s.started).Round(time.Second).String(),
		GoVersion: runtime.Version(),
	}

	names := make([]string, 0, len(s.checks))
	for name := range s.checks {
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) > 0 {
		resp.Checks = make(map[string]CheckResult, len(names))
	}
	for _, name := range names {
		start := time.Now()
		err := s.checks[name](r.Context())
		cr := CheckResult{Status: "pass", Duration: time.Since(start)}
		if err != nil {
			cr.Status = "fail"
			cr.Message = err.Error()
			resp.Status = "unhealthy"
		}
		resp.Checks[name] = cr
	}

	code := http.StatusOK
	if resp.Status != "healthy" {
		code = http.StatusServiceUnavailable
	}
	s.writeJSON(w, code, resp)
}
