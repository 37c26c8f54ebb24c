// SPDX-License-Identifier: MIT

package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tomtranjr/msds601-highdim-group9/fullrank"
	"github.com/tomtranjr/msds601-highdim-group9/report"
	"github.com/tomtranjr/msds601-highdim-group9/session"
)

// maxEventBytes bounds a JSON event body.
const maxEventBytes = 4 << 10

// RenderResponse is the JSON body of /api/fullrank and of WebSocket frames.
type RenderResponse struct {
	SessionID string         `json:"session_id"`
	State     fullrank.State `json:"state"`
	View      report.View    `json:"view"`
}

// ErrorResponse is the JSON body of a failed API call.
type ErrorResponse struct {
	Error string `json:"error"`
}

// sessionID returns the caller's session ID, issuing a cookie for a new one.
func (s *Server) sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(s.cfg.CookieName); err == nil && session.ValidID(c.Value) {
		return c.Value
	}
	id := session.NewID()
	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.CookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(s.cfg.CookieTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return id
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, session.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, session.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, session.ErrInvalidID),
		errors.Is(err, fullrank.ErrUnknownPreset),
		errors.Is(err, fullrank.ErrShapeOutOfRange),
		errors.Is(err, fullrank.ErrUnknownEvent):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// eventResult labels an event outcome for metrics.
func eventResult(err error) string {
	switch statusFor(err) {
	case http.StatusBadRequest:
		return "rejected"
	case http.StatusTooManyRequests:
		return "rate_limited"
	case http.StatusServiceUnavailable:
		return "unavailable"
	default:
		return "error"
	}
}

// apply runs ev for the session and records the outcome.
func (s *Server) apply(r *http.Request, id string, ev fullrank.Event) (fullrank.Result, error) {
	res, err := s.sessions.Apply(r.Context(), id, ev)
	if err != nil {
		s.metrics.RecordEvent(ev.Type, eventResult(err))
		if statusFor(err) >= http.StatusInternalServerError {
			s.logger.Error().Err(err).Str("request_id", RequestID(r.Context())).
				Str("event", string(ev.Type)).Msg("apply event")
		}
		return res, err
	}
	s.metrics.RecordEvent(ev.Type, "ok")

	return res, nil
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	id := s.sessionID(w, r)
	res, err := s.sessions.Current(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, RenderResponse{SessionID: id, State: res.State, View: res.View})
}

func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	id := s.sessionID(w, r)
	var ev fullrank.Event
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxEventBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&ev); err != nil {
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid event: " + err.Error()})
		return
	}
	res, err := s.apply(r, id, ev)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, RenderResponse{SessionID: id, State: res.State, View: res.View})
}

func (s *Server) handlePresetForm(w http.ResponseWriter, r *http.Request) {
	s.formEvent(w, r, func(form url.Values) (fullrank.Event, error) {
		return fullrank.Event{Type: fullrank.EventPreset, Preset: form.Get("preset")}, nil
	})
}

func (s *Server) handleShapeForm(w http.ResponseWriter, r *http.Request) {
	s.formEvent(w, r, func(form url.Values) (fullrank.Event, error) {
		n, err := strconv.Atoi(form.Get("n"))
		if err != nil {
			return fullrank.Event{}, errors.New("n must be an integer")
		}
		p, err := strconv.Atoi(form.Get("p"))
		if err != nil {
			return fullrank.Event{}, errors.New("p must be an integer")
		}
		return fullrank.Event{Type: fullrank.EventShape, N: n, P: p}, nil
	})
}

func (s *Server) handleRegenerateForm(w http.ResponseWriter, r *http.Request) {
	s.formEvent(w, r, func(url.Values) (fullrank.Event, error) {
		return fullrank.Event{Type: fullrank.EventRegenerate}, nil
	})
}

// formEvent parses a form post into an event, applies it and redirects to
// the page. Rejected input is shown on the page via ?error=.
func (s *Server) formEvent(w http.ResponseWriter, r *http.Request, parse func(url.Values) (fullrank.Event, error)) {
	id := s.sessionID(w, r)
	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, "malformed form")
		return
	}
	ev, err := parse(r.PostForm)
	if err != nil {
		redirectWithError(w, r, err.Error())
		return
	}
	if _, err = s.apply(r, id, ev); err != nil {
		if code := statusFor(err); code != http.StatusBadRequest {
			http.Error(w, http.StatusText(code), code)
			return
		}
		redirectWithError(w, r, err.Error())
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func redirectWithError(w http.ResponseWriter, r *http.Request, msg string) {
	http.Redirect(w, r, "/?error="+url.QueryEscape(msg), http.StatusSeeOther)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	id := s.sessionID(w, r)
	res, err := s.sessions.Current(r.Context(), id)
	if err != nil {
		code := statusFor(err)
		http.Error(w, http.StatusText(code), code)
		return
	}
	data := newPageData(res, r.URL.Query().Get("error"))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err = s.page.Execute(w, data); err != nil {
		s.logger.Error().Err(err).Msg("render page")
	}
}

func (s *Server) handleNotFound(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "not found"})
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := statusFor(err)
	msg := err.Error()
	if code >= http.StatusInternalServerError {
		msg = http.StatusText(code)
	}
	s.writeJSON(w, code, ErrorResponse{Error: msg})
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("encode response")
	}
}
