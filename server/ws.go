// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tomtranjr/msds601-highdim-group9/fullrank"
)

const (
	wsReadLimit  = maxEventBytes
	wsPongWait   = 60 * time.Second
	wsPingPeriod = wsPongWait * 9 / 10
	wsWriteWait  = 10 * time.Second
)

// Frame is one outbound WebSocket message: a render or an error.
type Frame struct {
	*RenderResponse
	Error string `json:"error,omitempty"`
}

// handleWS upgrades the connection, sends the current render, then answers
// every inbound JSON event with exactly one frame.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	id := s.sessionID(w, r)
	conn, err := s.upgrader.Upgrade(w, r, w.Header())
	if err != nil {
		s.logger.Debug().Err(err).Msg("websocket upgrade")
		return
	}
	defer conn.Close()
	s.metrics.WSConnections.Inc()
	defer s.metrics.WSConnections.Dec()

	conn.SetReadLimit(wsReadLimit)
	_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go s.wsPing(ctx, conn)

	res, err := s.withTimeout(ctx, func(c context.Context) (fullrank.Result, error) {
		return s.sessions.Current(c, id)
	})
	if err := s.writeFrame(conn, id, res, err); err != nil {
		return
	}

	for {
		var ev fullrank.Event
		if err = conn.ReadJSON(&ev); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Debug().Err(err).Str("session", id).Msg("websocket read")
			}
			return
		}
		res, err = s.withTimeout(ctx, func(c context.Context) (fullrank.Result, error) {
			return s.apply(r.WithContext(c), id, ev)
		})
		if err = s.writeFrame(conn, id, res, err); err != nil {
			return
		}
	}
}

// writeFrame sends a render, or an error frame when applyErr is set.
// Only the write error is returned; rejected events keep the socket open.
func (s *Server) writeFrame(conn *websocket.Conn, id string, res fullrank.Result, applyErr error) error {
	f := Frame{}
	if applyErr != nil {
		f.Error = applyErr.Error()
		if statusFor(applyErr) >= http.StatusInternalServerError {
			f.Error = http.StatusText(statusFor(applyErr))
		}
	} else {
		f.RenderResponse = &RenderResponse{SessionID: id, State: res.State, View: res.View}
	}
	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
	if err := conn.WriteJSON(f); err != nil {
		s.logger.Debug().Err(err).Str("session", id).Msg("websocket write")
		return err
	}

	return nil
}

func (s *Server) withTimeout(ctx context.Context, fn func(context.Context) (fullrank.Result, error)) (fullrank.Result, error) {
	c, cancel := context.WithTimeout(ctx, s.cfg.RequestTimeout)
	defer cancel()

	return fn(c)
}

// wsPing keeps the connection alive until ctx ends.
func (s *Server) wsPing(ctx context.Context, conn *websocket.Conn) {
	t := time.NewTicker(wsPingPeriod)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteWait))
			if err != nil && !errors.Is(err, websocket.ErrCloseSent) {
				return
			}
		}
	}
}
