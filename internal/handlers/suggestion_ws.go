// internal/handlers/suggestion_ws.go
package handlers

import (
	"encoding/json"
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/listing-discovery/internal/discovery"
	"github.com/javajoker/listing-discovery/internal/metrics"
	"github.com/javajoker/listing-discovery/internal/middleware"
	"github.com/javajoker/listing-discovery/internal/services"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4 * 1024
)

// Inbound event types of a live suggestion session.
const (
	EventFocus  = "focus"
	EventInput  = "input"
	EventBlur   = "blur"
	EventSelect = "select"
	EventSubmit = "submit"
	EventClose  = "close"
)

// Outbound event types.
const (
	EventSuggestions = "suggestions"
	EventDismissed   = "dismissed"
	EventNavigate    = "navigate"
	EventError       = "error"
)

type LiveRequest struct {
	Type  string `json:"type"`
	Query string `json:"q,omitempty"`
	Index int    `json:"index,omitempty"`
}

type LiveEvent struct {
	Type        string               `json:"type"`
	Session     string               `json:"session"`
	Suggestions *SuggestionsResponse `json:"suggestions,omitempty"`
	Target      *discovery.Target    `json:"target,omitempty"`
	Path        string               `json:"path,omitempty"`
	Error       string               `json:"error,omitempty"`
}

type LiveSuggestionHandler struct {
	discoveryService *services.DiscoveryService
	upgrader         websocket.Upgrader
}

func NewLiveSuggestionHandler(discoveryService *services.DiscoveryService, allowedOrigins []string) *LiveSuggestionHandler {
	return &LiveSuggestionHandler{
		discoveryService: discoveryService,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		return slices.Contains(allowed, "*") || slices.Contains(allowed, origin)
	}
}

// liveSession is one search box driven over a websocket: a Panel plus the
// pumps moving events in and out of it.
type liveSession struct {
	id       string
	conn     *websocket.Conn
	panel    *discovery.Panel
	location discovery.LocationProvider
	service  *services.DiscoveryService
	send     chan []byte
	done     chan struct{} // reader exited
	stopped  chan struct{} // writer exited
}

// GET /suggestions/live
func (h *LiveSuggestionHandler) ServeLive(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.WithError(err).Warn("Live suggestions upgrade failed")
		return
	}

	s := &liveSession{
		id:       uuid.NewString(),
		conn:     conn,
		panel:    h.discoveryService.NewPanel(),
		location: middleware.HeaderLocation(c),
		service:  h.discoveryService,
		send:     make(chan []byte, 16),
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
	s.panel.OnDismiss(func() {
		s.emit(LiveEvent{Type: EventDismissed})
	})

	metrics.LiveSessions.Inc()
	logrus.WithFields(logrus.Fields{
		"session":    s.id,
		"request_id": middleware.GetRequestID(c),
	}).Debug("Live suggestion session opened")

	go s.writePump()
	go s.readPump()
}

func (s *liveSession) readPump() {
	defer func() {
		close(s.done)
		s.panel.Close()
		s.conn.Close()
		metrics.LiveSessions.Dec()
		logrus.WithField("session", s.id).Debug("Live suggestion session closed")
	}()

	s.conn.SetReadLimit(maxMessageSize)
	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		s.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logrus.WithError(err).WithField("session", s.id).Warn("Live suggestion session closed unexpectedly")
			}
			return
		}

		var req LiveRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			s.emit(LiveEvent{Type: EventError, Error: "malformed event"})
			continue
		}
		s.handle(req)
	}
}

func (s *liveSession) handle(req LiveRequest) {
	switch req.Type {
	case EventFocus:
		s.emitSuggestions(s.panel.Focus())
	case EventInput:
		s.emitSuggestions(s.panel.Input(req.Query))
	case EventBlur:
		s.panel.Blur()
	case EventSelect:
		target, ok := s.panel.Select(req.Index)
		if !ok {
			s.emit(LiveEvent{Type: EventError, Error: "nothing to select"})
			return
		}
		s.emit(LiveEvent{Type: EventNavigate, Target: &target, Path: target.Path()})
	case EventSubmit:
		s.panel.Close()
		values := s.service.Submit(req.Query, s.location)
		s.emit(LiveEvent{Type: EventNavigate, Path: discovery.ListingsPath(values)})
	case EventClose:
		s.panel.Close()
		s.emitSuggestions(s.panel.Suggestions())
	default:
		s.emit(LiveEvent{Type: EventError, Error: "unknown event type"})
	}
}

func (s *liveSession) emitSuggestions(suggestions discovery.Suggestions) {
	resp := newSuggestionsResponse(s.panel.Query(), s.panel.Open(), suggestions)
	s.emit(LiveEvent{Type: EventSuggestions, Suggestions: &resp})
}

// emit queues an event unless the session is gone. It may be called from
// the dismissal timer after the reader has exited.
func (s *liveSession) emit(ev LiveEvent) {
	ev.Session = s.id
	data, err := json.Marshal(ev)
	if err != nil {
		logrus.WithError(err).Error("Failed to encode live suggestion event")
		return
	}
	select {
	case s.send <- data:
	case <-s.done:
	case <-s.stopped:
	}
}

func (s *liveSession) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		close(s.stopped)
		s.conn.Close()
	}()

	for {
		select {
		case msg := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-s.done:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			s.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}
