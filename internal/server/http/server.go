package internalhttp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"

	"github.com/mkotelnikov/family-calendar/internal/app"
	"github.com/mkotelnikov/family-calendar/internal/auth"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	Host string
	Port int
}

type Server struct {
	srv      *http.Server
	app      *app.App
	sessions *auth.Manager
	addr     string
}

// NewServer builds the router around the calendar app. A nil session
// manager disables authentication entirely: the login routes disappear
// and every remaining route is open.
func NewServer(config Config, calendar *app.App, sessions *auth.Manager) *Server {
	s := &Server{
		app:      calendar,
		sessions: sessions,
		addr:     net.JoinHostPort(config.Host, strconv.Itoa(config.Port)),
	}
	s.srv = &http.Server{Addr: s.addr, Handler: loggingMiddleware(s.routes())}
	return s
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /{$}", s.requirePage(s.handleIndex))
	mux.Handle("GET /api/events", s.requireAPI(s.handleListEvents))
	mux.Handle("POST /api/events", s.requireAPI(s.handleCreateEvent))
	mux.Handle("PUT /api/events/{id}", s.requireAPI(s.handleUpdateEvent))
	mux.Handle("DELETE /api/events/{id}", s.requireAPI(s.handleDeleteEvent))

	if s.sessions != nil {
		mux.HandleFunc("GET /login", s.handleLoginPage)
		mux.HandleFunc("POST /login", s.handleLogin)
		mux.HandleFunc("GET /logout", s.handleLogout)
		mux.Handle("GET /api/me", s.requireAPI(s.handleMe))
	}
	return mux
}

func (s *Server) Start(_ context.Context) error {
	log.Printf("starting http server on %s", s.addr)
	err := s.srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func getIP(req *http.Request) (string, error) {
	ip, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		return "", fmt.Errorf("userip: %q is not IP:port", req.RemoteAddr)
	}

	if parsed := net.ParseIP(ip); parsed == nil {
		return "", fmt.Errorf("userip: %q is not IP:port", req.RemoteAddr)
	}
	return ip, nil
}
