// Package ioweb serves ingested sampling results over HTTP. The API is
// stateless: selection and date-tab state live in the client, and every
// request recomputes its view from query parameters.
package ioweb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gnames/ednamap/pkg/config"
	"github.com/gnames/ednamap/pkg/ednamap"
	"github.com/gnames/ednamap/pkg/iconcache"
	"github.com/gnames/ednamap/pkg/record"
)

// Server exposes LocationRecords through a JSON API.
type Server struct {
	cfg   *config.Config
	locs  []record.LocationRecord
	icons *iconcache.Cache
	byID  map[string]int
}

// NewServer creates a Server over an ingested record set.
func NewServer(
	cfg *config.Config,
	locs []record.LocationRecord,
) (*Server, error) {
	icons, err := iconcache.New(cfg.Map.IconCacheSize)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]int, len(locs))
	for i, loc := range locs {
		byID[loc.ID] = i
	}

	return &Server{cfg: cfg, locs: locs, icons: icons, byID: byID}, nil
}

// Icons exposes the icon cache so callers can preload marker icons.
func (s *Server) Icons() *iconcache.Cache {
	return s.icons
}

// Router builds the gin engine with all routes attached.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", s.health)
	r.GET("/api/locations", s.locations)
	r.GET("/api/locations/:id", s.location)
	r.GET("/api/markers", s.markers)
	r.GET("/api/view", s.view)
	r.GET("/api/icons/:key", s.icon)

	return r
}

// Serve runs the HTTP API until ctx is canceled.
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: s.Router()}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting HTTP API",
			"address", addr, "locations", len(s.locs))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return StartError(addr, err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(
			context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"version":   ednamap.Version,
		"locations": len(s.locs),
	})
}

func (s *Server) locations(c *gin.Context) {
	c.JSON(http.StatusOK, s.locs)
}

func (s *Server) location(c *gin.Context) {
	idx, ok := s.byID[c.Param("id")]
	if !ok {
		c.JSON(http.StatusNotFound,
			gin.H{"error": "location not found"})
		return
	}
	c.JSON(http.StatusOK, s.locs[idx])
}
