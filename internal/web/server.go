// Package web serves the portfolio: the home page, the resume and animation
// plan as JSON, the contact form and the admin dashboard.
package web

import (
	"context"
	"crypto/rand"
	"embed"
	"encoding/hex"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gafarajao/portfolio/internal/config"
	"github.com/gafarajao/portfolio/internal/mail"
	"github.com/gafarajao/portfolio/internal/store"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Store is the persistence the site needs.
type Store interface {
	RecordVisit(ctx context.Context, v store.Visit) error
	Stats(ctx context.Context, now time.Time) (*store.Stats, error)
	PurgeVisitsBefore(ctx context.Context, cutoff time.Time) (int64, error)
	SaveMessage(ctx context.Context, m store.Message) (int64, error)
	MarkDelivered(ctx context.Context, id int64) error
	Messages(ctx context.Context, limit int) ([]store.Message, error)
	Message(ctx context.Context, id int64) (*store.Message, error)
	Ping(ctx context.Context) error
}

type Mailer interface {
	Configured() bool
	Send(c mail.Contact) error
}

type Server struct {
	cfg    *config.Config
	home   *Home
	store  Store
	mailer Mailer
	logger *slog.Logger
	now    func() time.Time

	adminToken  string
	hashingSalt string

	bg sync.WaitGroup
}

// New wires a server. It fails only if the process cannot produce random
// tokens.
func New(cfg *config.Config, home *Home, st Store, mailer Mailer, logger *slog.Logger) (*Server, error) {
	token, err := randomToken()
	if err != nil {
		return nil, fmt.Errorf("generate admin token: %w", err)
	}
	salt, err := randomToken()
	if err != nil {
		return nil, fmt.Errorf("generate hashing salt: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		cfg:         cfg,
		home:        home,
		store:       st,
		mailer:      mailer,
		logger:      logger,
		now:         time.Now,
		adminToken:  token,
		hashingSalt: salt,
	}, nil
}

// Router builds the gin engine with every route registered.
func (s *Server) Router() (*gin.Engine, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	r := gin.New()
	if err := r.SetTrustedProxies(s.cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	r.Use(requestLogger(s.logger), gin.Recovery(), s.visitorTracking())
	r.SetHTMLTemplate(tmpl)

	assets, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}
	r.StaticFS("/static", http.FS(assets))

	r.GET("/", s.index)
	r.GET("/contact-form", s.contactForm)
	r.POST("/contact", s.contact)
	r.GET("/privacy", s.privacy)

	api := r.Group("/api")
	api.GET("/resume", s.resume)
	api.GET("/resume/experiences/:id", s.experience)
	api.GET("/resume/projects/:id", s.project)
	api.GET("/animations", s.animations)
	api.GET("/health", s.health)

	s.setupAdminRoutes(r)

	return r, nil
}

// RunRetention purges visits older than the retention window now and then
// once a day until ctx is done.
func (s *Server) RunRetention(ctx context.Context) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()
	for {
		s.purgeOldVisits(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *Server) purgeOldVisits(ctx context.Context) (int64, error) {
	n, err := s.store.PurgeVisitsBefore(ctx, s.now().Add(-s.cfg.Retention))
	if err != nil {
		s.logger.Error("visitor cleanup failed", "error", err)
		return 0, err
	}
	if n > 0 {
		s.logger.Info("privacy cleanup removed old visitor records", "count", n, "retention", s.cfg.Retention)
	}
	return n, nil
}

// Wait blocks until background visit recording has finished.
func (s *Server) Wait() {
	s.bg.Wait()
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
