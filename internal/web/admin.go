package web

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gafarajao/portfolio/internal/store"
)

const adminCookie = "admin_token"

// Hash IP address for privacy compliance (consistent per IP for the
// lifetime of the process)
func (s *Server) hashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + s.hashingSalt))
	return hex.EncodeToString(sum[:])[:16]
}

func (s *Server) adminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(s.adminToken)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// visitorTracking records page views with a hashed IP. Static files, the
// JSON API, HTMX fragment requests, admin and privacy pages are skipped, and
// so is anyone sending DNT: 1.
func (s *Server) visitorTracking() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/static/") ||
			strings.HasPrefix(path, "/images/") ||
			strings.HasPrefix(path, "/api/") ||
			strings.HasPrefix(path, "/admin") ||
			strings.HasPrefix(path, "/favicon") ||
			strings.HasPrefix(path, "/privacy") ||
			c.GetHeader("HX-Request") == "true" ||
			c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		visit := store.Visit{
			HashedIP:  s.hashIP(c.ClientIP()),
			UserAgent: c.GetHeader("User-Agent"),
			Path:      path,
			Timestamp: s.now(),
		}
		ctx := context.WithoutCancel(c.Request.Context())
		s.bg.Add(1)
		go func() {
			defer s.bg.Done()
			if err := s.store.RecordVisit(ctx, visit); err != nil {
				s.logger.Error("error recording visitor", "error", err)
			}
		}()

		c.Next()
	}
}

// setupAdminRoutes registers the admin panel. With the default credentials
// in effect the panel is only served in debug mode.
func (s *Server) setupAdminRoutes(r *gin.Engine) {
	if s.cfg.UsingDefaultAdmin() {
		if gin.Mode() != gin.DebugMode {
			s.logger.Error("admin panel disabled: default credentials outside debug mode; set ADMIN_USERNAME and ADMIN_PASSWORD",
				"mode", gin.Mode(),
			)
			return
		}
		s.logger.Warn("using default admin credentials; set ADMIN_USERNAME and ADMIN_PASSWORD")
	}

	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{
			"title": "Admin Login",
		})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		username := c.PostForm("username")
		password := c.PostForm("password")

		userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.AdminUsername)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AdminPassword)) == 1
		if !userOK || !passOK {
			s.logger.Warn("failed admin login", "client", s.hashIP(c.ClientIP()))
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
				"error": "Invalid credentials",
			})
			return
		}

		c.SetCookie(adminCookie, s.adminToken, 3600*24, "/admin", "", false, true)
		s.logger.Info("admin login", "client", s.hashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	admin := r.Group("/admin")
	admin.Use(s.adminAuth())

	admin.GET("/dashboard", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context(), s.now())
		if err != nil {
			s.logger.Error("error loading admin stats", "error", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load statistics",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"stats": stats,
		})
	})

	admin.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context(), s.now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	admin.GET("/messages", func(c *gin.Context) {
		msgs, err := s.store.Messages(c.Request.Context(), 200)
		if err != nil {
			s.logger.Error("error loading messages", "error", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load messages",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-messages.html", gin.H{
			"messages": msgs,
		})
	})

	admin.GET("/messages/:id", func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.HTML(http.StatusBadRequest, "admin-error.html", gin.H{
				"error": "Invalid message id",
			})
			return
		}
		msg, err := s.store.Message(c.Request.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			c.HTML(http.StatusNotFound, "admin-error.html", gin.H{
				"error": "Message not found",
			})
			return
		}
		if err != nil {
			s.logger.Error("error loading message", "message_id", id, "error", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load message",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-message.html", gin.H{
			"message": msg,
		})
	})

	admin.POST("/privacy/cleanup", func(c *gin.Context) {
		n, err := s.purgeOldVisits(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cleanup failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"removed": n})
	})
}
