package web

import (
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gafarajao/portfolio/internal/content"
	contactmail "github.com/gafarajao/portfolio/internal/mail"
	"github.com/gafarajao/portfolio/internal/store"
)

// Home page
func (s *Server) index(c *gin.Context) {
	r := s.home.Resume
	c.HTML(http.StatusOK, "index.html", gin.H{
		"person":      r.Person,
		"tagline":     s.home.Tagline,
		"summary":     s.home.Summary,
		"stats":       r.Stats,
		"experiences": r.Experiences,
		"projects":    r.Projects,
		"skills":      r.Skills,
		"education":   r.Education,
		"socialLinks": r.SocialLinks,
	})
}

func (s *Server) resume(c *gin.Context) {
	c.JSON(http.StatusOK, s.home.Resume)
}

func (s *Server) experience(c *gin.Context) {
	e, ok := content.ExperienceByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "experience not found"})
		return
	}
	c.JSON(http.StatusOK, e)
}

func (s *Server) project(c *gin.Context) {
	p, ok := content.ProjectByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) animations(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=300")
	c.JSON(http.StatusOK, s.home.Plan)
}

func (s *Server) health(c *gin.Context) {
	now := s.now().UTC().Format(time.RFC3339)
	if err := s.store.Ping(c.Request.Context()); err != nil {
		s.logger.Error("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "time": now})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "time": now})
}

// HTMX contact form fragment
func (s *Server) contactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"title": "Contact Me",
	})
}

// contact stores the submission and forwards it by mail when SMTP is
// configured. The visitor sees success if either step worked.
func (s *Server) contact(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("fullName"))
	email := strings.TrimSpace(c.PostForm("email"))
	message := strings.TrimSpace(c.PostForm("message"))

	if name == "" || email == "" || message == "" {
		c.HTML(http.StatusBadRequest, "contact-error.html", gin.H{
			"error": "Please fill in your name, email and message.",
		})
		return
	}
	if _, err := mail.ParseAddress(email); err != nil {
		c.HTML(http.StatusBadRequest, "contact-error.html", gin.H{
			"error": "Please enter a valid email address.",
		})
		return
	}

	ctx := c.Request.Context()
	stored := true
	id, err := s.store.SaveMessage(ctx, store.Message{
		Name:      name,
		Email:     email,
		Body:      message,
		CreatedAt: s.now(),
	})
	if err != nil {
		stored = false
		s.logger.Error("error storing contact message", "error", err)
	}

	delivered := false
	if s.mailer.Configured() {
		if err := s.mailer.Send(contactmail.Contact{Name: name, Email: email, Message: message}); err != nil {
			s.logger.Error("error sending contact email", "error", err)
		} else {
			delivered = true
			s.logger.Info("contact email sent", "message_id", id)
		}
	}
	if delivered && stored {
		if err := s.store.MarkDelivered(ctx, id); err != nil {
			s.logger.Warn("could not mark message delivered", "message_id", id, "error", err)
		}
	}

	if !stored && !delivered {
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}

	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": "Thank you for your message! I'll get back to you soon.",
	})
}

func (s *Server) privacy(c *gin.Context) {
	c.HTML(http.StatusOK, "privacy.html", gin.H{
		"title":     "Privacy Policy",
		"retention": s.cfg.Retention,
	})
}
