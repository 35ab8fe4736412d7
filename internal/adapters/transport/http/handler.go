package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/rylmat/auth-service/internal/adapters/transport/http/middleware"
	"github.com/rylmat/auth-service/internal/auth/dto"
	authErrors "github.com/rylmat/auth-service/internal/auth/errors"
	"github.com/rylmat/auth-service/internal/auth/service"
	"github.com/rylmat/auth-service/internal/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter wires the HTTP surface: the API endpoints plus the service
// banner and health check.
func NewRouter(svc service.AuthService, cfg *config.Config, log *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))

	corsConfig := cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Accept",
			"Authorization",
			"X-Requested-With",
		},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowOrigins = nil
	}
	router.Use(cors.New(corsConfig))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":   "auth service",
			"endpoints": []string{"/api/register", "/api/login", "/api/verify"},
		})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().Unix()})
	})

	router.POST("/api/register", func(c *gin.Context) {
		var body dto.RegisterDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		id, err := svc.Register(c.Request.Context(), body)
		if err != nil {
			handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "account created", "userId": id})
	})

	router.POST("/api/login", func(c *gin.Context) {
		var body dto.LoginDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		issued, err := svc.Login(c.Request.Context(), body)
		if err != nil {
			handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": issued.Token, "email": issued.Email})
	})

	router.GET("/api/verify", func(c *gin.Context) {
		claims, err := svc.Verify(c.Request.Context(), bearerToken(c))
		if err != nil {
			handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"valid": true, "user": claims})
	})

	return router
}

// bearerToken pulls the token out of "Authorization: Bearer <token>".
// An absent or lone-word header yields "", which Verify treats as missing.
func bearerToken(c *gin.Context) string {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

func handleError(c *gin.Context, err error) {
	switch {
	case authErrors.IsMissingField(err),
		authErrors.IsWeakPassword(err),
		authErrors.IsAlreadyExists(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case authErrors.IsInvalidCredentials(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case authErrors.IsMissingToken(err), authErrors.IsInvalidToken(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
	}
}
