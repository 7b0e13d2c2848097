package rest

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const apiV1Prefix = "/api/v1"

// RegisterRoutes builds the echo instance with all blog routes attached.
func (h *BlogHandler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(h.loggingMiddleware)

	api := e.Group(apiV1Prefix)
	api.GET("/blogs", h.Blogs)
	api.POST("/blogs", h.CreateBlog)
	api.PATCH("/blogs", h.PatchBlog)
	api.DELETE("/blogs", h.DeleteBlogByID)
	api.GET("/blogs/:slug", h.BlogBySlug)
	api.PUT("/blogs/:slug", h.UpdateBlogBySlug)
	api.DELETE("/blogs/:slug", h.DeleteBlogBySlug)

	e.GET("/health", h.handleHealth)

	return e
}

func (h *BlogHandler) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *BlogHandler) loggingMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		if err := next(c); err != nil {
			c.Error(err)
		}

		duration := time.Since(start)

		h.log.Info("HTTP request",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", c.Response().Status,
			"duration_ms", duration.Milliseconds(),
			"remote_addr", c.RealIP(),
		)

		return nil
	}
}
