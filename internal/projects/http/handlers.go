package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bokyaa/portfolio-backend/internal/notify"
	"github.com/bokyaa/portfolio-backend/internal/projects/domain"
	"github.com/bokyaa/portfolio-backend/internal/projects/views"
)

func (h *Handler) create(c *gin.Context) {
	var req projectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	rec, err := h.svc.Create(c.Request.Context(), req.input())
	if err != nil {
		c.JSON(statusFor(err), gin.H{"ok": false, "error": err.Error(), "notice": notify.FromError(err)})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"ok":      true,
		"project": rec,
		"notice":  notify.Info("Project Added Successfully! 🎉", "Your project has been saved and is now visible on your website. Check the Projects page!"),
	})
}

func (h *Handler) update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid project id"})
		return
	}

	var req projectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	rec, err := h.svc.Update(c.Request.Context(), id, req.input())
	if err != nil {
		c.JSON(statusFor(err), gin.H{"ok": false, "error": err.Error(), "notice": notify.FromError(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"project": rec,
		"notice":  notify.Info("Project Updated", "Project has been successfully updated and will appear on your website!"),
	})
}

func (h *Handler) delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid project id"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		c.JSON(statusFor(err), gin.H{"ok": false, "error": err.Error(), "notice": notify.FromError(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":     true,
		"notice": notify.Info("Project Deleted", "Project has been successfully deleted."),
	})
}

// adminList returns the raw records the management console edits.
func (h *Handler) adminList(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": h.svc.List(c.Request.Context())})
}

// listing serves the public projects page: the lighter listing shape,
// optionally filtered by exact category match.
func (h *Handler) listing(c *gin.Context) {
	records := h.svc.List(c.Request.Context())
	category := c.Query("category")
	c.JSON(http.StatusOK, gin.H{
		"ok":         true,
		"projects":   views.Listing(records, category),
		"categories": views.Categories,
	})
}

// featured serves the home page projection: the first three records.
func (h *Handler) featured(c *gin.Context) {
	records := h.svc.List(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": views.Featured(records)})
}

// detail serves one record expanded into the detail-page shape. Unknown
// ids are an explicit not-found, not a sample record.
func (h *Handler) detail(c *gin.Context) {
	rec, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": views.Detail(rec)})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrTitleRequired),
		errors.Is(err, domain.ErrNoImages),
		errors.Is(err, domain.ErrTooManyImages):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
