package http

import "github.com/gin-gonic/gin"

// RegisterAdmin attaches the write-side routes. The caller is expected to
// have put the session middleware on the group.
func (h *Handler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.GET("", h.adminList)
	rg.POST("", h.create)
	rg.PUT("/:id", h.update)
	rg.DELETE("/:id", h.delete)
	rg.POST("/images", h.uploadImages)
}

// RegisterPublic attaches the read-only page projections.
func (h *Handler) RegisterPublic(rg *gin.RouterGroup) {
	rg.GET("/projects", h.listing)
	rg.GET("/projects/:id", h.detail)
	rg.GET("/featured", h.featured)
}
