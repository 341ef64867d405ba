package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/starwars-blog-api/pkg/response"
)

type Endpoint struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

type Sitemap struct {
	Endpoints []Endpoint `json:"endpoints"`
}

// SitemapHandler lists the routes registered on the engine.
type SitemapHandler struct {
	Engine *gin.Engine
}

func NewSitemapHandler(engine *gin.Engine) *SitemapHandler {
	return &SitemapHandler{Engine: engine}
}

func (h *SitemapHandler) Index(c *gin.Context) {
	routes := h.Engine.Routes()
	out := make([]Endpoint, 0, len(routes))
	for _, r := range routes {
		out = append(out, Endpoint{Method: r.Method, Path: r.Path})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		return out[i].Method < out[j].Method
	})
	response.Success(c, http.StatusOK, Sitemap{Endpoints: out})
}
