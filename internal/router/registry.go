package router

import "github.com/gin-gonic/gin"

// Module is a feature that mounts its routes on the registry's group.
type Module interface {
	Register(rg *gin.RouterGroup)
}

// Registry collects feature modules and mounts them on one base group.
type Registry struct {
	Engine      *gin.Engine
	API         *gin.RouterGroup
	middlewares []gin.HandlerFunc
	modules     []Module
}

// NewRegistry mounts modules under basePath ("/" for the site root).
func NewRegistry(engine *gin.Engine, basePath string) *Registry {
	api := engine.Group(basePath)
	return &Registry{Engine: engine, API: api}
}

func (r *Registry) Use(mw ...gin.HandlerFunc) {
	r.middlewares = append(r.middlewares, mw...)
}

func (r *Registry) Add(mod Module) {
	r.modules = append(r.modules, mod)
}

func (r *Registry) RegisterAll() {
	if len(r.middlewares) > 0 {
		r.API.Use(r.middlewares...)
	}
	for _, m := range r.modules {
		m.Register(r.API)
	}
}
