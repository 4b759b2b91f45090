package router

import (
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
)

// Resource is a REST collection mounted under the versioned API prefix
type Resource struct {
	name   string
	prefix string
	routes []route
}

type route struct {
	method   string
	path     string
	handlers []gin.HandlerFunc
}

// NewResource creates a resource named name served under prefix, e.g. "/orders"
func NewResource(name, prefix string) *Resource {
	return &Resource{name: name, prefix: prefix}
}

// GET registers a GET route relative to the resource prefix
func (r *Resource) GET(relPath string, handlers ...gin.HandlerFunc) *Resource {
	return r.handle(http.MethodGet, relPath, handlers)
}

// POST registers a POST route
func (r *Resource) POST(relPath string, handlers ...gin.HandlerFunc) *Resource {
	return r.handle(http.MethodPost, relPath, handlers)
}

// PUT registers a PUT route
func (r *Resource) PUT(relPath string, handlers ...gin.HandlerFunc) *Resource {
	return r.handle(http.MethodPut, relPath, handlers)
}

// PATCH registers a PATCH route
func (r *Resource) PATCH(relPath string, handlers ...gin.HandlerFunc) *Resource {
	return r.handle(http.MethodPatch, relPath, handlers)
}

// DELETE registers a DELETE route
func (r *Resource) DELETE(relPath string, handlers ...gin.HandlerFunc) *Resource {
	return r.handle(http.MethodDelete, relPath, handlers)
}

func (r *Resource) handle(method, relPath string, handlers []gin.HandlerFunc) *Resource {
	r.routes = append(r.routes, route{method: method, path: relPath, handlers: handlers})
	return r
}

// Name returns the resource name used in the endpoint map
func (r *Resource) Name() string {
	return r.name
}

// Mount registers every route of the resource on rg
func (r *Resource) Mount(rg *gin.RouterGroup) {
	group := rg.Group(r.prefix)
	for _, rt := range r.routes {
		group.Handle(rt.method, rt.path, rt.handlers...)
	}
}

// API mounts resources under /api/<version>
type API struct {
	engine    *gin.Engine
	version   string
	resources []*Resource
}

// NewAPI creates an API for version ("v1" when empty)
func NewAPI(engine *gin.Engine, version string) *API {
	if version == "" {
		version = "v1"
	}
	return &API{engine: engine, version: version}
}

// Add queues resources for mounting
func (a *API) Add(resources ...*Resource) *API {
	a.resources = append(a.resources, resources...)
	return a
}

// BasePath is the prefix every resource is mounted under
func (a *API) BasePath() string {
	return "/api/" + a.version
}

// Mount registers all queued resources with the engine
func (a *API) Mount() {
	api := a.engine.Group(a.BasePath())
	for _, res := range a.resources {
		res.Mount(api)
	}
}

// Endpoints maps each resource name to its collection path
func (a *API) Endpoints() map[string]string {
	endpoints := make(map[string]string, len(a.resources))
	for _, res := range a.resources {
		endpoints[res.name] = path.Join(a.BasePath(), res.prefix)
	}
	return endpoints
}
