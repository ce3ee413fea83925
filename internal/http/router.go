package http

import (
	"github.com/gin-gonic/gin"
)

// resource groups the handlers of one CRUD resource. Nil handlers are not routed.
type resource struct {
	list, create, get, update, patch, remove gin.HandlerFunc
}

// handle registers path both with and without a trailing slash.
func handle(r gin.IRoutes, method, path string, h gin.HandlerFunc) {
	r.Handle(method, path, h)
	r.Handle(method, path+"/", h)
}

func (res resource) register(r gin.IRoutes, collection, item string) {
	routes := []struct {
		method, path string
		h            gin.HandlerFunc
	}{
		{"GET", collection, res.list},
		{"POST", collection, res.create},
		{"GET", item, res.get},
		{"PUT", item, res.update},
		{"PATCH", item, res.patch},
		{"DELETE", item, res.remove},
	}
	for _, rt := range routes {
		if rt.h != nil {
			handle(r, rt.method, rt.path, rt.h)
		}
	}
}

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies.
func NewRouter(cfg RouterConfig) *gin.Engine {
	configureBinding()

	router := gin.New()
	// Both slash forms are registered explicitly.
	router.RedirectTrailingSlash = false
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(SecurityHeadersMiddleware())

	if cfg.RateLimit.Enabled {
		router.Use(NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst).Middleware())
	}

	// Health endpoints
	health := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", health.Status)
	router.GET("/ping", health.Ping)

	// Detail views
	if cfg.Catalog != nil {
		detail := NewDetailController(cfg.Catalog, cfg.Media)
		router.GET("/", detail.ListBooks)
		handle(router, "GET", "/book/:bookId", detail.BookDetail)
		handle(router, "GET", "/book/:bookId/chapters", detail.BookChapters)
		handle(router, "GET", "/book/:bookId/chapter/:chapterId", detail.ChapterDetail)
		handle(router, "GET", "/chapter/:chapterId/section/:sectionId", detail.SectionDetail)
		handle(router, "GET", "/shloka/:shlokaId", detail.ShlokaDetail)
		handle(router, "GET", "/audio", detail.AudioFiles)
	}

	api := router.Group("/api")
	if cfg.ReadOnly {
		api.Use(ReadOnlyMiddleware(true))
	}

	if cfg.Books != nil {
		books := NewBooksController(cfg.Books, cfg.Media)
		resource{books.List, books.Create, books.Get, books.Update, books.Patch, books.Delete}.
			register(api, "/books", "/books/:id")
	}

	if cfg.Chapters != nil {
		scoped := NewBookChaptersController(cfg.Chapters, cfg.Media)
		resource{scoped.List, scoped.Create, scoped.Get, scoped.Update, scoped.Patch, scoped.Delete}.
			register(api, "/books/:id/chapters", "/books/:id/chapters/:chapterId")

		all := NewChaptersController(cfg.Chapters, cfg.Media)
		resource{all.List, all.Create, all.Get, all.Update, all.Patch, all.Delete}.
			register(api, "/chapters", "/chapters/:id")
	}

	if cfg.Sections != nil {
		sections := NewSectionsController(cfg.Sections, cfg.Media)
		resource{sections.List, sections.Create, sections.Get, sections.Update, sections.Patch, sections.Delete}.
			register(api, "/sections", "/sections/:id")
	}

	if cfg.Shlokas != nil {
		shlokas := NewShlokasController(cfg.Shlokas, cfg.Media)
		resource{shlokas.List, shlokas.Create, shlokas.Get, shlokas.Update, shlokas.Patch, shlokas.Delete}.
			register(api, "/shlokas", "/shlokas/:id")
	}

	if cfg.AudioFiles != nil {
		audio := NewAudioFilesController(cfg.AudioFiles, cfg.Media)
		resource{audio.List, audio.Create, audio.Get, audio.Update, audio.Patch, audio.Delete}.
			register(api, "/audiofiles", "/audiofiles/:id")
	}

	if cfg.Users != nil {
		users := NewUsersController(cfg.Users)
		resource{list: users.ListRoles, create: users.CreateRole, get: users.GetRole, remove: users.DeleteRole}.
			register(api, "/roles", "/roles/:id")
		resource{list: users.ListUsers, create: users.CreateUser, get: users.GetUser, remove: users.DeleteUser}.
			register(api, "/users", "/users/:id")
	}

	return router
}
