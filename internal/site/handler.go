package site

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/siteforge-io/siteforge/internal/config"
	"github.com/siteforge-io/siteforge/internal/logger"
	"github.com/siteforge-io/siteforge/internal/render"
)

// Handler serves the rendered page and the effective document.
type Handler struct {
	holder   *Holder
	renderer *render.Renderer
	lang     string

	logger *logger.Logger
}

func NewHandler(holder *Holder, renderer *render.Renderer, cfg config.Site, logger *logger.Logger) *Handler {
	logger.Info().Msg("site handler created")
	return &Handler{
		holder:   holder,
		renderer: renderer,
		lang:     cfg.Lang,
		logger:   logger,
	}
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Get("/", h.page)
	router.Get("/config.json", h.configJSON)
	router.Get("/healthz", h.healthz)

	return router
}

// page renders the site for the requested locale. ?lang= overrides the
// configured locale, which overrides the document's site.lang.
func (h *Handler) page(w http.ResponseWriter, r *http.Request) {
	locale, err := h.holder.Locale(r.URL.Query().Get("lang"), h.lang)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	html, err := h.renderer.Page(h.holder.Config(), locale)
	if err != nil {
		h.logger.Err(err).Msg("error rendering page")
		http.Error(w, "error rendering page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(html)
}

// configJSON exposes the effective merged document, mostly for debugging
// which sources ended up applied.
func (h *Handler) configJSON(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(h.holder.Document())
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
