package web

import (
	"io/fs"
	"net/http"

	"dashboard-customization/internal/app"
	webui "dashboard-customization/web"

	"github.com/go-chi/chi/v5"
	"github.com/go-logr/logr"
)

// Handler holds the ApplicationService the routes call into.
type Handler struct {
	svc        app.ApplicationService
	log        logr.Logger
	fileServer http.Handler
}

// NewHandler creates and wires the chi router with all routes.
func NewHandler(svc app.ApplicationService, log logr.Logger, allowedOrigins string) http.Handler {
	staticFS, err := fs.Sub(webui.Static, "static")
	if err != nil {
		panic("web/static embed sub-FS failed: " + err.Error())
	}

	h := &Handler{
		svc:        svc,
		log:        log,
		fileServer: http.FileServer(http.FS(staticFS)),
	}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger(log))
	r.Use(Recoverer)
	r.Use(CORS(allowedOrigins))

	// ── Health ────────────────────────────────────────────────────────────────
	r.Get("/api/health", h.health)

	// ── Static files served at /static/* ─────────────────────────────────────
	r.Get("/static/*", func(w http.ResponseWriter, req *http.Request) {
		http.StripPrefix("/static", h.fileServer).ServeHTTP(w, req)
	})

	// ── Dashboard pages (HTML) ───────────────────────────────────────────────
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/dashboard", http.StatusSeeOther)
	})
	r.Get("/dashboard", h.dashboardPage)
	r.Get("/dashboard/{tab}", h.dashboardTabPage)
	r.Get("/tabs/{tab}", h.tabFragment)

	// ── Customization bundle (JSON) ──────────────────────────────────────────
	r.Get("/api/customization", h.apiBundle)
	r.Get("/api/customization/config", h.apiConfig)
	r.Get("/api/customization/tabs", h.apiTabs)
	r.Get("/api/customization/schema", h.apiSchema)
	r.Get("/api/customization/charts/{section}/{name}", h.apiChart)
	r.Get("/api/customization/data/{name}", h.apiReferenceList)

	return r
}

// health returns service status and the configured company name.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	company := ""
	if cfg, err := h.svc.GetConfig(r.Context()); err == nil {
		company = cfg.CompanyName
	}

	type response struct {
		Status  string `json:"status"`
		Company string `json:"company"`
	}

	respond(w, r, http.StatusOK, response{Status: "ok", Company: company})
}
