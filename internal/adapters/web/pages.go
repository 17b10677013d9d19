package web

import (
	"errors"
	"net/http"
	"net/url"

	"dashboard-customization/internal/app"
	"dashboard-customization/internal/core"
	"dashboard-customization/web/templates/layouts"
	"dashboard-customization/web/templates/pages"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
)

// ── Dashboard ─────────────────────────────────────────────────────────────────

// dashboardPage handles GET /dashboard and renders the first declared tab.
func (h *Handler) dashboardPage(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.svc.GetConfig(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	if len(cfg.Dashboard.Tabs) == 0 {
		h.renderPage(w, r, http.StatusOK, h.buildAppLayoutData(cfg, ""), nil)
		return
	}
	h.renderTabPage(w, r, cfg, cfg.Dashboard.Tabs[0].ID)
}

// dashboardTabPage handles GET /dashboard/{tab}.
func (h *Handler) dashboardTabPage(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.svc.GetConfig(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	h.renderTabPage(w, r, cfg, chi.URLParam(r, "tab"))
}

// tabFragment handles GET /tabs/{tab}: the bare component, without the shell.
func (h *Handler) tabFragment(w http.ResponseWriter, r *http.Request) {
	tabID := chi.URLParam(r, "tab")
	result, err := h.svc.RenderTab(r.Context(), tabID)
	status := http.StatusOK
	var component templ.Component
	switch {
	case err == nil:
		component = result.Component
	case errors.Is(err, app.ErrNotFound):
		status = http.StatusNotFound
		component = pages.TabPlaceholder(tabID)
	default:
		respondServiceError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := component.Render(r.Context(), w); err != nil {
		h.log.Error(err, "render tab fragment", "tab", tabID)
	}
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// renderTabPage renders the shell with tabID active. A tab without a registered
// component gets a placeholder and a 404 status.
func (h *Handler) renderTabPage(w http.ResponseWriter, r *http.Request, cfg *core.AppConfig, tabID string) {
	d := h.buildAppLayoutData(cfg, tabID)

	result, err := h.svc.RenderTab(r.Context(), tabID)
	if err != nil {
		if !errors.Is(err, app.ErrNotFound) {
			respondServiceError(w, r, err)
			return
		}
		d.FlashMsg = "This section is not available."
		d.FlashKind = "warning"
		h.renderPage(w, r, http.StatusNotFound, d, pages.TabPlaceholder(tabID))
		return
	}
	if result.Tab.Label != "" {
		d.Title = result.Tab.Label + " · " + cfg.Title
	}
	h.renderPage(w, r, http.StatusOK, d, result.Component)
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, status int, d layouts.AppLayoutData, body templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pages.Dashboard(d, body).Render(r.Context(), w); err != nil {
		h.log.Error(err, "render dashboard page", "active", d.ActiveNav)
	}
}

// buildAppLayoutData constructs AppLayoutData from the customization config.
func (h *Handler) buildAppLayoutData(cfg *core.AppConfig, activeNav string) layouts.AppLayoutData {
	tabs := make([]layouts.NavTab, 0, len(cfg.Dashboard.Tabs))
	for _, t := range cfg.Dashboard.Tabs {
		tabs = append(tabs, layouts.NavTab{
			ID:          t.ID,
			Label:       t.Label,
			Description: t.Description,
			Icon:        string(t.Icon),
			Href:        "/dashboard/" + url.PathEscape(t.ID),
		})
	}

	return layouts.AppLayoutData{
		Title:          cfg.Title,
		CompanyName:    cfg.CompanyName,
		Logo:           cfg.Logo,
		PrimaryColor:   cfg.PrimaryColor,
		SecondaryColor: cfg.SecondaryColor,
		Username:       cfg.UserName,
		Tabs:           tabs,
		ActiveNav:      activeNav,
	}
}
