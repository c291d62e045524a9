package httpx

import (
	"net/http"

	apperrors "github.com/minegocio/pos-web/internal/errors"
)

// handleUnauthorized is the single place a backend 401 turns into "session
// over": the session is destroyed, the cookie cleared, and the user sent to
// the login page. Returns true when it consumed the error.
func (h *Handlers) handleUnauthorized(w http.ResponseWriter, r *http.Request, err error) bool {
	if !apperrors.IsUnauthorized(err) {
		return false
	}

	if session := GetSessionFromContext(r.Context()); session != nil {
		h.Sessions.Invalidate(r.Context(), session.ID)
	}
	clearSessionCookie(w, h.CookieDomain, h.SecureCookies)
	redirectToLogin(w, r)
	return true
}

// statusFor maps an application error to the HTTP status of the rendered page.
func statusFor(err error) int {
	switch {
	case apperrors.IsValidation(err) || apperrors.IsCredentials(err):
		return http.StatusUnprocessableEntity
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsConflict(err):
		return http.StatusConflict
	case apperrors.IsUnavailable(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// renderFailure handles errors with no form to return to: a 401 ends the
// session, anything else lands on the error page.
func (h *Handlers) renderFailure(w http.ResponseWriter, r *http.Request, err error) {
	if h.handleUnauthorized(w, r, err) {
		return
	}

	data := NewTemplateData(r, PageMeta{Title: "Error", PageTitle: "Algo salió mal"}).
		WithError(apperrors.UserMessage(err)).
		Build()
	w.WriteHeader(statusFor(err))
	if renderErr := h.T.RenderPage(w, "error", data); renderErr != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// renderPageError re-renders a page with the error banner filled in.
func (h *Handlers) renderPageError(
	w http.ResponseWriter,
	r *http.Request,
	page string,
	builder *TemplateDataBuilder,
	err error,
) {
	if h.handleUnauthorized(w, r, err) {
		return
	}

	builder.WithError(apperrors.UserMessage(err))
	if field := apperrors.GetField(err); field != "" {
		builder.WithFieldErrors(map[string]string{field: apperrors.UserMessage(err)})
	}

	w.WriteHeader(statusFor(err))
	if renderErr := h.T.RenderPage(w, page, builder.Build()); renderErr != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
