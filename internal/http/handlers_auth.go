package httpx

import (
	"net/http"

	apperrors "github.com/minegocio/pos-web/internal/errors"
)

// Home routes an authenticated user to their landing page: the admin panel
// dashboard for admins, the point of sale for cashiers.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	if session != nil && session.IsAdmin() {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/pos", http.StatusSeeOther)
}

// LoginPage renders the login form. An already-authenticated user is sent to
// their landing page instead.
func (h *Handlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	if sessionFromRequest(r, h.Sessions) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := map[string]any{"Title": "Iniciar sesión", "Username": ""}
	if err := h.T.RenderStandalone(w, "login", data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// LoginSubmit handles the login form. Bad credentials re-render the form with
// a message; connectivity failures get their own message so the user knows
// the difference.
func (h *Handlers) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	sess, err := h.Sessions.Login(r.Context(), username, password)
	if err != nil {
		data := map[string]any{
			"Title":        "Iniciar sesión",
			"Error":        true,
			"ErrorMessage": apperrors.UserMessage(err),
			"Username":     username,
		}
		w.WriteHeader(statusFor(err))
		if renderErr := h.T.RenderStandalone(w, "login", data); renderErr != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	setSessionCookie(w, sess.ID, h.CookieDomain, h.SecureCookies)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout ends the session. Always lands on the login page, even when there
// was nothing to log out.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		if logoutErr := h.Sessions.Logout(r.Context(), cookie.Value); logoutErr != nil {
			h.Logger.WarnContext(r.Context(), "logout cleanup failed", "error", logoutErr)
		}
	}

	clearSessionCookie(w, h.CookieDomain, h.SecureCookies)
	redirectToLogin(w, r)
}
