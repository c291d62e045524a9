package httpx

import "net/http"

func passwordMeta() PageMeta {
	return PageMeta{
		Title:       "Cambiar contraseña",
		PageTitle:   "Cambiar contraseña",
		CurrentPage: "password",
	}
}

// PasswordPage renders the change-password form.
func (h *Handlers) PasswordPage(w http.ResponseWriter, r *http.Request) {
	data := NewTemplateData(r, passwordMeta()).Build()
	if err := h.T.RenderPage(w, "password", data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// PasswordSubmit changes the signed-in user's own password.
func (h *Handlers) PasswordSubmit(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	err := h.Accounts.ChangeOwnPassword(
		r.Context(),
		sess.AccessToken,
		r.PostFormValue("old_password"),
		r.PostFormValue("new_password"),
		r.PostFormValue("confirm_password"),
	)
	if err != nil {
		h.renderPageError(w, r, "password", NewTemplateData(r, passwordMeta()), err)
		return
	}

	data := NewTemplateData(r, passwordMeta()).
		WithFlash("Contraseña actualizada.").
		Build()
	if renderErr := h.T.RenderPage(w, "password", data); renderErr != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
