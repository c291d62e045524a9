package httpx

import (
	"bytes"
	"errors"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"
)

// TemplateRenderer renders HTML templates for UI responses.
type TemplateRenderer struct {
	t      *template.Template
	logger *slog.Logger
}

// TemplateRendererConfig holds configuration for creating a TemplateRenderer.
type TemplateRendererConfig struct {
	TemplateFS fs.FS        // Filesystem containing templates (required)
	Logger     *slog.Logger // Logger for template errors (optional)
}

// NewTemplateRenderer constructs a renderer by parsing templates from the
// provided filesystem: layout and shared partials at the root, one file per
// screen under pages/.
func NewTemplateRenderer(cfg TemplateRendererConfig) (*TemplateRenderer, error) {
	if cfg.TemplateFS == nil {
		return nil, errors.New("TemplateFS is required")
	}

	var t *template.Template
	t, err := template.New("root").Funcs(templateFuncs(&t)).ParseFS(cfg.TemplateFS,
		"*.tmpl",
		"pages/*.tmpl",
	)
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Error("template parsing failed", slog.Any("error", err))
		}
		return nil, err
	}

	return &TemplateRenderer{t: t, logger: cfg.Logger}, nil
}

// RenderPage renders a full page: the layout shell with the named page
// template as its content. The data map must carry "ContentTemplate" so the
// layout knows which page block to invoke; Render sets it from name.
func (r *TemplateRenderer) RenderPage(w http.ResponseWriter, name string, data map[string]any) error {
	if data == nil {
		data = map[string]any{}
	}
	data["ContentTemplate"] = name
	return r.renderTemplate(w, "layout", data)
}

// RenderStandalone renders a template without the layout (the login page).
func (r *TemplateRenderer) RenderStandalone(w http.ResponseWriter, name string, data map[string]any) error {
	return r.renderTemplate(w, name, data)
}

func (r *TemplateRenderer) renderTemplate(w http.ResponseWriter, templateName string, data any) error {
	var buf bytes.Buffer
	if err := r.t.ExecuteTemplate(&buf, templateName, data); err != nil {
		if r.logger != nil {
			r.logger.Error("template execution failed",
				slog.String("template", templateName),
				slog.Any("error", err),
			)
		}
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		if r.logger != nil {
			r.logger.Error("failed to write rendered template",
				slog.String("template", templateName),
				slog.Any("error", err),
			)
		}
		return err
	}

	return nil
}

// templateFuncs builds the function map. The template pointer is captured by
// reference so "content" can dispatch to page templates parsed after the map
// is installed.
func templateFuncs(t **template.Template) template.FuncMap {
	return template.FuncMap{
		"money": func(d decimal.Decimal) string {
			return "$" + d.StringFixed(2)
		},
		"content": func(name string, data any) (template.HTML, error) {
			var buf bytes.Buffer
			if err := (*t).ExecuteTemplate(&buf, name, data); err != nil {
				return "", err
			}
			return template.HTML(buf.String()), nil //nolint:gosec // rendered by our own templates
		},
	}
}
