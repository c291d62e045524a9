package httpx

import (
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTemplateRenderer_RequiresFS(t *testing.T) {
	_, err := NewTemplateRenderer(TemplateRendererConfig{})
	assert.Error(t, err)
}

func TestMoneyFunc(t *testing.T) {
	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: fstest.MapFS{
			"layout.tmpl": {Data: []byte(`{{define "layout"}}{{content .ContentTemplate .}}{{end}}`)},
			"pages/price.tmpl": {Data: []byte(
				`{{define "price"}}{{money .Amount}} {{money .Negative}} {{money .Zero}}{{end}}`)},
		},
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	err = tr.RenderPage(w, "price", map[string]any{
		"Amount":   decimal.RequireFromString("8.5"),
		"Negative": decimal.RequireFromString("-1.5"),
		"Zero":     decimal.Zero,
	})
	require.NoError(t, err)
	assert.Equal(t, "$8.50 $-1.50 $0.00", w.Body.String())
}

func TestRenderPage_WrapsInLayout(t *testing.T) {
	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: fstest.MapFS{
			"layout.tmpl":      {Data: []byte(`{{define "layout"}}<title>{{.Title}}</title>{{content .ContentTemplate .}}{{end}}`)},
			"pages/hello.tmpl": {Data: []byte(`{{define "hello"}}<p>hola {{.Name}}</p>{{end}}`)},
		},
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	err = tr.RenderPage(w, "hello", map[string]any{"Title": "Saludo", "Name": "caro"})
	require.NoError(t, err)

	assert.Equal(t, "<title>Saludo</title><p>hola caro</p>", w.Body.String())
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
}

func TestRenderPage_UnknownPageWritesNothing(t *testing.T) {
	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: fstest.MapFS{
			"layout.tmpl":      {Data: []byte(`{{define "layout"}}shell {{content .ContentTemplate .}}{{end}}`)},
			"pages/hello.tmpl": {Data: []byte(`{{define "hello"}}hi{{end}}`)},
		},
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	err = tr.RenderPage(w, "missing", nil)

	assert.Error(t, err)
	assert.Empty(t, w.Body.String(), "partial output must not reach the client")
}

func TestRenderStandalone_SkipsLayout(t *testing.T) {
	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: fstest.MapFS{
			"layout.tmpl":      {Data: []byte(`{{define "layout"}}shell{{end}}`)},
			"pages/login.tmpl": {Data: []byte(`{{define "login"}}<form>{{.Username}}</form>{{end}}`)},
		},
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	err = tr.RenderStandalone(w, "login", map[string]any{"Username": "caro"})
	require.NoError(t, err)
	assert.Equal(t, "<form>caro</form>", w.Body.String())
}
