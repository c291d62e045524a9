// Package posweb provides embedded assets for production builds.
package posweb

import "embed"

//go:embed all:frontend/static
var StaticFS embed.FS

//go:embed all:frontend/templates
var TemplateFS embed.FS
