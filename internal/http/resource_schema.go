package httpx

import (
	"net/http"
	"strconv"

	apperrors "github.com/minegocio/pos-web/internal/errors"
)

// fieldKind tells the form parser and the templates how to treat a field.
type fieldKind string

const (
	fieldText    fieldKind = "text"
	fieldDecimal fieldKind = "decimal"
	fieldInt     fieldKind = "int"
	fieldBool    fieldKind = "bool"
	fieldSelect  fieldKind = "select"
)

// resourceField is one editable column of an admin resource.
type resourceField struct {
	Name     string
	Label    string
	Kind     fieldKind
	Required bool
	// Options names the bootstrap collection that feeds a select field, such
	// as "Categories" for a product's category.
	Options string
}

// resourceSchema drives the generic admin CRUD screens: which columns the
// table shows, which fields the form edits, and which filters the search bar
// offers. The backend owns validation; the schema only shapes the form.
type resourceSchema struct {
	Slug     string
	Title    string
	Singular string
	Fields   []resourceField
	Filters  []string
	// ReadOnly resources render the table without create or edit forms.
	ReadOnly bool
}

var resourceSchemas = map[string]resourceSchema{
	"products": {
		Slug:     "products",
		Title:    "Productos",
		Singular: "producto",
		Fields: []resourceField{
			{Name: "sku", Label: "SKU", Kind: fieldText, Required: true},
			{Name: "name", Label: "Nombre", Kind: fieldText, Required: true},
			{Name: "description", Label: "Descripción", Kind: fieldText},
			{Name: "cost_price", Label: "Precio de costo", Kind: fieldDecimal, Required: true},
			{Name: "sale_price", Label: "Precio de venta", Kind: fieldDecimal, Required: true},
			{Name: "stock", Label: "Stock", Kind: fieldInt, Required: true},
			{Name: "category", Label: "Categoría", Kind: fieldSelect, Options: "Categories"},
			{Name: "provider", Label: "Proveedor", Kind: fieldSelect, Options: "Providers"},
			{Name: "estado", Label: "Estado", Kind: fieldText},
		},
		Filters: []string{"name", "sku", "category"},
	},
	"categories": {
		Slug:     "categories",
		Title:    "Categorías",
		Singular: "categoría",
		Fields: []resourceField{
			{Name: "name", Label: "Nombre", Kind: fieldText, Required: true},
			{Name: "description", Label: "Descripción", Kind: fieldText},
		},
		Filters: []string{"name"},
	},
	"providers": {
		Slug:     "providers",
		Title:    "Proveedores",
		Singular: "proveedor",
		Fields: []resourceField{
			{Name: "name", Label: "Nombre", Kind: fieldText, Required: true},
			{Name: "phone", Label: "Teléfono", Kind: fieldText},
			{Name: "email", Label: "Correo", Kind: fieldText},
			{Name: "address", Label: "Dirección", Kind: fieldText},
		},
		Filters: []string{"name"},
	},
	"clients": {
		Slug:     "clients",
		Title:    "Clientes",
		Singular: "cliente",
		Fields: []resourceField{
			{Name: "name", Label: "Nombre", Kind: fieldText, Required: true},
			{Name: "phone", Label: "Teléfono", Kind: fieldText},
			{Name: "email", Label: "Correo", Kind: fieldText},
			{Name: "address", Label: "Dirección", Kind: fieldText},
		},
		Filters: []string{"name"},
	},
	"users": {
		Slug:     "users",
		Title:    "Usuarios",
		Singular: "usuario",
		Fields: []resourceField{
			{Name: "username", Label: "Usuario", Kind: fieldText, Required: true},
			{Name: "email", Label: "Correo", Kind: fieldText},
			{Name: "first_name", Label: "Nombre", Kind: fieldText},
			{Name: "last_name", Label: "Apellido", Kind: fieldText},
			{Name: "groups", Label: "Grupo", Kind: fieldSelect, Options: "Groups"},
			{Name: "is_active", Label: "Activo", Kind: fieldBool},
		},
		Filters: []string{"username"},
	},
	"groups": {
		Slug:     "groups",
		Title:    "Grupos",
		Singular: "grupo",
		Fields: []resourceField{
			{Name: "name", Label: "Nombre", Kind: fieldText, Required: true},
		},
	},
	"payment-methods": {
		Slug:     "payment-methods",
		Title:    "Métodos de pago",
		Singular: "método de pago",
		Fields: []resourceField{
			{Name: "name", Label: "Nombre", Kind: fieldText, Required: true},
			{Name: "adjustment_percentage", Label: "Ajuste %", Kind: fieldDecimal},
			{Name: "requires_tender_amount", Label: "Pide monto recibido", Kind: fieldBool},
			{Name: "is_active", Label: "Activo", Kind: fieldBool},
		},
	},
	"sales": {
		Slug:     "sales",
		Title:    "Ventas",
		Singular: "venta",
		// Read-only: the fields only shape the table columns.
		Fields: []resourceField{
			{Name: "date_time", Label: "Fecha", Kind: fieldText},
			{Name: "user", Label: "Usuario", Kind: fieldText},
			{Name: "total_amount", Label: "Subtotal", Kind: fieldDecimal},
			{Name: "final_amount", Label: "Total", Kind: fieldDecimal},
			{Name: "status", Label: "Estado", Kind: fieldText},
		},
		Filters:  []string{"start_date", "end_date"},
		ReadOnly: true,
	},
}

// parseResourceBody converts the submitted form into the JSON body for the
// backend, typed per the schema. Empty optional fields are omitted so the
// backend applies its own defaults.
func parseResourceBody(r *http.Request, schema resourceSchema) (map[string]any, error) {
	body := make(map[string]any, len(schema.Fields))
	for _, f := range schema.Fields {
		raw := r.PostFormValue(f.Name)
		switch f.Kind {
		case fieldBool:
			// Checkboxes are absent when unchecked.
			body[f.Name] = raw == "on" || raw == "true"
		case fieldInt:
			if raw == "" {
				if f.Required {
					return nil, apperrors.ValidationField(f.Name, f.Label+" es requerido.")
				}
				continue
			}
			v, err := strconv.Atoi(raw)
			if err != nil {
				return nil, apperrors.ValidationField(f.Name, f.Label+" debe ser un número.")
			}
			body[f.Name] = v
		case fieldSelect:
			if raw == "" {
				continue
			}
			v, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return nil, apperrors.ValidationField(f.Name, f.Label+" no es válido.")
			}
			body[f.Name] = v
		default:
			if raw == "" {
				if f.Required {
					return nil, apperrors.ValidationField(f.Name, f.Label+" es requerido.")
				}
				continue
			}
			body[f.Name] = raw
		}
	}
	return body, nil
}
