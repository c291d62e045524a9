package httpx

import (
	"net/http"
	"strconv"

	apperrors "github.com/minegocio/pos-web/internal/errors"
)

// formInt64 reads a required integer form field.
func formInt64(r *http.Request, name string) (int64, error) {
	raw := r.PostFormValue(name)
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperrors.Validationf("Invalid value for %s.", name)
	}
	return v, nil
}

// formInt64List reads every value of a repeated integer form field, such as a
// checkbox group.
func formInt64List(r *http.Request, name string) ([]int64, error) {
	if err := r.ParseForm(); err != nil {
		return nil, apperrors.Validation("Invalid form submission.")
	}
	raws := r.PostForm[name]
	out := make([]int64, 0, len(raws))
	for _, raw := range raws {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, apperrors.Validationf("Invalid value for %s.", name)
		}
		out = append(out, v)
	}
	return out, nil
}

// pathInt64 reads an integer path segment.
func pathInt64(r *http.Request, name string) (int64, error) {
	v, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		return 0, apperrors.NotFoundf("Invalid %s.", name)
	}
	return v, nil
}
