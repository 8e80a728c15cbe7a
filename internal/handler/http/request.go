package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/hrsaas/timesheet-backend/internal/pkg/validator"
)

// decodeOptionalJSON decodes the body into dst and treats an empty body as {}.
func decodeOptionalJSON(r *http.Request, dst interface{}) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// idParam reads a uuid path parameter.
func idParam(r *http.Request, name string) (string, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", validator.ValidationErrors{}.Add(name, "must be a valid UUID")
	}
	return id.String(), nil
}
