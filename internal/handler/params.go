package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"

	"github.com/Sahil-at-Work/TripSmart/internal/domain"
	"github.com/Sahil-at-Work/TripSmart/internal/middleware"
)

// pathUUID binds the named chi URL parameter as a UUID. On failure it writes
// a 400 and returns false.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", fmt.Sprintf("invalid %s: must be a UUID", name))
		return uuid.Nil, false
	}
	return id, true
}

// queryInt binds an optional integer query parameter. Absent parameters
// leave the result nil.
func queryInt(w http.ResponseWriter, r *http.Request, name string) (*int, bool) {
	var v *int
	if err := runtime.BindQueryParameter("form", true, false, name, r.URL.Query(), &v); err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", fmt.Sprintf("invalid %s: must be an integer", name))
		return nil, false
	}
	return v, true
}

// queryFloat binds an optional float query parameter.
func queryFloat(w http.ResponseWriter, r *http.Request, name string) (*float64, bool) {
	var v *float64
	if err := runtime.BindQueryParameter("form", true, false, name, r.URL.Query(), &v); err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", fmt.Sprintf("invalid %s: must be a number", name))
		return nil, false
	}
	return v, true
}

// decodeJSON reads a JSON request body into dst. Unknown fields are
// rejected. Oversize bodies get 413, anything else unreadable 422.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "payload_too_large",
				fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
			return false
		}
		requestError(w, "invalid request body: "+err.Error())
		return false
	}
	return true
}

// session returns the caller's session. Routes behind the authenticator
// always have one; a missing session is answered with 401.
func session(w http.ResponseWriter, r *http.Request) (domain.Session, bool) {
	sess, ok := middleware.SessionFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
	}
	return sess, ok
}
