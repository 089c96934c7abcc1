package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/hr-admin-go/internal/domain/user"
	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// decodeOptionalJSON decodes the request body into v; an empty body leaves v untouched.
func decodeOptionalJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// ownEmployeeID returns the employee record the caller acts as.
func ownEmployeeID(r *http.Request) (user.Principal, string, error) {
	principal, err := jwt.PrincipalFromContext(r.Context())
	if err != nil {
		return user.Principal{}, "", err
	}
	if !principal.HasEmployee() {
		return principal, "", user.ErrNoEmployeeProfile
	}
	return principal, *principal.EmployeeID, nil
}

func queryInt(r *http.Request, key string) int {
	if v := r.URL.Query().Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return 0
}

func queryString(r *http.Request, key string) *string {
	if v := r.URL.Query().Get(key); v != "" {
		return &v
	}
	return nil
}

// pathID reads the {id} URL parameter, reporting false when it is not a UUID.
func pathID(r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}
