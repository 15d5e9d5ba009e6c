package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/SillyFizy/grow/internal/domain"
)

// maxJSONBody bounds request bodies that carry no file.
const maxJSONBody = 1 << 20

// decodeJSON reads the request body into dst. Unknown fields are rejected.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	dec.DisallowUnknownFields()
	return decodeInto(dec, dst)
}

func decodeInto(dec *json.Decoder, dst any) error {
	if err := dec.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return domain.NewValidationError(typeErr.Field, "invalid type")
		}
		return fmt.Errorf("%w: invalid request body", domain.ErrValidation)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: request body must contain a single JSON object", domain.ErrValidation)
	}
	return nil
}

// pathID parses a positive integer path parameter.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(name, "must be a positive integer")
	}
	return id, nil
}

// queryInt parses an optional integer query parameter; absent means 0.
func queryInt(q url.Values, name string) (int, error) {
	v := q.Get(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer")
	}
	return n, nil
}

// queryID parses an optional positive id query parameter.
func queryID(q url.Values, name string) (*int64, error) {
	v := q.Get(name)
	if v == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		return nil, domain.NewValidationError(name, "must be a positive integer")
	}
	return &id, nil
}

type idsRequest struct {
	IDs []int64 `json:"ids"`
}

func (r idsRequest) validate() error {
	if len(r.IDs) == 0 {
		return domain.NewValidationError("ids", "must not be empty")
	}
	for _, id := range r.IDs {
		if id <= 0 {
			return domain.NewValidationError("ids", "must contain positive integers")
		}
	}
	return nil
}
