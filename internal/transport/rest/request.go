package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/heartmarshall/taskflow-backend/internal/domain"
)

const maxBodyBytes = 1 << 20

var requestValidator = newRequestValidator()

func newRequestValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeJSON reads a size-limited JSON body into dst and validates it.
// Malformed bodies and failed constraints come back as *domain.ValidationError.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return domain.NewValidationError("body", fmt.Sprintf("must not exceed %d bytes", maxErr.Limit))
		}
		return domain.NewValidationError("body", "malformed JSON: "+err.Error())
	}

	if err := requestValidator.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validate request: %w", err)
		}
		fields := make([]domain.FieldError, len(verrs))
		for i, fe := range verrs {
			fields[i] = domain.FieldError{Field: fe.Field(), Message: describeConstraint(fe)}
		}
		return domain.NewValidationErrors(fields)
	}
	return nil
}

func describeConstraint(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "max":
		if fe.Kind() == reflect.Slice {
			return "at most " + fe.Param() + " items"
		}
		return "at most " + fe.Param() + " characters"
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "failed " + fe.Tag()
	}
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a UUID")
	}
	return id, nil
}

// Pagination holds the page size bounds applied to list endpoints.
type Pagination struct {
	DefaultPerPage int
	MaxPerPage     int
}

// parse reads page and per_page from the query string. page defaults to 1;
// per_page defaults to DefaultPerPage and is clamped to MaxPerPage.
func (p Pagination) parse(r *http.Request) (page, perPage int, err error) {
	q := r.URL.Query()

	page = 1
	if v := q.Get("page"); v != "" {
		page, err = strconv.Atoi(v)
		if err != nil || page < 1 {
			return 0, 0, domain.NewValidationError("page", "must be a positive integer")
		}
	}

	perPage = p.DefaultPerPage
	if v := q.Get("per_page"); v != "" {
		perPage, err = strconv.Atoi(v)
		if err != nil || perPage < 1 {
			return 0, 0, domain.NewValidationError("per_page", "must be a positive integer")
		}
	}
	if p.MaxPerPage > 0 && perPage > p.MaxPerPage {
		perPage = p.MaxPerPage
	}
	return page, perPage, nil
}

// nullable distinguishes an absent JSON field from an explicit null.
type nullable[T any] struct {
	Set   bool
	Value *T
}

func (n *nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

// cleared reports whether the field was sent as an explicit null.
func (n nullable[T]) cleared() bool { return n.Set && n.Value == nil }
