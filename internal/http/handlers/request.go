package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/yungbote/routinely-backend/internal/data/repos/crud"
	"github.com/yungbote/routinely-backend/internal/domain/calendar"
	"github.com/yungbote/routinely-backend/internal/http/response"
	pkgerrors "github.com/yungbote/routinely-backend/internal/pkg/errors"
)

var registerOnce sync.Once

// RegisterValidation makes binding errors report JSON field names.
func RegisterValidation() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
	})
}

// bindJSON decodes and validates the body into dst. With allowEmpty an
// absent body leaves dst at its zero value.
func bindJSON(c *gin.Context, dst any, allowEmpty bool) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}
	if allowEmpty && errors.Is(err, io.EOF) {
		return true
	}
	response.RespondAPIError(c, bindingError(err))
	return false
}

func bindingError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fieldPath(fe)] = describe(fe)
		}
		return &pkgerrors.ValidationError{Fields: fields}
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return pkgerrors.Invalid(typeErr.Field, fmt.Sprintf("must be a %s", typeErr.Type.String()))
	}
	if errors.Is(err, io.EOF) {
		return pkgerrors.Invalid("body", "request body is required")
	}
	return pkgerrors.Invalid("body", err.Error())
}

// fieldPath drops the top-level struct name from the validator namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "email":
		return "value is not a valid email address"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min":
		return "must be greater than or equal to " + fe.Param()
	case "max":
		return "must be less than or equal to " + fe.Param()
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param(name)))
	if err != nil {
		response.RespondAPIError(c, pkgerrors.Invalid(name, "must be a valid UUID"))
		return uuid.Nil, false
	}
	return id, true
}

func dateParam(c *gin.Context, name string) (calendar.Date, bool) {
	d, err := calendar.Parse(c.Param(name))
	if err != nil {
		response.RespondAPIError(c, pkgerrors.Invalid(name, "must be an ISO date (YYYY-MM-DD)"))
		return calendar.Date{}, false
	}
	return d, true
}

// pageQuery reads ?skip=&limit=, defaulting to 0 and crud.DefaultLimit.
func pageQuery(c *gin.Context) (crud.Page, bool) {
	page := crud.Page{Skip: 0, Limit: crud.DefaultLimit}
	if raw := strings.TrimSpace(c.Query("skip")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			response.RespondAPIError(c, pkgerrors.Invalid("skip", "must be an integer greater than or equal to 0"))
			return crud.Page{}, false
		}
		page.Skip = n
	}
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > crud.MaxLimit {
			response.RespondAPIError(c, pkgerrors.Invalid("limit", fmt.Sprintf("must be an integer between 1 and %d", crud.MaxLimit)))
			return crud.Page{}, false
		}
		page.Limit = n
	}
	return page, true
}
