package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"eventmatch/internal/delivery/http/helpers"
	"eventmatch/internal/domain"
)

// VendorFormResponse is the response envelope for POST /vendors/{kind}.
// form holds the kind's fields: blank after a success, as submitted after a failure.
type VendorFormResponse struct {
	Data  *domain.Vendor    `json:"data"`
	Error *helpers.APIError `json:"error"`
	Form  map[string]any    `json:"form"`
}

// VendorSchemaSuccessResponse is the success response envelope for GET /vendors/{kind}/schema (200).
type VendorSchemaSuccessResponse struct {
	Data  domain.VendorSchema `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

type VendorController struct {
	Logger  *slog.Logger
	Service domain.VendorService
}

func NewVendorController(logger *slog.Logger, svc domain.VendorService) *VendorController {
	return &VendorController{
		Logger:  logger,
		Service: svc,
	}
}

func (c *VendorController) schema(w http.ResponseWriter, r *http.Request) (domain.VendorSchema, bool) {
	schema, err := c.Service.Schema(domain.VendorKind(r.PathValue("kind")))
	if err != nil {
		if errors.Is(err, domain.ErrUnknownVendorKind) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "unknown vendor kind")
			return domain.VendorSchema{}, false
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, msgGenericFailure)
		return domain.VendorSchema{}, false
	}
	return schema, true
}

// Schema godoc
// @Summary Vendor form schema
// @Description Returns the ordered fields, input types and constraints of the registration form for venue, catering or tech.
// @Tags vendors
// @Produce json
// @Param kind path string true "Vendor kind" Enums(venue, catering, tech)
// @Success 200 {object} controllers.VendorSchemaSuccessResponse "data contains the schema"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /vendors/{kind}/schema [get]
func (c *VendorController) Schema(w http.ResponseWriter, r *http.Request) {
	schema, ok := c.schema(w, r)
	if !ok {
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, schema)
}

// Register godoc
// @Summary Register a vendor
// @Description Stores a venue, catering service or tech provider. The body is an object of the kind's schema fields.
// @Tags vendors
// @Accept json
// @Produce json
// @Param kind path string true "Vendor kind" Enums(venue, catering, tech)
// @Param vendor body object true "Field values keyed by schema field name"
// @Success 201 {object} controllers.VendorFormResponse "data contains the stored vendor; form is blank"
// @Failure 400 {object} controllers.VendorFormResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} controllers.VendorFormResponse "error.code: internal_error"
// @Router /vendors/{kind} [post]
func (c *VendorController) Register(w http.ResponseWriter, r *http.Request) {
	schema, ok := c.schema(w, r)
	if !ok {
		return
	}
	var form map[string]any
	if err := helpers.DecodeJSON(w, r, &form); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	if form == nil {
		form = map[string]any{}
	}
	fields, errs := schema.Normalize(form)
	if len(errs) > 0 {
		helpers.WriteFormError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, strings.Join(errs, "; "), form)
		return
	}

	vendor := domain.NewVendor(schema.Kind, fields, time.Now())
	if err := c.Service.Register(r.Context(), vendor); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "kind", schema.Kind, "err", err)
		helpers.WriteFormError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, msgGenericFailure, form)
		return
	}
	helpers.WriteFormSuccess(w, http.StatusCreated, vendor, schema.BlankForm())
}
