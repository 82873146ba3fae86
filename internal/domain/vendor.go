package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// VendorKind identifies one of the vendor record collections.
type VendorKind string

const (
	VendorVenue    VendorKind = "venue"
	VendorCatering VendorKind = "catering"
	VendorTech     VendorKind = "tech"
)

// FieldType is the input type of a vendor form field.
type FieldType string

const (
	FieldText    FieldType = "text"
	FieldEmail   FieldType = "email"
	FieldTel     FieldType = "tel"
	FieldInteger FieldType = "integer"
	FieldDecimal FieldType = "decimal"
	FieldSelect  FieldType = "select"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// IsEmail reports whether s looks like an email address.
func IsEmail(s string) bool {
	return emailRegexp.MatchString(s)
}

// Column limits: integers are stored as INTEGER and money as NUMERIC(14, 2).
const (
	MaxStoredInt = math.MaxInt32
	MoneyScale   = 2
)

// MoneyLimit is the exclusive upper bound of a money value.
var MoneyLimit = decimal.New(1, 12)

// VendorField describes one column of a vendor collection and the constraints its form input enforces.
// Scale is the number of decimal places a decimal field accepts.
type VendorField struct {
	Name     string    `json:"name"`
	Label    string    `json:"label"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required"`
	Min      *int64    `json:"min,omitempty"`
	Max      *int64    `json:"max,omitempty"`
	Scale    int32     `json:"scale,omitempty"`
	Options  []string  `json:"options,omitempty"`
}

// VendorSchema is the form and storage layout for one vendor kind.
// swagger:model VendorSchema
type VendorSchema struct {
	Kind       VendorKind    `json:"kind"`
	Collection string        `json:"collection"`
	IDColumn   string        `json:"-"`
	Fields     []VendorField `json:"fields"`
}

func minOf(n int64) *int64 { return &n }

var maxStoredInt = int64(MaxStoredInt)

// CuisineTypes and EquipmentTypes are the select options of the catering and tech forms.
var (
	CuisineTypes   = []string{"American", "Italian", "Mexican", "Asian", "Mediterranean", "Indian", "Mixed", "Other"}
	EquipmentTypes = []string{"Audio", "Video", "Lighting", "Full AV", "Live Streaming", "DJ Equipment", "Other"}
)

var vendorSchemas = map[VendorKind]VendorSchema{
	VendorVenue: {
		Kind:       VendorVenue,
		Collection: "venues",
		IDColumn:   "venue_id",
		Fields: []VendorField{
			{Name: "venue_name", Label: "Venue Name", Type: FieldText, Required: true},
			{Name: "venue_capacity", Label: "Capacity", Type: FieldInteger, Required: true, Min: minOf(1), Max: &maxStoredInt},
			{Name: "venue_city", Label: "City", Type: FieldText, Required: true},
			{Name: "venue_address", Label: "Address", Type: FieldText, Required: true},
			{Name: "price_per_event", Label: "Price per Event", Type: FieldDecimal, Required: true, Min: minOf(0), Scale: MoneyScale},
			{Name: "contact_email", Label: "Contact Email", Type: FieldEmail, Required: true},
			{Name: "contact_phone", Label: "Contact Phone", Type: FieldTel},
		},
	},
	VendorCatering: {
		Kind:       VendorCatering,
		Collection: "catering",
		IDColumn:   "catering_id",
		Fields: []VendorField{
			{Name: "company_name", Label: "Company Name", Type: FieldText, Required: true},
			{Name: "service_capacity", Label: "Service Capacity", Type: FieldInteger, Required: true, Min: minOf(1), Max: &maxStoredInt},
			{Name: "service_city", Label: "Service City", Type: FieldText, Required: true},
			{Name: "price_per_person", Label: "Price per Person", Type: FieldDecimal, Required: true, Min: minOf(0), Scale: MoneyScale},
			{Name: "cuisine_type", Label: "Cuisine Type", Type: FieldSelect, Options: CuisineTypes},
			{Name: "contact_email", Label: "Contact Email", Type: FieldEmail, Required: true},
			{Name: "contact_phone", Label: "Contact Phone", Type: FieldTel},
		},
	},
	VendorTech: {
		Kind:       VendorTech,
		Collection: "tech_vendors",
		IDColumn:   "tech_vendor_id",
		Fields: []VendorField{
			{Name: "company_name", Label: "Company Name", Type: FieldText, Required: true},
			{Name: "equipment_type", Label: "Equipment Type", Type: FieldSelect, Required: true, Options: EquipmentTypes},
			{Name: "service_city", Label: "Service City", Type: FieldText, Required: true},
			{Name: "base_price", Label: "Base Price", Type: FieldDecimal, Required: true, Min: minOf(0), Scale: MoneyScale},
			{Name: "contact_email", Label: "Contact Email", Type: FieldEmail, Required: true},
			{Name: "contact_phone", Label: "Contact Phone", Type: FieldTel},
		},
	},
}

// SchemaFor returns the schema of kind or ErrUnknownVendorKind.
func SchemaFor(kind VendorKind) (VendorSchema, error) {
	s, ok := vendorSchemas[kind]
	if !ok {
		return VendorSchema{}, fmt.Errorf("%w: %q", ErrUnknownVendorKind, kind)
	}
	return s, nil
}

// BlankForm returns every field of the schema set to the empty string.
func (s VendorSchema) BlankForm() map[string]any {
	form := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		form[f.Name] = ""
	}
	return form
}

// ContactEmailField is present in every vendor schema.
const ContactEmailField = "contact_email"

// NameField returns the field holding the vendor's display name.
func (s VendorSchema) NameField() string {
	if s.Kind == VendorVenue {
		return "venue_name"
	}
	return "company_name"
}

// Normalize validates input against the schema and converts values to their storage types:
// string for text-like fields, int64 for integers, decimal.Decimal for decimals and nil for
// empty optional fields. Unknown keys are rejected. The returned messages are empty on success.
func (s VendorSchema) Normalize(input map[string]any) (map[string]any, []string) {
	var errs []string
	for key := range input {
		if !slices.ContainsFunc(s.Fields, func(f VendorField) bool { return f.Name == key }) {
			errs = append(errs, fmt.Sprintf("unknown field %q", key))
		}
	}
	slices.Sort(errs)

	out := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		raw := strings.TrimSpace(stringify(input[f.Name]))
		if raw == "" {
			if f.Required {
				errs = append(errs, f.Name+" is required")
			}
			out[f.Name] = nil
			continue
		}
		switch f.Type {
		case FieldInteger:
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				errs = append(errs, f.Name+" must be a whole number")
				continue
			}
			if f.Min != nil && n < *f.Min {
				errs = append(errs, fmt.Sprintf("%s must be at least %d", f.Name, *f.Min))
				continue
			}
			if f.Max != nil && n > *f.Max {
				errs = append(errs, fmt.Sprintf("%s must be at most %d", f.Name, *f.Max))
				continue
			}
			out[f.Name] = n
		case FieldDecimal:
			d, err := decimal.NewFromString(raw)
			if err != nil {
				errs = append(errs, f.Name+" must be a number")
				continue
			}
			if f.Min != nil && d.LessThan(decimal.NewFromInt(*f.Min)) {
				errs = append(errs, fmt.Sprintf("%s must be at least %d", f.Name, *f.Min))
				continue
			}
			if !d.Equal(d.Truncate(f.Scale)) {
				errs = append(errs, fmt.Sprintf("%s must have at most %d decimal places", f.Name, f.Scale))
				continue
			}
			if d.GreaterThanOrEqual(MoneyLimit) {
				errs = append(errs, f.Name+" is too large")
				continue
			}
			out[f.Name] = d
		case FieldEmail:
			if !IsEmail(raw) {
				errs = append(errs, "invalid "+f.Name+" format")
				continue
			}
			out[f.Name] = strings.ToLower(raw)
		case FieldSelect:
			if !slices.Contains(f.Options, raw) {
				errs = append(errs, fmt.Sprintf("%s must be one of: %s", f.Name, strings.Join(f.Options, ", ")))
				continue
			}
			out[f.Name] = raw
		default:
			out[f.Name] = raw
		}
	}
	return out, errs
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

// Vendor is a registered venue, catering service or tech provider.
// swagger:model Vendor
type Vendor struct {
	ID        string         `json:"id"`
	Kind      VendorKind     `json:"kind"`
	Fields    map[string]any `json:"fields"`
	CreatedAt time.Time      `json:"created_at"`
}

// NewVendor returns a vendor of kind with normalized field values. ID is set by the repository on create.
func NewVendor(kind VendorKind, fields map[string]any, createdAt time.Time) *Vendor {
	return &Vendor{Kind: kind, Fields: fields, CreatedAt: createdAt}
}

// VendorRepository defines the interface for vendor storage.
type VendorRepository interface {
	Create(ctx context.Context, v *Vendor) error
}

// VendorService defines vendor registration.
type VendorService interface {
	Schema(kind VendorKind) (VendorSchema, error)
	Register(ctx context.Context, v *Vendor) error
}
