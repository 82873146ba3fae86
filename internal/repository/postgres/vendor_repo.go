package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"eventmatch/internal/domain"
)

type vendorRepository struct {
	DB *sql.DB
}

// NewVendorRepository returns a domain.VendorRepository that writes each vendor kind to its own table.
func NewVendorRepository(db *sql.DB) domain.VendorRepository {
	return &vendorRepository{DB: db}
}

// Create inserts one row into the collection of v.Kind. Columns and their order come from
// the kind's schema, so table and column names never originate from request input.
func (r *vendorRepository) Create(ctx context.Context, v *domain.Vendor) error {
	schema, err := domain.SchemaFor(v.Kind)
	if err != nil {
		return err
	}
	columns := make([]string, 0, len(schema.Fields)+1)
	placeholders := make([]string, 0, len(schema.Fields)+1)
	args := make([]any, 0, len(schema.Fields)+1)
	for i, f := range schema.Fields {
		columns = append(columns, f.Name)
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
		args = append(args, v.Fields[f.Name])
	}
	columns = append(columns, "created_at")
	placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)+1))
	args = append(args, v.CreatedAt)

	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES (%s)
		RETURNING %s
	`, schema.Collection, strings.Join(columns, ", "), strings.Join(placeholders, ", "), schema.IDColumn)
	return r.DB.QueryRowContext(ctx, query, args...).Scan(&v.ID)
}
