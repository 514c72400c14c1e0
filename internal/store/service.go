package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/maitaibeauty/site/internal/model"
)

type ServiceStore struct {
	db *sql.DB
}

func NewServiceStore(db *sql.DB) *ServiceStore {
	return &ServiceStore{db: db}
}

func scanService(scanner interface{ Scan(...any) error }) (*model.Service, error) {
	var s model.Service
	var price sql.NullString
	var active int

	err := scanner.Scan(&s.ID, &s.Title, &s.Description, &s.Image, &s.Details, &price, &active)
	if err != nil {
		return nil, err
	}

	s.IsActive = active != 0
	if price.Valid {
		s.Price = &price.String
	}
	return &s, nil
}

const serviceCols = `id, title, description, image, details, price, is_active`

func (s *ServiceStore) Create(title, description, image, details string, price *string, isActive bool) (*model.Service, error) {
	var p sql.NullString
	if price != nil {
		p = sql.NullString{String: *price, Valid: true}
	}
	var active int
	if isActive {
		active = 1
	}

	result, err := s.db.Exec(
		`INSERT INTO services (title, description, image, details, price, is_active) VALUES (?, ?, ?, ?, ?, ?)`,
		title, description, image, details, p, active,
	)
	if err != nil {
		return nil, fmt.Errorf("insert service: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(id)
}

// GetByID returns the service regardless of its active state, so admins can
// still inspect soft-deleted records.
func (s *ServiceStore) GetByID(id int64) (*model.Service, error) {
	row := s.db.QueryRow(`SELECT `+serviceCols+` FROM services WHERE id = ?`, id)
	svc, err := scanService(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get service: %w", err)
	}
	return svc, nil
}

// ListActive returns all active services in insertion order.
func (s *ServiceStore) ListActive() ([]model.Service, error) {
	rows, err := s.db.Query(`SELECT ` + serviceCols + ` FROM services WHERE is_active = 1`)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	var services []model.Service
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		services = append(services, *svc)
	}
	return services, rows.Err()
}

// ServicePatch carries the fields of a partial update. Nil fields are left
// unchanged.
type ServicePatch struct {
	Title       *string
	Description *string
	Image       *string
	Details     *string
	Price       *string
}

// Update applies the patch and returns the updated service, or nil if no row
// matched the id.
func (s *ServiceStore) Update(id int64, patch ServicePatch) (*model.Service, error) {
	var sets []string
	var args []any
	add := func(col string, v *string) {
		if v != nil {
			sets = append(sets, col+" = ?")
			args = append(args, *v)
		}
	}
	add("title", patch.Title)
	add("description", patch.Description)
	add("image", patch.Image)
	add("details", patch.Details)
	add("price", patch.Price)

	if len(sets) > 0 {
		args = append(args, id)
		result, err := s.db.Exec(`UPDATE services SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
		if err != nil {
			return nil, fmt.Errorf("update service: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("rows affected: %w", err)
		}
		if affected == 0 {
			return nil, nil
		}
	}
	return s.GetByID(id)
}

// SoftDelete marks the service inactive and reports whether a row changed.
// The row itself is kept so the id stays resolvable.
func (s *ServiceStore) SoftDelete(id int64) (bool, error) {
	result, err := s.db.Exec(`UPDATE services SET is_active = 0 WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("soft delete service: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}
