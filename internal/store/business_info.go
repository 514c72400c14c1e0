package store

import (
	"database/sql"
	"fmt"

	"github.com/maitaibeauty/site/internal/model"
)

type BusinessInfoStore struct {
	db *sql.DB
}

func NewBusinessInfoStore(db *sql.DB) *BusinessInfoStore {
	return &BusinessInfoStore{db: db}
}

func scanBusinessInfo(scanner interface{ Scan(...any) error }) (*model.BusinessInfo, error) {
	var b model.BusinessInfo
	err := scanner.Scan(
		&b.ID, &b.MondayHours, &b.TuesdayHours, &b.WednesdayHours, &b.ThursdayHours,
		&b.FridayHours, &b.SaturdayHours, &b.SundayHours, &b.Phone, &b.Email, &b.Address,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

const businessInfoCols = `id, monday_hours, tuesday_hours, wednesday_hours, thursday_hours,
	friday_hours, saturday_hours, sunday_hours, phone, email, address`

// Get returns the business-info record, or nil if none has been created yet.
func (s *BusinessInfoStore) Get() (*model.BusinessInfo, error) {
	row := s.db.QueryRow(`SELECT ` + businessInfoCols + ` FROM business_info LIMIT 1`)
	info, err := scanBusinessInfo(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get business info: %w", err)
	}
	return info, nil
}

// BusinessInfoFields is the full set of updatable business-info columns.
type BusinessInfoFields struct {
	MondayHours    string
	TuesdayHours   string
	WednesdayHours string
	ThursdayHours  string
	FridayHours    string
	SaturdayHours  string
	SundayHours    string
	Phone          string
	Email          string
	Address        string
}

// Upsert updates the existing record in place, or inserts one if the table is
// empty. The check and the write run in one transaction so two concurrent
// upserts cannot both insert.
func (s *BusinessInfoStore) Upsert(f BusinessInfoFields) (*model.BusinessInfo, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin upsert: %w", err)
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRow(`SELECT id FROM business_info LIMIT 1`).Scan(&id)
	switch {
	case err == sql.ErrNoRows:
		result, err := tx.Exec(
			`INSERT INTO business_info (monday_hours, tuesday_hours, wednesday_hours, thursday_hours,
			 friday_hours, saturday_hours, sunday_hours, phone, email, address)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			f.MondayHours, f.TuesdayHours, f.WednesdayHours, f.ThursdayHours,
			f.FridayHours, f.SaturdayHours, f.SundayHours, f.Phone, f.Email, f.Address,
		)
		if err != nil {
			return nil, fmt.Errorf("insert business info: %w", err)
		}
		id, err = result.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("last insert id: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("find business info: %w", err)
	default:
		_, err = tx.Exec(
			`UPDATE business_info SET monday_hours = ?, tuesday_hours = ?, wednesday_hours = ?,
			 thursday_hours = ?, friday_hours = ?, saturday_hours = ?, sunday_hours = ?,
			 phone = ?, email = ?, address = ? WHERE id = ?`,
			f.MondayHours, f.TuesdayHours, f.WednesdayHours, f.ThursdayHours,
			f.FridayHours, f.SaturdayHours, f.SundayHours, f.Phone, f.Email, f.Address, id,
		)
		if err != nil {
			return nil, fmt.Errorf("update business info: %w", err)
		}
	}

	row := tx.QueryRow(`SELECT `+businessInfoCols+` FROM business_info WHERE id = ?`, id)
	info, err := scanBusinessInfo(row)
	if err != nil {
		return nil, fmt.Errorf("reload business info: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit upsert: %w", err)
	}
	return info, nil
}
