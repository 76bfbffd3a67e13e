package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/vfg2006/clinic-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/clinic-dashboard-api/internal/domain"
)

const clinicsTable = "clinics c"

type ClinicRepository interface {
	GetClinicByID(ctx context.Context, clinicID string) (*domain.Clinic, error)
	ListActiveClinics(ctx context.Context) ([]*domain.Clinic, error)
}

type clinicRepository struct {
	conn *postgres.Connection
}

func NewClinicRepository(conn *postgres.Connection) ClinicRepository {
	return &clinicRepository{
		conn: conn,
	}
}

func (r *clinicRepository) GetClinicByID(ctx context.Context, clinicID string) (*domain.Clinic, error) {
	clinicSQL, clinicArgs, err := squirrel.
		Select("c.id, c.name, c.email, c.cnpj, c.phone, c.spreadsheet_link, c.active, c.is_admin, c.created_at, c.updated_at").
		From(clinicsTable).
		Where(squirrel.Eq{"c.id": clinicID}).
		Where("c.deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(ctx, clinicSQL, clinicArgs...)

	clinic, err := r.deserializeClinic(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return clinic, nil
}

// ListActiveClinics retorna as clínicas ativas na ordem de cadastro; é a
// lista que o orquestrador percorre a cada lote de sincronização
func (r *clinicRepository) ListActiveClinics(ctx context.Context) ([]*domain.Clinic, error) {
	clinicsSQL, clinicsArgs, err := squirrel.
		Select("c.id, c.name, c.email, c.cnpj, c.phone, c.spreadsheet_link, c.active, c.is_admin, c.created_at, c.updated_at").
		From(clinicsTable).
		Where(squirrel.Eq{"c.active": true}).
		Where("c.deleted_at IS NULL").
		OrderBy("c.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(ctx, clinicsSQL, clinicsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	clinics := make([]*domain.Clinic, 0)

	for rows.Next() {
		clinic := &domain.Clinic{}
		if err := rows.Scan(
			&clinic.ID,
			&clinic.Name,
			&clinic.Email,
			&clinic.CNPJ,
			&clinic.Phone,
			&clinic.SpreadsheetLink,
			&clinic.Active,
			&clinic.IsAdmin,
			&clinic.CreatedAt,
			&clinic.UpdatedAt,
		); err != nil {
			return nil, err
		}

		clinics = append(clinics, clinic)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return clinics, nil
}

func (r *clinicRepository) deserializeClinic(row *sql.Row) (*domain.Clinic, error) {
	clinic := &domain.Clinic{}

	if err := row.Scan(
		&clinic.ID,
		&clinic.Name,
		&clinic.Email,
		&clinic.CNPJ,
		&clinic.Phone,
		&clinic.SpreadsheetLink,
		&clinic.Active,
		&clinic.IsAdmin,
		&clinic.CreatedAt,
		&clinic.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return clinic, nil
}
