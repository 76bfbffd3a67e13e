package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/vfg2006/clinic-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/clinic-dashboard-api/internal/domain"
)

const procedureSalesTable = "procedure_sales"

var procedureSalesColumns = []string{
	"clinic_id",
	"procedure",
	"category",
	"quantity",
	"payment_method",
	"sale_value",
	"installment_value",
	"first_contact_at",
	"attended_at",
	"closed_at",
	"reference_month",
	"reference_year",
}

type ProcedureSaleRepository interface {
	ReplaceForClinic(ctx context.Context, clinicID string, year int, sales []*domain.ProcedureSale) error
	ListByClinic(ctx context.Context, clinicID string, year int) ([]*domain.ProcedureSale, error)
}

type procedureSaleRepository struct {
	conn *postgres.Connection
}

func NewProcedureSaleRepository(conn *postgres.Connection) ProcedureSaleRepository {
	return &procedureSaleRepository{
		conn: conn,
	}
}

// ReplaceForClinic troca todas as vendas do par (clínica, ano) pelas da
// última leitura da planilha, em uma única transação
func (r *procedureSaleRepository) ReplaceForClinic(ctx context.Context, clinicID string, year int, sales []*domain.ProcedureSale) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		deleteSQL, deleteArgs, err := squirrel.
			Delete(procedureSalesTable).
			Where(squirrel.Eq{"clinic_id": clinicID, "reference_year": year}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, deleteSQL, deleteArgs...); err != nil {
			return err
		}

		if len(sales) == 0 {
			return nil
		}

		insertBuilder := squirrel.
			Insert(procedureSalesTable).
			Columns(procedureSalesColumns...).
			PlaceholderFormat(squirrel.Dollar)

		for _, s := range sales {
			insertBuilder = insertBuilder.Values(
				s.ClinicID,
				s.Procedure,
				s.Category,
				s.Quantity,
				s.PaymentMethod,
				s.SaleValue,
				s.InstallmentValue,
				s.FirstContactAt,
				s.AttendedAt,
				s.ClosedAt,
				s.ReferenceMonth,
				s.ReferenceYear,
			)
		}

		insertSQL, insertArgs, err := insertBuilder.ToSql()
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, insertSQL, insertArgs...)
		return err
	})
}

func (r *procedureSaleRepository) ListByClinic(ctx context.Context, clinicID string, year int) ([]*domain.ProcedureSale, error) {
	queryBuilder := squirrel.
		Select("id," + strings.Join(procedureSalesColumns, ",") + ",created_at,updated_at").
		From(procedureSalesTable).
		Where(squirrel.Eq{"clinic_id": clinicID}).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if year > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"reference_year": year})
	}

	salesSQL, salesArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(ctx, salesSQL, salesArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	sales := make([]*domain.ProcedureSale, 0)

	for rows.Next() {
		s := &domain.ProcedureSale{}
		if err := rows.Scan(
			&s.ID,
			&s.ClinicID,
			&s.Procedure,
			&s.Category,
			&s.Quantity,
			&s.PaymentMethod,
			&s.SaleValue,
			&s.InstallmentValue,
			&s.FirstContactAt,
			&s.AttendedAt,
			&s.ClosedAt,
			&s.ReferenceMonth,
			&s.ReferenceYear,
			&s.CreatedAt,
			&s.UpdatedAt,
		); err != nil {
			return nil, err
		}

		sales = append(sales, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sales, nil
}
