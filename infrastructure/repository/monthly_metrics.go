package repository

import (
	"context"
	"database/sql"
	"sort"
	"strings"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/vfg2006/clinic-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/clinic-dashboard-api/internal/domain"
)

const monthlyMetricsTable = "monthly_metrics"

// monthlyMetricsColumns na ordem usada por insert e select
var monthlyMetricsColumns = []string{
	"clinic_id",
	"month",
	"year",
	"leads_total",
	"leads_google_ads",
	"leads_meta_ads",
	"leads_instagram_organic",
	"leads_referral",
	"leads_unknown_origin",
	"consultations_scheduled_total",
	"consultations_scheduled_google_ads",
	"consultations_scheduled_meta_ads",
	"consultations_scheduled_ig_organic",
	"consultations_scheduled_referral",
	"consultations_scheduled_other",
	"consultations_attended",
	"closings_total",
	"closings_google_ads",
	"closings_meta_ads",
	"closings_ig_organic",
	"closings_referral",
	"closings_other",
	"revenue",
	"total_spend",
	"planned_budget_total",
	"realized_spend_facebook",
	"planned_spend_facebook",
	"realized_spend_google",
	"planned_spend_google",
	"conv_scheduled_over_leads",
	"conv_attended_over_scheduled",
	"conv_closings_over_attended",
	"conv_closings_over_leads",
	"cost_per_closing",
	"roas",
	"cost_per_lead",
	"cost_per_scheduled",
	"cost_per_attended",
	"average_ticket",
}

type MonthlyMetricsRepository interface {
	ReplaceForClinic(ctx context.Context, clinicID string, year int, records []*domain.MonthlyMetrics) error
	ListByClinic(ctx context.Context, clinicID string, year int) ([]*domain.MonthlyMetrics, error)
}

type monthlyMetricsRepository struct {
	conn *postgres.Connection
}

func NewMonthlyMetricsRepository(conn *postgres.Connection) MonthlyMetricsRepository {
	return &monthlyMetricsRepository{
		conn: conn,
	}
}

// ReplaceForClinic substitui todos os registros do par (clínica, ano) pelos
// recém-sincronizados, na mesma transação. O delete e o insert nunca são
// separados: uma falha no meio não pode deixar o painel da clínica vazio.
func (r *monthlyMetricsRepository) ReplaceForClinic(ctx context.Context, clinicID string, year int, records []*domain.MonthlyMetrics) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		deleteSQL, deleteArgs, err := squirrel.
			Delete(monthlyMetricsTable).
			Where(squirrel.Eq{"clinic_id": clinicID, "year": year}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, deleteSQL, deleteArgs...); err != nil {
			return err
		}

		if len(records) == 0 {
			return nil
		}

		insertBuilder := squirrel.
			Insert(monthlyMetricsTable).
			Columns(monthlyMetricsColumns...).
			PlaceholderFormat(squirrel.Dollar)

		for _, m := range records {
			insertBuilder = insertBuilder.Values(
				m.ClinicID,
				m.Month,
				m.Year,
				m.LeadsTotal,
				m.LeadsGoogleAds,
				m.LeadsMetaAds,
				m.LeadsInstagramOrganic,
				m.LeadsReferral,
				m.LeadsUnknownOrigin,
				m.ConsultationsScheduledTotal,
				m.ConsultationsScheduledGoogleAds,
				m.ConsultationsScheduledMetaAds,
				m.ConsultationsScheduledIGOrganic,
				m.ConsultationsScheduledReferral,
				m.ConsultationsScheduledOther,
				m.ConsultationsAttended,
				m.ClosingsTotal,
				m.ClosingsGoogleAds,
				m.ClosingsMetaAds,
				m.ClosingsIGOrganic,
				m.ClosingsReferral,
				m.ClosingsOther,
				m.Revenue,
				m.TotalSpend,
				m.PlannedBudgetTotal,
				m.RealizedSpendFacebook,
				m.PlannedSpendFacebook,
				m.RealizedSpendGoogle,
				m.PlannedSpendGoogle,
				m.ConvScheduledOverLeads,
				m.ConvAttendedOverScheduled,
				m.ConvClosingsOverAttended,
				m.ConvClosingsOverLeads,
				m.CostPerClosing,
				m.ROAS,
				m.CostPerLead,
				m.CostPerScheduled,
				m.CostPerAttended,
				m.AverageTicket,
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

func (r *monthlyMetricsRepository) ListByClinic(ctx context.Context, clinicID string, year int) ([]*domain.MonthlyMetrics, error) {
	queryBuilder := squirrel.
		Select("id," + strings.Join(monthlyMetricsColumns, ",") + ",created_at,updated_at").
		From(monthlyMetricsTable).
		Where(squirrel.Eq{"clinic_id": clinicID}).
		PlaceholderFormat(squirrel.Dollar)

	if year > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"year": year})
	}

	metricsSQL, metricsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(ctx, metricsSQL, metricsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	metrics := make([]*domain.MonthlyMetrics, 0)

	for rows.Next() {
		m := &domain.MonthlyMetrics{}
		if err := rows.Scan(
			&m.ID,
			&m.ClinicID,
			&m.Month,
			&m.Year,
			&m.LeadsTotal,
			&m.LeadsGoogleAds,
			&m.LeadsMetaAds,
			&m.LeadsInstagramOrganic,
			&m.LeadsReferral,
			&m.LeadsUnknownOrigin,
			&m.ConsultationsScheduledTotal,
			&m.ConsultationsScheduledGoogleAds,
			&m.ConsultationsScheduledMetaAds,
			&m.ConsultationsScheduledIGOrganic,
			&m.ConsultationsScheduledReferral,
			&m.ConsultationsScheduledOther,
			&m.ConsultationsAttended,
			&m.ClosingsTotal,
			&m.ClosingsGoogleAds,
			&m.ClosingsMetaAds,
			&m.ClosingsIGOrganic,
			&m.ClosingsReferral,
			&m.ClosingsOther,
			&m.Revenue,
			&m.TotalSpend,
			&m.PlannedBudgetTotal,
			&m.RealizedSpendFacebook,
			&m.PlannedSpendFacebook,
			&m.RealizedSpendGoogle,
			&m.PlannedSpendGoogle,
			&m.ConvScheduledOverLeads,
			&m.ConvAttendedOverScheduled,
			&m.ConvClosingsOverAttended,
			&m.ConvClosingsOverLeads,
			&m.CostPerClosing,
			&m.ROAS,
			&m.CostPerLead,
			&m.CostPerScheduled,
			&m.CostPerAttended,
			&m.AverageTicket,
			&m.CreatedAt,
			&m.UpdatedAt,
		); err != nil {
			return nil, err
		}

		metrics = append(metrics, m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Ordena por ano e ordinal do mês; o nome do mês não ordena sozinho
	sort.SliceStable(metrics, func(i, j int) bool {
		if metrics[i].Year != metrics[j].Year {
			return metrics[i].Year < metrics[j].Year
		}
		mi, _ := domain.MonthNumber(metrics[i].Month)
		mj, _ := domain.MonthNumber(metrics[j].Month)
		return mi < mj
	})

	return metrics, nil
}
