package reporting

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/clinic-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/clinic-dashboard-api/internal/domain"
)

func newTestReporter(ctrl *gomock.Controller) (Reporter, *mocks.MockClinicRepository, *mocks.MockMonthlyMetricsRepository, *mocks.MockProcedureSaleRepository) {
	clinicRepo := mocks.NewMockClinicRepository(ctrl)
	metricsRepo := mocks.NewMockMonthlyMetricsRepository(ctrl)
	procedureRepo := mocks.NewMockProcedureSaleRepository(ctrl)

	return NewService(clinicRepo, metricsRepo, procedureRepo), clinicRepo, metricsRepo, procedureRepo
}

func TestMonthlyMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, clinicRepo, metricsRepo, _ := newTestReporter(ctrl)

	clinicRepo.EXPECT().
		GetClinicByID(gomock.Any(), "cl-001").
		Return(&domain.Clinic{ID: "cl-001", Name: "Clínica A"}, nil)
	metricsRepo.EXPECT().
		ListByClinic(gomock.Any(), "cl-001", 2025).
		Return([]*domain.MonthlyMetrics{{Month: "Março", LeadsTotal: 69}}, nil)

	metrics, err := service.MonthlyMetrics(context.Background(), "cl-001", 2025)
	require.NoError(t, err)
	require.Len(t, metrics, 1)
	assert.Equal(t, "Março", metrics[0].Month)
}

func TestMonthlyMetrics_ClinicaInexistente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, clinicRepo, _, _ := newTestReporter(ctrl)

	clinicRepo.EXPECT().
		GetClinicByID(gomock.Any(), "cl-999").
		Return(nil, nil)

	metrics, err := service.MonthlyMetrics(context.Background(), "cl-999", 2025)
	assert.Nil(t, metrics)
	assert.ErrorIs(t, err, ErrClinicNotFound)
}

func TestDashboardKPIs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, clinicRepo, metricsRepo, _ := newTestReporter(ctrl)

	clinicRepo.EXPECT().
		GetClinicByID(gomock.Any(), "cl-001").
		Return(&domain.Clinic{ID: "cl-001"}, nil)
	metricsRepo.EXPECT().
		ListByClinic(gomock.Any(), "cl-001", 0).
		Return([]*domain.MonthlyMetrics{
			{Month: "Janeiro", LeadsTotal: 100, ConsultationsScheduledTotal: 40, Revenue: 50000, TotalSpend: 5000},
			{Month: "Fevereiro", LeadsTotal: 100, ConsultationsScheduledTotal: 20, Revenue: 30000, TotalSpend: 3000},
		}, nil)

	kpis, err := service.DashboardKPIs(context.Background(), "cl-001", 0)
	require.NoError(t, err)
	assert.Equal(t, 200, kpis.TotalLeads)
	assert.InDelta(t, 30.00, kpis.ConvScheduledOverLeads, 0.001)
	assert.InDelta(t, 10.00, kpis.ROAS, 0.001)
}

func TestProcedureSales_ErroDoRepositorio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, clinicRepo, _, procedureRepo := newTestReporter(ctrl)

	clinicRepo.EXPECT().
		GetClinicByID(gomock.Any(), "cl-001").
		Return(&domain.Clinic{ID: "cl-001"}, nil)
	procedureRepo.EXPECT().
		ListByClinic(gomock.Any(), "cl-001", 2025).
		Return(nil, errors.New("conexão recusada"))

	sales, err := service.ProcedureSales(context.Background(), "cl-001", 2025)
	assert.Nil(t, sales)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "erro ao buscar vendas de procedimentos")
}
