package scheduler

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	gsheetsmocks "github.com/vfg2006/clinic-dashboard-api/infrastructure/integrator/gsheets/mocks"
	"github.com/vfg2006/clinic-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/clinic-dashboard-api/internal/config"
	"github.com/vfg2006/clinic-dashboard-api/internal/domain"
)

const testSpreadsheetLink = "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms/edit"

func newTestService(ctrl *gomock.Controller) (*SheetSyncService, *mocks.MockClinicRepository, *mocks.MockMonthlyMetricsRepository, *mocks.MockProcedureSaleRepository, *gsheetsmocks.MockClient) {
	clinicRepo := mocks.NewMockClinicRepository(ctrl)
	metricsRepo := mocks.NewMockMonthlyMetricsRepository(ctrl)
	procedureRepo := mocks.NewMockProcedureSaleRepository(ctrl)
	sheetsClient := gsheetsmocks.NewMockClient(ctrl)

	cfg := &config.Config{
		SheetSync: config.SheetSync{
			CronSchedule:        "0 3 * * *",
			RequestDelaySeconds: 0,
			DefaultYear:         2025,
		},
	}

	service := NewSheetSyncService(clinicRepo, metricsRepo, procedureRepo, sheetsClient, cfg)
	return service, clinicRepo, metricsRepo, procedureRepo, sheetsClient
}

func testClinic(id, name string, link *string) *domain.Clinic {
	return &domain.Clinic{
		ID:              id,
		Name:            name,
		SpreadsheetLink: link,
		Active:          true,
	}
}

func strPtr(s string) *string {
	return &s
}

func wideMetricsRows() [][]string {
	return [][]string{
		{"", "Março"},
		{"Leads Totais", "69"},
		{"Faturamento", "R$ 36.250,00"},
	}
}

func proceduresRows() [][]string {
	return [][]string{
		{"Outubro"},
		{"Procedimento", "Valor da Venda"},
		{"Harmonização Facial", "R$ 2.500,00"},
	}
}

func TestSyncAll_FalhaDeUmaClinicaNaoInterrompeOLote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, clinicRepo, metricsRepo, procedureRepo, sheetsClient := newTestService(ctrl)

	clinics := []*domain.Clinic{
		testClinic("cl-001", "Clínica A", strPtr(testSpreadsheetLink)),
		testClinic("cl-002", "Clínica B", nil),
		testClinic("cl-003", "Clínica C", strPtr(testSpreadsheetLink)),
	}

	clinicRepo.EXPECT().ListActiveClinics(gomock.Any()).Return(clinics, nil)

	// cl-001 sincroniza métricas e procedimentos
	sheetsClient.EXPECT().
		ListWorksheets(gomock.Any(), gomock.Any()).
		Return([]string{"Controle de Leads 2025", "Procedimentos"}, nil)
	sheetsClient.EXPECT().
		GetValues(gomock.Any(), gomock.Any(), "Controle de Leads 2025").
		Return(wideMetricsRows(), nil)
	sheetsClient.EXPECT().
		GetValues(gomock.Any(), gomock.Any(), "Procedimentos").
		Return(proceduresRows(), nil)
	metricsRepo.EXPECT().
		ReplaceForClinic(gomock.Any(), "cl-001", 2025, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ int, records []*domain.MonthlyMetrics) error {
			require.Len(t, records, 1)
			assert.Equal(t, "Março", records[0].Month)
			assert.Equal(t, 69, records[0].LeadsTotal)
			return nil
		})
	procedureRepo.EXPECT().
		ReplaceForClinic(gomock.Any(), "cl-001", 2025, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ int, sales []*domain.ProcedureSale) error {
			require.Len(t, sales, 1)
			assert.Equal(t, "Harmonização Facial", sales[0].Procedure)
			return nil
		})

	// cl-003 falha ao listar as abas
	sheetsClient.EXPECT().
		ListWorksheets(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("quota excedida"))

	report := service.SyncAll(context.Background())

	require.NotNil(t, report)
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, 1, report.Succeeded)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Outcomes, 3)

	assert.Equal(t, domain.SyncStatusSynced, report.Outcomes[0].Status)
	assert.Equal(t, 1, report.Outcomes[0].MonthsWritten)
	assert.Equal(t, 1, report.Outcomes[0].ProceduresWritten)

	assert.Equal(t, domain.SyncStatusSkippedNoSource, report.Outcomes[1].Status)
	assert.Equal(t, "clínica sem link de planilha cadastrado", report.Outcomes[1].Detail)

	assert.Equal(t, domain.SyncStatusFailed, report.Outcomes[2].Status)
	assert.Contains(t, report.Outcomes[2].Detail, "quota excedida")
}

func TestSyncAll_FalhaDeLeituraNaoApagaDadosExistentes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, clinicRepo, _, _, sheetsClient := newTestService(ctrl)

	clinicRepo.EXPECT().
		ListActiveClinics(gomock.Any()).
		Return([]*domain.Clinic{testClinic("cl-001", "Clínica A", strPtr(testSpreadsheetLink))}, nil)

	sheetsClient.EXPECT().
		ListWorksheets(gomock.Any(), gomock.Any()).
		Return([]string{"Controle de Leads"}, nil)
	sheetsClient.EXPECT().
		GetValues(gomock.Any(), gomock.Any(), "Controle de Leads").
		Return(nil, errors.New("timeout na API do Google"))

	// Nenhum EXPECT nos repositórios de escrita: qualquer chamada falha o
	// teste. A troca dos dados só pode acontecer com a leitura completa.
	report := service.SyncAll(context.Background())

	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, domain.SyncStatusFailed, report.Outcomes[0].Status)
}

func TestSyncAll_VarreduraEstruturalQuandoNomePadraoNaoExiste(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, clinicRepo, metricsRepo, _, sheetsClient := newTestService(ctrl)

	clinicRepo.EXPECT().
		ListActiveClinics(gomock.Any()).
		Return([]*domain.Clinic{testClinic("cl-001", "Clínica A", strPtr(testSpreadsheetLink))}, nil)

	sheetsClient.EXPECT().
		ListWorksheets(gomock.Any(), gomock.Any()).
		Return([]string{"Resumo", "Dados 2025"}, nil)
	sheetsClient.EXPECT().
		GetValues(gomock.Any(), gomock.Any(), "Resumo").
		Return([][]string{{"Anotações gerais da equipe"}}, nil)
	sheetsClient.EXPECT().
		GetValues(gomock.Any(), gomock.Any(), "Dados 2025").
		Return(wideMetricsRows(), nil)
	metricsRepo.EXPECT().
		ReplaceForClinic(gomock.Any(), "cl-001", 2025, gomock.Any()).
		Return(nil)

	report := service.SyncAll(context.Background())

	assert.Equal(t, 1, report.Succeeded)
	assert.Equal(t, domain.SyncStatusSynced, report.Outcomes[0].Status)
	assert.Zero(t, report.Outcomes[0].ProceduresWritten, "planilha sem aba de procedimentos sincroniza só as métricas")
}

func TestSyncAll_NenhumaAbaReconhecida(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, clinicRepo, _, _, sheetsClient := newTestService(ctrl)

	clinicRepo.EXPECT().
		ListActiveClinics(gomock.Any()).
		Return([]*domain.Clinic{testClinic("cl-001", "Clínica A", strPtr(testSpreadsheetLink))}, nil)

	sheetsClient.EXPECT().
		ListWorksheets(gomock.Any(), gomock.Any()).
		Return([]string{"Anotações"}, nil)
	sheetsClient.EXPECT().
		GetValues(gomock.Any(), gomock.Any(), "Anotações").
		Return([][]string{{"Reunião de segunda"}}, nil)

	// Nenhum formato reconhecido não é falha dura: os dados existentes ficam
	// intactos e o relatório carrega o aviso
	report := service.SyncAll(context.Background())

	assert.Equal(t, 1, report.Succeeded)
	assert.Zero(t, report.Failed)
	assert.Equal(t, domain.SyncStatusSynced, report.Outcomes[0].Status)
	assert.Equal(t, "nenhuma aba reconhecida na planilha", report.Outcomes[0].Detail)
	assert.Zero(t, report.Outcomes[0].MonthsWritten)
}

func TestSyncAll_LinkDePlanilhaInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, clinicRepo, _, _, _ := newTestService(ctrl)

	clinicRepo.EXPECT().
		ListActiveClinics(gomock.Any()).
		Return([]*domain.Clinic{testClinic("cl-001", "Clínica A", strPtr("planilha está com a recepção"))}, nil)

	report := service.SyncAll(context.Background())

	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, "link de planilha não reconhecido", report.Outcomes[0].Detail)
}

func TestSyncAll_ErroAoListarClinicas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, clinicRepo, _, _, _ := newTestService(ctrl)

	clinicRepo.EXPECT().
		ListActiveClinics(gomock.Any()).
		Return(nil, errors.New("conexão recusada"))

	report := service.SyncAll(context.Background())

	require.NotNil(t, report)
	assert.Empty(t, report.Outcomes)
	assert.Zero(t, report.Succeeded)
}

func TestGetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, _, _ := newTestService(ctrl)

	status := service.GetStatus()

	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, "0 3 * * *", status["sync_cron"])
	assert.NotContains(t, status, "last_report")
}
