package scheduler

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/clinic-dashboard-api/infrastructure/integrator/gsheets"
	"github.com/vfg2006/clinic-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/clinic-dashboard-api/internal/config"
	"github.com/vfg2006/clinic-dashboard-api/internal/domain"
	"github.com/vfg2006/clinic-dashboard-api/internal/sheetparse"
	"github.com/vfg2006/clinic-dashboard-api/pkg/utils"
)

// Nomes de aba usados como atalho antes da detecção estrutural
const (
	leadsTabName      = "Controle de Leads"
	proceduresTabName = "Procedimentos"
)

// SheetSyncConfig representa a configuração do agendador de sincronização de planilhas
type SheetSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	ClinicTimeout       time.Duration
	DefaultYear         int
	SyncEnabled         bool
}

// SheetSyncService gerencia o agendamento e execução da sincronização das
// planilhas das clínicas. Uma execução percorre todas as clínicas ativas;
// a falha de uma clínica nunca interrompe o lote.
type SheetSyncService struct {
	scheduler           *gocron.Scheduler
	config              SheetSyncConfig
	clinicRepo          repository.ClinicRepository
	metricsRepo         repository.MonthlyMetricsRepository
	procedureRepo       repository.ProcedureSaleRepository
	sheetsClient        gsheets.Client
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReport          *domain.SyncReport
}

// NewSheetSyncService cria uma nova instância do serviço de sincronização de planilhas
func NewSheetSyncService(
	clinicRepo repository.ClinicRepository,
	metricsRepo repository.MonthlyMetricsRepository,
	procedureRepo repository.ProcedureSaleRepository,
	sheetsClient gsheets.Client,
	appConfig *config.Config,
) *SheetSyncService {
	syncConfig := SheetSyncConfig{
		CronSchedule:        appConfig.SheetSync.CronSchedule,
		RequestDelaySeconds: appConfig.SheetSync.RequestDelaySeconds,
		ClinicTimeout:       time.Duration(appConfig.SheetSync.ClinicTimeoutSeconds) * time.Second,
		DefaultYear:         appConfig.SheetSync.DefaultYear,
		SyncEnabled:         appConfig.SheetSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"clinic_timeout":        syncConfig.ClinicTimeout.String(),
		"default_year":          syncConfig.DefaultYear,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização de planilhas carregada")

	return &SheetSyncService{
		scheduler:     scheduler,
		config:        syncConfig,
		clinicRepo:    clinicRepo,
		metricsRepo:   metricsRepo,
		procedureRepo: procedureRepo,
		sheetsClient:  sheetsClient,
		syncRunning:   false,
	}
}

// Start inicia o agendador
func (s *SheetSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de planilhas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de planilhas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllClinics()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de planilhas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de planilhas")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync inicia manualmente uma sincronização de planilhas
func (s *SheetSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de planilhas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de planilhas")
	go s.syncAllClinics()
}

// GetStatus retorna o status atual do agendador
func (s *SheetSyncService) GetStatus() map[string]any {
	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"sync_clinic_timeout":    s.config.ClinicTimeout.String(),
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}

	s.syncMutex.Lock()
	status["sync_running"] = s.syncRunning
	if s.lastReport != nil {
		status["last_report"] = s.lastReport
	}
	s.syncMutex.Unlock()

	return status
}

// syncAllClinics sincroniza as planilhas de todas as clínicas ativas
func (s *SheetSyncService) syncAllClinics() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de planilhas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	report := s.SyncAll(context.Background())

	s.syncMutex.Lock()
	s.lastReport = report
	s.syncMutex.Unlock()

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"run_id":    report.RunID,
		"duration":  duration.String(),
		"succeeded": report.Succeeded,
		"failed":    report.Failed,
		"skipped":   report.Skipped,
	}).Info("Sincronização de planilhas concluída")

	s.lastSyncCompletedAt = time.Now()
}

// SyncAll executa um lote completo e retorna o relatório. Exportado para o
// endpoint de disparo manual poder devolver o resultado ao operador.
func (s *SheetSyncService) SyncAll(ctx context.Context) *domain.SyncReport {
	runID, err := utils.GenerateID()
	if err != nil {
		runID = fmt.Sprintf("run-%d", time.Now().UnixNano())
	}

	report := &domain.SyncReport{
		RunID:     runID,
		StartedAt: time.Now(),
	}

	logrus.WithField("run_id", runID).Info("Iniciando sincronização de planilhas para todas as clínicas ativas")

	clinics, err := s.clinicRepo.ListActiveClinics(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de clínicas para sincronização de planilhas")
		report.FinishedAt = time.Now()
		return report
	}

	if len(clinics) == 0 {
		logrus.Info("Nenhuma clínica ativa encontrada para sincronização de planilhas")
		report.FinishedAt = time.Now()
		return report
	}

	year := s.referenceYear()

	for i, clinic := range clinics {
		if i > 0 && s.config.RequestDelaySeconds > 0 {
			// Pausa entre clínicas para não estourar a cota da API do Google
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}

		report.Add(s.syncClinic(ctx, clinic, year))
	}

	report.FinishedAt = time.Now()
	return report
}

// syncClinic sincroniza uma única clínica. Qualquer erro vira um outcome com
// status failed; os dados já persistidos da clínica permanecem intactos
// porque a troca só acontece depois de uma leitura completa bem-sucedida.
func (s *SheetSyncService) syncClinic(ctx context.Context, clinic *domain.Clinic, year int) *domain.ClinicSyncOutcome {
	outcome := &domain.ClinicSyncOutcome{
		ClinicID:   clinic.ID,
		ClinicName: clinic.Name,
	}

	if !clinic.HasSpreadsheet() {
		outcome.Status = domain.SyncStatusSkippedNoSource
		outcome.Detail = "clínica sem link de planilha cadastrado"
		return outcome
	}

	spreadsheetID := gsheets.ExtractSpreadsheetID(*clinic.SpreadsheetLink)
	if spreadsheetID == "" {
		outcome.Status = domain.SyncStatusSkippedNoSource
		outcome.Detail = "link de planilha não reconhecido"
		return outcome
	}

	clinicCtx := ctx
	if s.config.ClinicTimeout > 0 {
		var cancel context.CancelFunc
		clinicCtx, cancel = context.WithTimeout(ctx, s.config.ClinicTimeout)
		defer cancel()
	}

	logrus.WithFields(logrus.Fields{
		"clinic_id":      clinic.ID,
		"clinic_name":    clinic.Name,
		"spreadsheet_id": spreadsheetID,
	}).Info("Sincronizando planilha da clínica")

	titles, err := s.sheetsClient.ListWorksheets(clinicCtx, spreadsheetID)
	if err != nil {
		outcome.Status = domain.SyncStatusFailed
		outcome.Detail = fmt.Sprintf("erro ao listar abas: %v", err)
		return outcome
	}

	metricsRows, err := s.findMetricsRows(clinicCtx, spreadsheetID, titles)
	if err != nil {
		outcome.Status = domain.SyncStatusFailed
		outcome.Detail = fmt.Sprintf("erro ao ler aba de métricas: %v", err)
		return outcome
	}

	if metricsRows != nil {
		records := sheetparse.PivotWideTable(metricsRows, clinic.ID, year, false)

		// A troca só acontece com a leitura completa em mãos; uma leitura
		// vazia legítima zera os dados, uma leitura com erro nunca chega aqui
		if err := s.metricsRepo.ReplaceForClinic(clinicCtx, clinic.ID, year, records); err != nil {
			outcome.Status = domain.SyncStatusFailed
			outcome.Detail = fmt.Sprintf("erro ao persistir métricas: %v", err)
			return outcome
		}
		outcome.MonthsWritten = len(records)
	}

	proceduresWritten, proceduresFound, err := s.syncProcedures(clinicCtx, clinic, spreadsheetID, titles, year)
	if err != nil {
		outcome.Status = domain.SyncStatusFailed
		outcome.Detail = fmt.Sprintf("erro ao sincronizar procedimentos: %v", err)
		return outcome
	}
	outcome.ProceduresWritten = proceduresWritten

	outcome.Status = domain.SyncStatusSynced
	if metricsRows == nil && !proceduresFound {
		// Dados existentes ficam intactos; só registra o aviso no relatório
		outcome.Detail = "nenhuma aba reconhecida na planilha"
	}
	return outcome
}

// findMetricsRows localiza a aba de métricas. Primeiro tenta o nome padrão
// por substring; se nenhuma aba bater, cai para a varredura estrutural lendo
// aba por aba até encontrar o formato largo. Retorna nil quando nada serve.
func (s *SheetSyncService) findMetricsRows(ctx context.Context, spreadsheetID string, titles []string) ([][]string, error) {
	for _, title := range titles {
		if strings.Contains(title, leadsTabName) {
			rows, err := s.sheetsClient.GetValues(ctx, spreadsheetID, title)
			if err != nil {
				return nil, err
			}
			if sheetparse.Classify(rows) == sheetparse.ShapeWideMetrics {
				return rows, nil
			}
			// Nome padrão com conteúdo irreconhecível; segue para a varredura
			break
		}
	}

	for _, title := range titles {
		rows, err := s.sheetsClient.GetValues(ctx, spreadsheetID, title)
		if err != nil {
			return nil, err
		}
		if sheetparse.Classify(rows) == sheetparse.ShapeWideMetrics {
			logrus.WithFields(logrus.Fields{
				"spreadsheet_id": spreadsheetID,
				"worksheet":      title,
			}).Info("Aba de métricas encontrada por varredura estrutural")
			return rows, nil
		}
	}

	return nil, nil
}

// syncProcedures sincroniza a aba de procedimentos quando ela existe.
// A ausência da aba não é erro; nem toda clínica registra procedimentos.
func (s *SheetSyncService) syncProcedures(ctx context.Context, clinic *domain.Clinic, spreadsheetID string, titles []string, year int) (int, bool, error) {
	found := ""
	for _, title := range titles {
		if title == proceduresTabName {
			found = title
			break
		}
	}
	if found == "" {
		return 0, false, nil
	}

	rows, err := s.sheetsClient.GetValues(ctx, spreadsheetID, found)
	if err != nil {
		return 0, true, err
	}

	// Aba presente mas fora do formato esperado: não substitui nada
	if sheetparse.Classify(rows) != sheetparse.ShapeLongProcedures {
		logrus.WithFields(logrus.Fields{
			"clinic_id": clinic.ID,
			"worksheet": found,
		}).Warn("Aba de procedimentos presente mas com formato não reconhecido")
		return 0, false, nil
	}

	sales := sheetparse.ExtractProcedures(rows, clinic.ID, year)

	if err := s.procedureRepo.ReplaceForClinic(ctx, clinic.ID, year, sales); err != nil {
		return 0, true, err
	}

	return len(sales), true, nil
}

func (s *SheetSyncService) referenceYear() int {
	if s.config.DefaultYear > 0 {
		return s.config.DefaultYear
	}
	return time.Now().Year()
}
