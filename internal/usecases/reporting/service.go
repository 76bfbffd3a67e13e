package reporting

import (
	"context"

	"github.com/pkg/errors"

	"github.com/vfg2006/clinic-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/clinic-dashboard-api/internal/domain"
)

// ErrClinicNotFound sinaliza clínica inexistente ou desativada
var ErrClinicNotFound = errors.New("clínica não encontrada")

// Reporter expõe as consultas do painel de uma clínica
type Reporter interface {
	MonthlyMetrics(ctx context.Context, clinicID string, year int) ([]*domain.MonthlyMetrics, error)
	DashboardKPIs(ctx context.Context, clinicID string, year int) (*domain.DashboardKPIs, error)
	ProcedureSales(ctx context.Context, clinicID string, year int) ([]*domain.ProcedureSale, error)
}

// Service implementa Reporter sobre os repositórios de dados sincronizados
type Service struct {
	clinicRepository    repository.ClinicRepository
	metricsRepository   repository.MonthlyMetricsRepository
	procedureRepository repository.ProcedureSaleRepository
}

// NewService cria uma nova instância do serviço de relatórios
func NewService(
	clinicRepo repository.ClinicRepository,
	metricsRepo repository.MonthlyMetricsRepository,
	procedureRepo repository.ProcedureSaleRepository,
) Reporter {
	return &Service{
		clinicRepository:    clinicRepo,
		metricsRepository:   metricsRepo,
		procedureRepository: procedureRepo,
	}
}

func (s *Service) MonthlyMetrics(ctx context.Context, clinicID string, year int) ([]*domain.MonthlyMetrics, error) {
	if err := s.ensureClinic(ctx, clinicID); err != nil {
		return nil, err
	}

	metrics, err := s.metricsRepository.ListByClinic(ctx, clinicID, year)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar métricas mensais")
	}

	return metrics, nil
}

func (s *Service) DashboardKPIs(ctx context.Context, clinicID string, year int) (*domain.DashboardKPIs, error) {
	metrics, err := s.MonthlyMetrics(ctx, clinicID, year)
	if err != nil {
		return nil, err
	}

	return Consolidate(metrics), nil
}

func (s *Service) ProcedureSales(ctx context.Context, clinicID string, year int) ([]*domain.ProcedureSale, error) {
	if err := s.ensureClinic(ctx, clinicID); err != nil {
		return nil, err
	}

	sales, err := s.procedureRepository.ListByClinic(ctx, clinicID, year)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar vendas de procedimentos")
	}

	return sales, nil
}

func (s *Service) ensureClinic(ctx context.Context, clinicID string) error {
	clinic, err := s.clinicRepository.GetClinicByID(ctx, clinicID)
	if err != nil {
		return errors.Wrap(err, "erro ao buscar clínica")
	}

	if clinic == nil {
		return ErrClinicNotFound
	}

	return nil
}
