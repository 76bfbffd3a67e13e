package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"github.com/vfg2006/clinic-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/clinic-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/clinic-dashboard-api/pkg/log"
)

// GetClinicMetrics retorna os registros mensais sincronizados de uma clínica
func GetClinicMetrics(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		clinicID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		year, ok := parseYearParam(w, r)
		if !ok {
			return
		}

		logger.WithFields(log.Fields{
			"clinic_id": clinicID,
			"year":      year,
		}).Info("clinic-metrics: buscando métricas mensais")

		metrics, err := service.MonthlyMetrics(r.Context(), clinicID, year)
		if err != nil {
			writeReportingError(w, logger, err, "clinic-metrics")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(metrics); err != nil {
			logger.WithError(err).Error("clinic-metrics: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetClinicKPIs retorna os indicadores consolidados do período
func GetClinicKPIs(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		clinicID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		year, ok := parseYearParam(w, r)
		if !ok {
			return
		}

		logger.WithFields(log.Fields{
			"clinic_id": clinicID,
			"year":      year,
		}).Info("clinic-kpis: consolidando indicadores do período")

		kpis, err := service.DashboardKPIs(r.Context(), clinicID, year)
		if err != nil {
			writeReportingError(w, logger, err, "clinic-kpis")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(kpis); err != nil {
			logger.WithError(err).Error("clinic-kpis: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetClinicProcedures retorna as vendas de procedimentos sincronizadas
func GetClinicProcedures(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		clinicID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		year, ok := parseYearParam(w, r)
		if !ok {
			return
		}

		logger.WithFields(log.Fields{
			"clinic_id": clinicID,
			"year":      year,
		}).Info("clinic-procedures: buscando vendas de procedimentos")

		sales, err := service.ProcedureSales(r.Context(), clinicID, year)
		if err != nil {
			writeReportingError(w, logger, err, "clinic-procedures")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(sales); err != nil {
			logger.WithError(err).Error("clinic-procedures: erro ao codificar resposta")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// parseYearParam lê o parâmetro de consulta year; ausente significa todos os
// anos (zero). Escreve o erro na resposta e retorna ok=false quando inválido.
func parseYearParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return 0, true
	}

	year, err := strconv.Atoi(raw)
	if err != nil || year < 2000 || year > 2100 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Ano inválido. Use formato de quatro dígitos (ex: 2025)", nil)
		return 0, false
	}

	return year, true
}

func writeReportingError(w http.ResponseWriter, logger log.Logger, err error, operation string) {
	if errors.Is(err, reporting.ErrClinicNotFound) {
		apiErrors.WriteError(w, apiErrors.ErrClinicNotFound, "Clínica não encontrada", nil)
		return
	}

	logger.WithError(err).Errorf("%s: erro ao consultar dados", operation)
	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar dados da clínica", nil)
}
