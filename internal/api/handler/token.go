package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/clinic-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/clinic-dashboard-api/internal/usecases/authorizing"
	"github.com/vfg2006/clinic-dashboard-api/pkg/apiErrors"
)

type TokenResponse struct {
	Token string `json:"token"`
}

// IssueClinicToken emite um token de acesso para a clínica informada. Rota
// restrita a administradores; é como o operador provisiona o acesso de uma
// clínica nova ao painel.
func IssueClinicToken(authorizer authorizing.Authorizer, clinicRepo repository.ClinicRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - IssueClinicToken")

		clinicID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if clinicID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da clínica não fornecido", nil)
			return
		}

		clinic, err := clinicRepo.GetClinicByID(r.Context(), clinicID)
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar clínica para emissão de token")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar clínica", nil)
			return
		}
		if clinic == nil {
			apiErrors.WriteError(w, apiErrors.ErrClinicNotFound, "Clínica não encontrada", nil)
			return
		}

		token, err := authorizer.GenerateToken(clinic)
		if err != nil {
			logrus.WithError(err).Error("Erro ao gerar token de acesso da clínica")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar token", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(TokenResponse{Token: token})
	})
}
