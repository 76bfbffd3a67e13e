package middleware

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/clinic-dashboard-api/internal/domain"
	"github.com/vfg2006/clinic-dashboard-api/pkg/apiErrors"
)

// AdminOnly permite acesso apenas para contas administradoras
func AdminOnly() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := r.Context().Value(ContextKeyClaims).(*domain.Claims)
			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if !claims.IsAdmin {
				logrus.Warningf("Acesso negado para clínica ID=%s", claims.ClinicID)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ClinicScope restringe a rota à própria clínica do token. Administradores
// enxergam qualquer clínica; os demais só o parâmetro :id igual ao do token.
func ClinicScope() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := r.Context().Value(ContextKeyClaims).(*domain.Claims)
			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			clinicID := httprouter.ParamsFromContext(r.Context()).ByName("id")
			if !claims.IsAdmin && claims.ClinicID != clinicID {
				logrus.Warningf("Acesso negado: clínica ID=%s tentou acessar ID=%s", claims.ClinicID, clinicID)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar dados de outra clínica", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
