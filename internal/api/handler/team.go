package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/team"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// AddTeamMember cadastra um novo membro da equipe
func AddTeamMember(service team.Roster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - AddTeamMember")

		var request domain.CreateTeamMemberRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.WithError(err).Warn("Corpo da requisição inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid JSON body", nil)
			return
		}

		id, err := service.AddMember(request)
		if err != nil {
			var validationErr *team.ValidationError
			if errors.As(err, &validationErr) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, validationErr.Error(), map[string]string{
					"field": validationErr.Field,
				})
				return
			}

			logger.WithError(err).Error("Erro ao adicionar membro da equipe")
			apiErrors.WriteError(w, apiErrors.ErrDataFileOperation, err.Error(), nil)
			return
		}

		writeJSON(w, http.StatusCreated, messageResponse{
			Message: "User successfully added",
			ID:      &id,
		})
	}
}

// DeleteTeamMember remove um membro da equipe pelo ID
func DeleteTeamMember(service team.Roster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		// ID não numérico não casa com a rota, como qualquer caminho desconhecido
		id, err := strconv.Atoi(httprouter.ParamsFromContext(r.Context()).ByName("id"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Route not found", nil)
			return
		}

		if err := service.DeleteMember(id); err != nil {
			var notFound *team.NotFoundError
			if errors.As(err, &notFound) {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, notFound.Error(), nil)
				return
			}

			logger.WithError(err).WithField("member_id", id).Error("Erro ao remover membro da equipe")
			apiErrors.WriteError(w, apiErrors.ErrDataFileOperation, err.Error(), nil)
			return
		}

		writeJSON(w, http.StatusOK, messageResponse{
			Message: fmt.Sprintf("User with ID %d successfully deleted", id),
		})
	}
}
