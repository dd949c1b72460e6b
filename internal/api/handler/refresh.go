package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
)

// RunRefresh dispara manualmente um ciclo de atualização do cache
func RunRefresh(service scheduler.RefreshController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunRefresh")

		if !service.TriggerManualSync() {
			writeJSON(w, http.StatusConflict, map[string]any{
				"message": "Atualização já está em andamento",
				"started": false,
			})
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Atualização do dashboard iniciada com sucesso",
			"started": true,
		})
	}
}

// GetRefreshStatus retorna o status do agendador e do cache
func GetRefreshStatus(service scheduler.RefreshController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.GetStatus())
	}
}
