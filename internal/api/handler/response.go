package handler

import (
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// RefreshedAtHeader informa ao cliente quando o slot servido foi recalculado
const RefreshedAtHeader = "X-Data-Refreshed-At"

type messageResponse struct {
	Message string `json:"message"`
	ID      *int   `json:"id,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeSnapshot responde com o valor do cache e o instante do último recálculo
func writeSnapshot(w http.ResponseWriter, body any, refreshedAt time.Time) {
	if !refreshedAt.IsZero() {
		w.Header().Set(RefreshedAtHeader, refreshedAt.UTC().Format(time.RFC3339))
	}

	// Transforma o corpo antes de escrever o status para que falhas de encode ainda virem 500
	payload, err := json.Marshal(body)
	if err != nil {
		logrus.WithError(err).Error("Erro ao serializar resposta")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(append(payload, '\n'))
}
