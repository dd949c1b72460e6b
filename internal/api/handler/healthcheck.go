package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Pinger verifica se o diretório de dados continua acessível
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthcheckHandler(storage Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if storage != nil {
			if err := storage.Ping(r.Context()); err != nil {
				logrus.WithError(err).Warn("healthcheck: data directory unavailable")
				http.Error(w, "data directory unavailable", http.StatusServiceUnavailable)
				return
			}
		}

		_, err := w.Write([]byte(time.Now().String()))
		if err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
