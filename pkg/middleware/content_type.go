package middleware

import (
	"mime"
	"net/http"
	"strings"

	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// RequireJSON recusa requisições cujo corpo não é declarado como JSON
func RequireJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || (mediaType != "application/json" && !strings.HasSuffix(mediaType, "+json")) {
			log.ForContext(r.Context()).WithField("content_type", r.Header.Get("Content-Type")).Warn("Content-Type não suportado")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Content-Type must be application/json", nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}
