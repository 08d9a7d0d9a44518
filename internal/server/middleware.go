package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/sevenam/diamondstore/internal/metrics"
)

func (s *Server) requestLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrw := newResponseWriterWrapper(w)

		next.ServeHTTP(wrw, r)

		route := routeName(r)
		elapsed := time.Since(start)
		status := wrw.GetStatusCode()

		metrics.HTTPRequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())

		fields := []zap.Field{
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("route", route),
			zap.Int("status", status),
			zap.Int("bytes", wrw.BytesWritten()),
			zap.Duration("latency", elapsed),
		}
		if id := mux.Vars(r)["id"]; id != "" {
			fields = append(fields, zap.String("entity_id", id))
		}

		switch {
		case status >= http.StatusInternalServerError:
			s.logger.Error("request failed", fields...)
		case status >= http.StatusBadRequest:
			s.logger.Warn("request rejected", fields...)
		default:
			s.logger.Info("request served", fields...)
		}
	})
}

func routeName(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return r.Method + " " + tpl
		}
	}
	return "unmatched"
}
