// Логирование HTTP-запросов
package middleware

import (
	"net/http"
	"time"

	"github.com/IvanChernomyrdin/go-medkeeper/internal/shared/logger"
)

// ResponseWriter оборачивает http.ResponseWriter
// и запоминает статус и размер ответа для лога.
type ResponseWriter struct {
	http.ResponseWriter
	Status int
	Size   int
}

func (w *ResponseWriter) WriteHeader(status int) {
	w.Status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *ResponseWriter) Write(b []byte) (int, error) {
	// WriteHeader могли не вызвать явно
	if w.Status == 0 {
		w.Status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.Size += n
	return n, err
}

// LoggerMiddleware пишет в http.log метод, uri, статус, размер и длительность запроса.
func LoggerMiddleware() func(http.Handler) http.Handler {
	httpLog := logger.NewHTTPLogger()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wr := &ResponseWriter{ResponseWriter: w}
			next.ServeHTTP(wr, r)

			elapsedMs := time.Since(start).Seconds() * 1000
			httpLog.LogRequest(r.Method, r.RequestURI, wr.Status, wr.Size, elapsedMs)
		})
	}
}
