package api

import (
	"net/http"

	"github.com/IvanChernomyrdin/go-medkeeper/internal/server/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - публичные эндпоинты аутентификации (/signup, /login, /refresh);
//   - middleware логирования для всех запросов;
//   - группу защищённых JWT эндпоинтов аптечки.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware())

	// добавляем swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	// Публичные пути
	r.Post("/signup", h.Signup)
	r.Post("/login", h.Login)
	r.Post("/refresh", h.Refresh)
	// защищены пути
	r.Group(func(r chi.Router) {
		// проверка access токена
		r.Use(h.Verifier.AuthMiddleware())

		r.Post("/add", h.AddMedicine)
		r.Get("/medicines", h.ListMedicines)
		r.Delete("/delete/{id}", h.DeleteMedicine)
	})

	return r
}
