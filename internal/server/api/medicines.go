// HTTP-хендлеры аптечки: добавление, список, удаление
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/IvanChernomyrdin/go-medkeeper/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-medkeeper/internal/server/service"
	serr "github.com/IvanChernomyrdin/go-medkeeper/internal/shared/errors"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// AddMedicineRequest тело запроса добавления лекарства.
//
// Quantity — json.Number: принимаем и число (10), и числовую строку ("10").
// Строка-нечисло отбрасывается ещё на декоде.
type AddMedicineRequest struct {
	Name     string      `json:"name"`
	Batch    string      `json:"batch"`
	Expiry   string      `json:"expiry"`
	Barcode  string      `json:"barcode"`
	Quantity json.Number `json:"quantity"`
}

// AddMedicine добавляет лекарство в аптечку аутентифицированного пользователя.
//
// Все поля обязательны, валидация выполняется в сервисном слое
// до любой записи в БД. Ошибка про отсутствующие поля перечисляет
// каждое из них.
//
// Требует JWT-аутентификацию.
//
// @Summary      Add medicine
// @Description  Adds a medicine record for the authenticated user.
// @Description  Quantity must be a non-negative integer, expiry must be YYYY-MM-DD.
// @Tags         medicines
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body AddMedicineRequest true "Add medicine request"
// @Success      201 {object} MessageResponse
// @Failure      400 {object} ErrorResponse "Missing or invalid fields"
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /add [post]
func (h *Handler) AddMedicine(w http.ResponseWriter, r *http.Request) {
	var req AddMedicineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	userID, ok := userFromContext(r)
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	_, err := h.Svc.Medicines.Add(r.Context(), userID, service.AddMedicineInput{
		Name:     req.Name,
		Batch:    req.Batch,
		Expiry:   req.Expiry,
		Barcode:  req.Barcode,
		Quantity: req.Quantity.String(),
	})

	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput),
			errors.Is(err, serr.ErrInvalidQuantity),
			errors.Is(err, serr.ErrNegativeQuantity),
			errors.Is(err, serr.ErrInvalidExpiry):
			WriteError(w, http.StatusBadRequest, err)
		default:
			h.Log.Logger.Sugar().Errorw(
				"add medicine failed",
				"error", err,
				"user_id", userID.String(),
			)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(MessageResponse{Message: "medicine added"})
}

// ListMedicines возвращает все лекарства текущего пользователя.
//
// Каждая запись аннотируется days_left и status (expired/warning/safe)
// относительно текущей даты. Записи с нечитаемой датой в БД
// в выдачу не попадают.
//
// ListMedicines godoc
// @Summary      List medicines
// @Description  Returns all medicines belonging to the authenticated user,
// @Description  annotated with days_left and freshness status.
// @Tags         medicines
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.MedicineView
// @Failure      401 {object} api.ErrorResponse "Unauthorized"
// @Failure      500 {object} api.ErrorResponse "Internal server error"
// @Router       /medicines [get]
func (h *Handler) ListMedicines(w http.ResponseWriter, r *http.Request) {
	userID, ok := userFromContext(r)
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}
	// вызываем сервис
	views, err := h.Svc.Medicines.List(r.Context(), userID)
	if err != nil {
		h.Log.Logger.Sugar().Errorw(
			"list medicines failed",
			"error", err,
			"user_id", userID.String(),
		)
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		return
	}

	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(views)
}

// DeleteMedicine удаляет лекарство пользователя по id.
//
// Идентификатор передаётся в URL-параметре `{id}`.
// Чужая запись и несуществующий id одинаково дают 404.
//
// DeleteMedicine godoc
// @Summary      Delete medicine
// @Description  Deletes a medicine belonging to the authenticated user.
// @Tags         medicines
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Medicine ID (UUID)"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse "Bad id"
// @Failure      401 {object} api.ErrorResponse "Unauthorized"
// @Failure      404 {object} api.ErrorResponse "Not found"
// @Failure      500 {object} api.ErrorResponse "Internal server error"
// @Router       /delete/{id} [delete]
func (h *Handler) DeleteMedicine(w http.ResponseWriter, r *http.Request) {
	medicineID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		return
	}

	userID, ok := userFromContext(r)
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	if err := h.Svc.Medicines.Delete(r.Context(), userID, medicineID); err != nil {
		switch {
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, err)
		default:
			h.Log.Logger.Sugar().Errorw(
				"delete medicine failed",
				"error", err,
				"user_id", userID.String(),
				"medicine_id", medicineID.String(),
			)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(MessageResponse{Message: "medicine deleted"})
}

// userFromContext достаёт userID из контекста и парсит его в uuid.
func userFromContext(r *http.Request) (uuid.UUID, bool) {
	s, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
