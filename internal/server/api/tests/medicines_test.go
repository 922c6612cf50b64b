package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/IvanChernomyrdin/go-medkeeper/internal/server/api"
	"github.com/IvanChernomyrdin/go-medkeeper/internal/server/config"
	"github.com/IvanChernomyrdin/go-medkeeper/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-medkeeper/internal/server/models"
	"github.com/IvanChernomyrdin/go-medkeeper/internal/server/service"
	repoMocks "github.com/IvanChernomyrdin/go-medkeeper/internal/server/service/mocks"
	srvmodels "github.com/IvanChernomyrdin/go-medkeeper/internal/server/service/models"
	serr "github.com/IvanChernomyrdin/go-medkeeper/internal/shared/errors"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

// helper: создаёт Handler с моком MedicinesRepo и фиксированными "сегодня"
func newTestHandlerWithMedicines(t *testing.T) (*api.Handler, *repoMocks.MockMedicinesRepo) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := repoMocks.NewMockMedicinesRepo(ctrl)

	cfg := &config.Config{
		Expiry: config.ExpiryConfig{WarningWithinDays: 30},
	}
	svc := service.NewMedicinesService(repo, cfg).WithClock(func() time.Time {
		return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	})
	handler := api.NewHandler(&service.Services{Medicines: svc}, nil, nil)

	return handler, repo
}

func withUser(req *http.Request, userID uuid.UUID) *http.Request {
	return req.WithContext(middleware.ContextWithUserID(req.Context(), userID.String()))
}

func TestHandler_AddMedicine_Success(t *testing.T) {
	t.Parallel()

	h, repo := newTestHandlerWithMedicines(t)

	userID := uuid.New()

	repo.EXPECT().
		Create(gomock.Any(), userID, "Ibuprofen", "B-17", "2026-12-01", "4601234567890", 10).
		Return(uuid.New(), nil)

	body := `{"name":"Ibuprofen","batch":"B-17","expiry":"2026-12-01","barcode":"4601234567890","quantity":10}`
	req := httptest.NewRequest(http.MethodPost, "/add", bytes.NewBufferString(body))
	req = withUser(req, userID)
	rec := httptest.NewRecorder()

	h.AddMedicine(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d, body=%q", rec.Code, rec.Body.String())
	}
}

// quantity строкой — тоже валидно
func TestHandler_AddMedicine_QuantityAsString(t *testing.T) {
	t.Parallel()

	h, repo := newTestHandlerWithMedicines(t)

	userID := uuid.New()

	repo.EXPECT().
		Create(gomock.Any(), userID, "Aspirin", "A-1", "2027-01-15", "123", 5).
		Return(uuid.New(), nil)

	body := `{"name":"Aspirin","batch":"A-1","expiry":"2027-01-15","barcode":"123","quantity":"5"}`
	req := httptest.NewRequest(http.MethodPost, "/add", bytes.NewBufferString(body))
	req = withUser(req, userID)
	rec := httptest.NewRecorder()

	h.AddMedicine(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d, body=%q", rec.Code, rec.Body.String())
	}
}

func TestHandler_AddMedicine_MissingFields(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandlerWithMedicines(t)

	body := `{"name":"Ibuprofen"}`
	req := httptest.NewRequest(http.MethodPost, "/add", bytes.NewBufferString(body))
	req = withUser(req, uuid.New())
	rec := httptest.NewRecorder()

	h.AddMedicine(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp api.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	// ошибка должна перечислить отсутствующие поля
	for _, f := range []string{"batch", "expiry", "barcode", "quantity"} {
		if !bytes.Contains([]byte(resp.Error), []byte(f)) {
			t.Fatalf("expected %q in error, got %q", f, resp.Error)
		}
	}
}

func TestHandler_AddMedicine_NegativeQuantity(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandlerWithMedicines(t)

	body := `{"name":"X","batch":"B","expiry":"2026-12-01","barcode":"1","quantity":-1}`
	req := httptest.NewRequest(http.MethodPost, "/add", bytes.NewBufferString(body))
	req = withUser(req, uuid.New())
	rec := httptest.NewRecorder()

	h.AddMedicine(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

// нечисловая строка в quantity отбрасывается на декоде
func TestHandler_AddMedicine_NonNumericQuantity(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandlerWithMedicines(t)

	body := `{"name":"X","batch":"B","expiry":"2026-12-01","barcode":"1","quantity":"abc"}`
	req := httptest.NewRequest(http.MethodPost, "/add", bytes.NewBufferString(body))
	req = withUser(req, uuid.New())
	rec := httptest.NewRecorder()

	h.AddMedicine(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandler_AddMedicine_BadExpiry(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandlerWithMedicines(t)

	body := `{"name":"X","batch":"B","expiry":"01.12.2026","barcode":"1","quantity":1}`
	req := httptest.NewRequest(http.MethodPost, "/add", bytes.NewBufferString(body))
	req = withUser(req, uuid.New())
	rec := httptest.NewRecorder()

	h.AddMedicine(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandler_AddMedicine_Unauthorized(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandlerWithMedicines(t)

	body := `{"name":"X","batch":"B","expiry":"2026-12-01","barcode":"1","quantity":1}`
	req := httptest.NewRequest(http.MethodPost, "/add", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	h.AddMedicine(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestHandler_ListMedicines_Success(t *testing.T) {
	t.Parallel()

	h, repo := newTestHandlerWithMedicines(t)

	userID := uuid.New()

	repo.EXPECT().
		ListByUser(gomock.Any(), userID).
		Return([]models.Medicine{
			{ID: uuid.New(), UserID: userID, Name: "Old", Batch: "B1", Expiry: "2026-08-01", Barcode: "1", Quantity: 1},
			{ID: uuid.New(), UserID: userID, Name: "Soon", Batch: "B2", Expiry: "2026-09-10", Barcode: "2", Quantity: 2},
			{ID: uuid.New(), UserID: userID, Name: "Fresh", Batch: "B3", Expiry: "2027-08-30", Barcode: "3", Quantity: 3},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/medicines", nil)
	req = withUser(req, userID)
	rec := httptest.NewRecorder()

	h.ListMedicines(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d, body=%q", rec.Code, rec.Body.String())
	}

	var views []srvmodels.MedicineView
	if err := json.NewDecoder(rec.Body).Decode(&views); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(views) != 3 {
		t.Fatalf("expected 3 medicines, got %d", len(views))
	}

	wantStatus := []string{"expired", "warning", "safe"}
	for i, v := range views {
		if v.Status != wantStatus[i] {
			t.Fatalf("medicine %d: expected status %q, got %q", i, wantStatus[i], v.Status)
		}
	}
}

// пустая аптечка — пустой массив, не null
func TestHandler_ListMedicines_Empty(t *testing.T) {
	t.Parallel()

	h, repo := newTestHandlerWithMedicines(t)

	userID := uuid.New()

	repo.EXPECT().
		ListByUser(gomock.Any(), userID).
		Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/medicines", nil)
	req = withUser(req, userID)
	rec := httptest.NewRecorder()

	h.ListMedicines(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Body.String(); got != "[]\n" {
		t.Fatalf("expected empty array, got %q", got)
	}
}

func TestHandler_ListMedicines_Unauthorized(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandlerWithMedicines(t)

	req := httptest.NewRequest(http.MethodGet, "/medicines", nil)
	rec := httptest.NewRecorder()

	h.ListMedicines(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestHandler_DeleteMedicine_Success(t *testing.T) {
	t.Parallel()

	h, repo := newTestHandlerWithMedicines(t)

	userID := uuid.New()
	medicineID := uuid.New()

	repo.EXPECT().
		Delete(gomock.Any(), userID, medicineID).
		Return(nil)

	r := chi.NewRouter()
	r.Delete("/delete/{id}", h.DeleteMedicine)

	req := httptest.NewRequest(http.MethodDelete, "/delete/"+medicineID.String(), nil)
	req = withUser(req, userID)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestHandler_DeleteMedicine_BadID(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandlerWithMedicines(t)

	r := chi.NewRouter()
	r.Delete("/delete/{id}", h.DeleteMedicine)

	req := httptest.NewRequest(http.MethodDelete, "/delete/not-a-uuid", nil)
	req = withUser(req, uuid.New())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

// чужая запись и несуществующий id неразличимы
func TestHandler_DeleteMedicine_NotFound(t *testing.T) {
	t.Parallel()

	h, repo := newTestHandlerWithMedicines(t)

	userID := uuid.New()
	medicineID := uuid.New()

	repo.EXPECT().
		Delete(gomock.Any(), userID, medicineID).
		Return(serr.ErrNotFound)

	r := chi.NewRouter()
	r.Delete("/delete/{id}", h.DeleteMedicine)

	req := httptest.NewRequest(http.MethodDelete, "/delete/"+medicineID.String(), nil)
	req = withUser(req, userID)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestHandler_DeleteMedicine_Unauthorized(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandlerWithMedicines(t)

	r := chi.NewRouter()
	r.Delete("/delete/{id}", h.DeleteMedicine)

	req := httptest.NewRequest(http.MethodDelete, "/delete/"+uuid.New().String(), nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
