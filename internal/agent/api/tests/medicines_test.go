package tests

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/IvanChernomyrdin/go-medkeeper/internal/agent/api"
	"github.com/stretchr/testify/require"
)

func TestClient_AddMedicine_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/add", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))

		var req api.AddMedicineRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "Ibuprofen", req.Name)
		require.Equal(t, "2026-12-01", req.Expiry)
		require.Equal(t, "10", req.Quantity)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(api.MessageResponse{Message: "medicine added"})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	resp, err := c.AddMedicine("token-1", api.AddMedicineRequest{
		Name:     "Ibuprofen",
		Batch:    "B-17",
		Expiry:   "2026-12-01",
		Barcode:  "4601234567890",
		Quantity: "10",
	})
	require.NoError(t, err)
	require.Equal(t, "medicine added", resp.Message)
}

func TestClient_AddMedicine_ValidationError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/add", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"error": "quantity must be non-negative"}`)
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	_, err := c.AddMedicine("token-1", api.AddMedicineRequest{Quantity: "-1"})
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "quantity must be non-negative"))
}

func TestClient_ListMedicines_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/medicines", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]api.Medicine{
			{ID: "m1", Name: "Ibuprofen", Expiry: "2026-12-01", Quantity: 10, DaysLeft: 93, Status: "safe"},
			{ID: "m2", Name: "Aspirin", Expiry: "2026-09-05", Quantity: 3, DaysLeft: 6, Status: "warning"},
		})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	meds, err := c.ListMedicines("token-1")
	require.NoError(t, err)
	require.Len(t, meds, 2)
	require.Equal(t, "safe", meds[0].Status)
	require.Equal(t, "warning", meds[1].Status)
}

func TestClient_DeleteMedicine_NotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/delete/", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"error": "not found"}`)
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL)

	_, err := c.DeleteMedicine("token-1", "m1")
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "not found"))
}
