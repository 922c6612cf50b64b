package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/IvanChernomyrdin/go-medkeeper/internal/agent/cli"
	"github.com/IvanChernomyrdin/go-medkeeper/internal/agent/config"
	serr "github.com/IvanChernomyrdin/go-medkeeper/internal/shared/errors"
)

func authedApp(serverURL string) *cli.App {
	return &cli.App{
		ServerURL: serverURL,
		Creds:     &config.Credentials{AccessToken: "access-1"},
	}
}

func TestNewAddCmd_Success_PrintsServerMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/add", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer access-1" {
			t.Fatalf("unexpected Authorization header: %q", got)
		}

		var req struct {
			Name     string `json:"name"`
			Batch    string `json:"batch"`
			Expiry   string `json:"expiry"`
			Barcode  string `json:"barcode"`
			Quantity string `json:"quantity"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Name != "Ibuprofen" || req.Batch != "B-17" {
			t.Fatalf("unexpected payload: %+v", req)
		}
		if req.Expiry != "2026-12-01" || req.Quantity != "10" {
			t.Fatalf("unexpected payload: %+v", req)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"message": "medicine added"})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	cmd := cli.NewAddCmd(authedApp(srv.URL))

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	cmd.SetArgs([]string{
		"--name", "Ibuprofen",
		"--batch", "B-17",
		"--expiry", "2026-12-01",
		"--barcode", "4601234567890",
		"--quantity", "10",
	})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if got := out.String(); !strings.Contains(got, "medicine added") {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestNewAddCmd_MissingRequiredFlags_ReturnsError(t *testing.T) {
	cmd := cli.NewAddCmd(authedApp("http://127.0.0.1:8080"))

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	cmd.SetArgs([]string{"--name", "Ibuprofen"})

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("%s, got nil", serr.ErrExpectedError.Error())
	}
	if !strings.Contains(err.Error(), "required") {
		t.Fatalf("%s: %v", serr.ErrUnexpectedError.Error(), err)
	}
}

func TestNewAddCmd_NotLoggedIn_ReturnsError(t *testing.T) {
	app := &cli.App{
		ServerURL: "http://127.0.0.1:8080",
		Creds:     &config.Credentials{},
	}

	cmd := cli.NewAddCmd(app)
	cmd.SetArgs([]string{
		"--name", "Ibuprofen",
		"--batch", "B-17",
		"--expiry", "2026-12-01",
		"--barcode", "4601234567890",
		"--quantity", "10",
	})

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("%s, got nil", serr.ErrExpectedError.Error())
	}
	if !strings.Contains(err.Error(), "no access_token") {
		t.Fatalf("%s: %v", serr.ErrUnexpectedError.Error(), err)
	}
}

func TestNewListCmd_Success_PrintsTable(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/medicines", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Fatalf("expected GET, got %s", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer access-1" {
			t.Fatalf("unexpected Authorization header: %q", got)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]map[string]any{
			{
				"id":        "9b2f2f74-5a4a-4ac1-9a77-000000000001",
				"name":      "Ibuprofen",
				"batch":     "B-17",
				"expiry":    "2026-12-01",
				"barcode":   "4601234567890",
				"quantity":  10,
				"days_left": 93,
				"status":    "safe",
			},
			{
				"id":        "9b2f2f74-5a4a-4ac1-9a77-000000000002",
				"name":      "Aspirin",
				"batch":     "A-03",
				"expiry":    "2026-08-01",
				"barcode":   "4600000000001",
				"quantity":  2,
				"days_left": -29,
				"status":    "expired",
			},
		})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	cmd := cli.NewListCmd(authedApp(srv.URL))

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	got := out.String()
	for _, want := range []string{"NAME", "STATUS", "Ibuprofen", "safe", "Aspirin", "expired", "-29"} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
}

func TestNewListCmd_Empty_PrintsPlaceholder(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/medicines", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("[]"))
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	cmd := cli.NewListCmd(authedApp(srv.URL))

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if got := out.String(); !strings.Contains(got, "medicine cabinet is empty") {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestNewDeleteCmd_Success_PrintsServerMessage(t *testing.T) {
	const id = "9b2f2f74-5a4a-4ac1-9a77-000000000001"

	mux := http.NewServeMux()
	mux.HandleFunc("/delete/"+id, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Fatalf("expected DELETE, got %s", r.Method)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "medicine deleted"})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	cmd := cli.NewDeleteCmd(authedApp(srv.URL))

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	cmd.SetArgs([]string{"--id", id})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if got := out.String(); !strings.Contains(got, "medicine deleted") {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestNewDeleteCmd_NotFound_ReturnsError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(serr.ErrNotFound.Error()))
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	cmd := cli.NewDeleteCmd(authedApp(srv.URL))

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	cmd.SetArgs([]string{"--id", "9b2f2f74-5a4a-4ac1-9a77-000000000099"})

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("%s, got nil", serr.ErrExpectedError.Error())
	}
	if !strings.Contains(err.Error(), serr.ErrNotFound.Error()) {
		t.Fatalf("%s: %v", serr.ErrUnexpectedError.Error(), err)
	}
}
