package auth_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/cloudprep/ccpquiz/internal/auth"
	authmw "github.com/cloudprep/ccpquiz/internal/auth/middleware"
	"github.com/cloudprep/ccpquiz/internal/config"
)

func postLogin(t *testing.T, cfg config.Config, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := auth.GateLoginHandler(authmw.NewAuthService("test-secret"), cfg)
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest("POST", "/auth/login", strings.NewReader(body)))
	return rec
}

func TestGatePlainPassword(t *testing.T) {
	cfg := config.Config{GatePassword: "aws2025"}

	rec := postLogin(t, cfg, `{"password":"aws2025"}`)
	if rec.Code != 200 {
		t.Fatalf("got %d", rec.Code)
	}
	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.AccessToken == "" {
		t.Fatal("no token issued")
	}

	if rec := postLogin(t, cfg, `{"password":"wrong"}`); rec.Code != 401 {
		t.Fatalf("wrong password: got %d", rec.Code)
	}
	if rec := postLogin(t, cfg, `not json`); rec.Code != 400 {
		t.Fatalf("bad json: got %d", rec.Code)
	}
}

func TestGateBcryptHashTakesPrecedence(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	cfg := config.Config{GatePassHash: string(hash), GatePassword: "aws2025"}

	if rec := postLogin(t, cfg, `{"password":"hunter2"}`); rec.Code != 200 {
		t.Fatalf("hashed password: got %d", rec.Code)
	}
	// The plain fallback must be ignored once a hash is configured.
	if rec := postLogin(t, cfg, `{"password":"aws2025"}`); rec.Code != 401 {
		t.Fatalf("fallback password: got %d", rec.Code)
	}
}

func TestGateRefusesEmptySetup(t *testing.T) {
	if rec := postLogin(t, config.Config{}, `{"password":""}`); rec.Code != 401 {
		t.Fatalf("empty config must reject: got %d", rec.Code)
	}
}
