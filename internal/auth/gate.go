package auth

import (
	"encoding/json"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	authmw "github.com/cloudprep/ccpquiz/internal/auth/middleware"
	"github.com/cloudprep/ccpquiz/internal/config"
)

// GateLoginHandler is the single shared-password access gate in front of the
// quiz. A correct password yields a bearer token for the session routes.
func GateLoginHandler(a *authmw.AuthService, cfg config.Config) http.HandlerFunc {
	type out struct {
		AccessToken string `json:"access_token"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if !gateAllows(cfg, req.Password) {
			http.Error(w, "incorrect password", http.StatusUnauthorized)
			return
		}
		tok, err := a.IssueJWT("quiz-taker")
		if err != nil {
			http.Error(w, "issue token", http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(out{AccessToken: tok})
	}
}

func gateAllows(cfg config.Config, password string) bool {
	if cfg.GatePassHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(cfg.GatePassHash), []byte(password)) == nil
	}
	// Plain comparison is the local-development fallback only.
	return cfg.GatePassword != "" && password == cfg.GatePassword
}
