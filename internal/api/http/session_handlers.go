package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cloudprep/ccpquiz/internal/config"
	"github.com/cloudprep/ccpquiz/internal/quiz"
	"github.com/cloudprep/ccpquiz/internal/session"
)

type bankParams struct {
	Total *int `json:"total"`
	Seed  *int `json:"seed"`
}

func (p bankParams) resolve(cfg config.Config) (total, seed int) {
	total, seed = cfg.DefaultTotal, cfg.DefaultSeed
	if p.Total != nil {
		total = *p.Total
	}
	if p.Seed != nil {
		seed = *p.Seed
	}
	return total, seed
}

type sessionOut struct {
	SessionID string        `json:"session_id"`
	Total     int           `json:"total"`
	Question  *QuestionView `json:"question,omitempty"`
	Finished  bool          `json:"finished,omitempty"`
}

func sessionView(id string, s *quiz.Session) sessionOut {
	out := sessionOut{SessionID: id, Total: len(s.Questions)}
	q, err := s.Current()
	if err != nil {
		out.Finished = true
		return out
	}
	v := viewOf(q, s.Index, len(s.Questions))
	out.Question = &v
	return out
}

// StartSessionHandler builds a bank and opens a new session over it.
func StartSessionHandler(store session.Store, cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req bankParams
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		total, seed := req.resolve(cfg)
		s, err := quiz.NewSession(total, seed)
		if err != nil {
			writeQuizError(w, err)
			return
		}
		id := session.NewID()
		if err := store.Save(r.Context(), id, s); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(sessionView(id, s))
	}
}

// CurrentQuestionHandler serves the question under the cursor, or a finished
// marker once the bank is exhausted.
func CurrentQuestionHandler(store session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "sessionID")
		s, err := store.Load(r.Context(), id)
		if err != nil {
			writeQuizError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(sessionView(id, s))
	}
}

type answerOut struct {
	Correct        bool             `json:"correct"`
	CorrectOptions []int            `json:"correct_options"`
	CorrectLabels  []string         `json:"correct_labels"`
	Explanation    string           `json:"explanation"`
	Options        []OptionFeedback `json:"options"`
}

// SubmitAnswerHandler grades a selection for the current question and records
// it. The selection is index-based and order-insensitive.
func SubmitAnswerHandler(store session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "sessionID")
		var req struct {
			QuestionID int   `json:"question_id"`
			Selected   []int `json:"selected"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		s, err := store.Load(r.Context(), id)
		if err != nil {
			writeQuizError(w, err)
			return
		}
		fb, err := s.Submit(req.QuestionID, req.Selected)
		if err != nil {
			writeQuizError(w, err)
			return
		}
		if err := store.Save(r.Context(), id, s); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		q, _ := s.Current()
		labels := make([]string, 0, len(fb.CorrectOptions))
		for _, i := range fb.CorrectOptions {
			labels = append(labels, q.Options[i])
		}
		_ = json.NewEncoder(w).Encode(answerOut{
			Correct:        fb.Correct,
			CorrectOptions: fb.CorrectOptions,
			CorrectLabels:  labels,
			Explanation:    fb.Explanation,
			Options:        optionFeedback(q),
		})
	}
}

// AdvanceHandler moves to the next question after a recorded answer.
func AdvanceHandler(store session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "sessionID")
		s, err := store.Load(r.Context(), id)
		if err != nil {
			writeQuizError(w, err)
			return
		}
		if err := s.Advance(); err != nil {
			writeQuizError(w, err)
			return
		}
		if err := store.Save(r.Context(), id, s); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(sessionView(id, s))
	}
}

// FinishHandler ends the session early and reports results.
func FinishHandler(store session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "sessionID")
		s, err := store.Load(r.Context(), id)
		if err != nil {
			writeQuizError(w, err)
			return
		}
		s.Finish()
		if err := store.Save(r.Context(), id, s); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(s.Results())
	}
}

// ResultsHandler reports the running or final score and domain breakdown.
func ResultsHandler(store session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "sessionID")
		s, err := store.Load(r.Context(), id)
		if err != nil {
			writeQuizError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(s.Results())
	}
}

// ResetHandler rebuilds the session in place with a fresh bank.
func ResetHandler(store session.Store, cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "sessionID")
		var req bankParams
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		s, err := store.Load(r.Context(), id)
		if err != nil {
			writeQuizError(w, err)
			return
		}
		total, seed := req.resolve(cfg)
		if err := s.Reset(total, seed); err != nil {
			writeQuizError(w, err)
			return
		}
		if err := store.Save(r.Context(), id, s); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(sessionView(id, s))
	}
}

// writeQuizError maps core errors onto HTTP statuses: missing sessions to
// 404, invalid input to 400, out-of-turn calls to 409.
func writeQuizError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, quiz.ErrInvalidTotal),
		errors.Is(err, quiz.ErrSelectionCount),
		errors.Is(err, quiz.ErrSelectionRange):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, quiz.ErrWrongQuestion),
		errors.Is(err, quiz.ErrAlreadyAnswered),
		errors.Is(err, quiz.ErrNotAnswered),
		errors.Is(err, quiz.ErrNoCurrentQuestion):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
