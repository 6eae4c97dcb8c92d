package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	api "github.com/cloudprep/ccpquiz/internal/api/http"
	"github.com/cloudprep/ccpquiz/internal/config"
	"github.com/cloudprep/ccpquiz/internal/session"
)

func newRouter() chi.Router {
	cfg := config.Config{DefaultTotal: 150, DefaultSeed: 42}
	store := session.NewMemoryStore()
	r := chi.NewRouter()
	r.Post("/sessions", api.StartSessionHandler(store, cfg))
	r.Route("/sessions/{sessionID}", func(sr chi.Router) {
		sr.Get("/question", api.CurrentQuestionHandler(store))
		sr.Post("/answers", api.SubmitAnswerHandler(store))
		sr.Post("/advance", api.AdvanceHandler(store))
		sr.Post("/finish", api.FinishHandler(store))
		sr.Get("/results", api.ResultsHandler(store))
		sr.Post("/reset", api.ResetHandler(store, cfg))
	})
	return r
}

func do(t *testing.T, r chi.Router, method, path string, body any, out any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, path, &buf))
	if out != nil && rec.Code == http.StatusOK {
		if err := json.NewDecoder(rec.Body).Decode(out); err != nil {
			t.Fatalf("%s %s: decode: %v", method, path, err)
		}
	}
	return rec
}

type sessionResp struct {
	SessionID string `json:"session_id"`
	Total     int    `json:"total"`
	Finished  bool   `json:"finished"`
	Question  *struct {
		ID      int      `json:"id"`
		Domain  string   `json:"domain"`
		Prompt  string   `json:"prompt"`
		Options []string `json:"options"`
		Multi   bool     `json:"multi"`
		Select  int      `json:"select"`
		Index   int      `json:"index"`
		Total   int      `json:"total"`
	} `json:"question"`
}

func TestSessionLifecycle(t *testing.T) {
	r := newRouter()

	var start sessionResp
	if rec := do(t, r, "POST", "/sessions", map[string]int{"total": 20, "seed": 7}, &start); rec.Code != 200 {
		t.Fatalf("start: %d %s", rec.Code, rec.Body)
	}
	if start.SessionID == "" || start.Total != 20 || start.Question == nil {
		t.Fatalf("start response: %+v", start)
	}

	base := "/sessions/" + start.SessionID
	answered := 0
	for {
		var cur sessionResp
		if rec := do(t, r, "GET", base+"/question", nil, &cur); rec.Code != 200 {
			t.Fatalf("question: %d %s", rec.Code, rec.Body)
		}
		if cur.Finished {
			break
		}
		q := cur.Question
		if q.Select < 1 || len(q.Options) == 0 {
			t.Fatalf("bad question view: %+v", q)
		}
		sel := make([]int, q.Select)
		for i := range sel {
			sel[i] = i
		}
		var fb struct {
			CorrectLabels []string `json:"correct_labels"`
			Explanation   string   `json:"explanation"`
			Options       []struct {
				Label string `json:"label"`
				Note  string `json:"note"`
			} `json:"options"`
		}
		body := map[string]any{"question_id": q.ID, "selected": sel}
		if rec := do(t, r, "POST", base+"/answers", body, &fb); rec.Code != 200 {
			t.Fatalf("answer: %d %s", rec.Code, rec.Body)
		}
		if len(fb.CorrectLabels) == 0 || fb.Explanation == "" {
			t.Fatalf("feedback missing answer reveal: %+v", fb)
		}
		if len(fb.Options) != len(q.Options) {
			t.Fatalf("feedback has %d option notes for %d options", len(fb.Options), len(q.Options))
		}
		for _, o := range fb.Options {
			if o.Note == "" {
				t.Fatalf("empty rationale for option %q", o.Label)
			}
		}
		answered++
		if rec := do(t, r, "POST", base+"/advance", nil, nil); rec.Code != 200 {
			t.Fatalf("advance: %d %s", rec.Code, rec.Body)
		}
	}
	if answered != 20 {
		t.Fatalf("answered %d questions", answered)
	}

	var res struct {
		Scaled   int  `json:"scaled"`
		Passed   bool `json:"passed"`
		Answered int  `json:"answered"`
		Total    int  `json:"total"`
	}
	if rec := do(t, r, "GET", base+"/results", nil, &res); rec.Code != 200 {
		t.Fatalf("results: %d %s", rec.Code, rec.Body)
	}
	if res.Answered != 20 || res.Total != 20 {
		t.Fatalf("results: %+v", res)
	}
	if res.Scaled < 100 || res.Scaled > 1000 {
		t.Fatalf("scaled out of range: %d", res.Scaled)
	}
}

func TestSessionValidationStatuses(t *testing.T) {
	r := newRouter()

	if rec := do(t, r, "GET", "/sessions/nope/question", nil, nil); rec.Code != 404 {
		t.Fatalf("unknown session: %d", rec.Code)
	}
	if rec := do(t, r, "POST", "/sessions", map[string]int{"total": 0}, nil); rec.Code != 400 {
		t.Fatalf("zero total: %d", rec.Code)
	}

	var start sessionResp
	do(t, r, "POST", "/sessions", map[string]int{"total": 10, "seed": 1}, &start)
	base := "/sessions/" + start.SessionID
	q := start.Question

	// Advancing before answering is an out-of-turn call.
	if rec := do(t, r, "POST", base+"/advance", nil, nil); rec.Code != 409 {
		t.Fatalf("advance unanswered: %d", rec.Code)
	}
	// Wrong cardinality is a validation failure, distinct from wrong answers.
	tooMany := map[string]any{"question_id": q.ID, "selected": []int{0, 1, 2, 3}}
	if rec := do(t, r, "POST", base+"/answers", tooMany, nil); rec.Code != 400 {
		t.Fatalf("bad cardinality: %d", rec.Code)
	}
	// Submitting against a question that is not current is rejected.
	wrongID := map[string]any{"question_id": q.ID + 1000, "selected": []int{0}}
	if rec := do(t, r, "POST", base+"/answers", wrongID, nil); rec.Code != 409 {
		t.Fatalf("wrong question: %d", rec.Code)
	}

	sel := make([]int, q.Select)
	for i := range sel {
		sel[i] = i
	}
	good := map[string]any{"question_id": q.ID, "selected": sel}
	if rec := do(t, r, "POST", base+"/answers", good, nil); rec.Code != 200 {
		t.Fatalf("valid answer: %d", rec.Code)
	}
	// Resubmission is rejected and must not change the tally.
	if rec := do(t, r, "POST", base+"/answers", good, nil); rec.Code != 409 {
		t.Fatalf("resubmit: %d", rec.Code)
	}
}

func TestFinishAndReset(t *testing.T) {
	r := newRouter()

	var start sessionResp
	do(t, r, "POST", "/sessions", map[string]int{"total": 10, "seed": 1}, &start)
	base := "/sessions/" + start.SessionID

	var res struct {
		Answered int `json:"answered"`
	}
	if rec := do(t, r, "POST", base+"/finish", nil, &res); rec.Code != 200 {
		t.Fatalf("finish: %d", rec.Code)
	}
	if res.Answered != 0 {
		t.Fatalf("finish results: %+v", res)
	}

	var after sessionResp
	if rec := do(t, r, "POST", base+"/reset", map[string]int{"total": 5, "seed": 9}, &after); rec.Code != 200 {
		t.Fatalf("reset: %d", rec.Code)
	}
	if after.Finished || after.Question == nil || after.Question.Index != 0 {
		t.Fatalf("reset response: %+v", after)
	}
	if after.Total != 5 {
		t.Fatalf("reset total: %d", after.Total)
	}
}

func TestQuestionViewHidesAnswers(t *testing.T) {
	store := session.NewMemoryStore()
	cfg := config.Config{DefaultTotal: 10, DefaultSeed: 3}
	r := chi.NewRouter()
	r.Post("/sessions", api.StartSessionHandler(store, cfg))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("POST", "/sessions", bytes.NewReader([]byte(`{}`))))
	if rec.Code != 200 {
		t.Fatalf("start: %d", rec.Code)
	}
	var raw map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatal(err)
	}
	qv, ok := raw["question"].(map[string]any)
	if !ok {
		t.Fatalf("no question in %v", raw)
	}
	for _, hidden := range []string{"correct", "explanation", "option_explanations"} {
		if _, leak := qv[hidden]; leak {
			t.Fatalf("question view leaks %q: %s", hidden, rec.Body)
		}
	}
	if fmt.Sprint(qv["select"]) == "0" {
		t.Fatal("select count missing")
	}
}
