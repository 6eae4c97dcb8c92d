package quiz

import (
	"errors"
	"sort"
)

var (
	ErrNoCurrentQuestion = errors.New("no current question")
	ErrWrongQuestion     = errors.New("not the current question")
	ErrAlreadyAnswered   = errors.New("question already answered")
	ErrSelectionCount    = errors.New("wrong number of selected options")
	ErrSelectionRange    = errors.New("selected option out of range")
	ErrNotAnswered       = errors.New("current question not answered yet")
)

// DomainTally tracks per-domain progress.
type DomainTally struct {
	Correct   int `json:"correct"`
	Attempted int `json:"attempted"`
}

// Session is one user's pass through a generated bank. It is driven by a
// single actor through Submit/Advance/Finish; every transition either applies
// fully or leaves the session untouched. The whole struct round-trips through
// JSON so stores can snapshot it.
type Session struct {
	Questions    []Question             `json:"questions"`
	Index        int                    `json:"index"`
	Answered     map[int][]int          `json:"answered"`
	CorrectCount int                    `json:"correct_count"`
	PerDomain    map[string]DomainTally `json:"per_domain"`
	Finished     bool                   `json:"finished"`
}

// Feedback is returned to the caller after a graded submission.
type Feedback struct {
	Correct        bool   `json:"correct"`
	CorrectOptions []int  `json:"correct_options"`
	Explanation    string `json:"explanation"`
}

// NewSession builds a fresh bank and an initial session over it.
func NewSession(total, seed int) (*Session, error) {
	bank, err := BuildBank(total, seed)
	if err != nil {
		return nil, err
	}
	return &Session{
		Questions: bank,
		Answered:  map[int][]int{},
		PerDomain: map[string]DomainTally{},
	}, nil
}

// Current returns the question under the cursor, or ErrNoCurrentQuestion when
// the session is finished or the bank is exhausted.
func (s *Session) Current() (Question, error) {
	if s.Finished || s.Index >= len(s.Questions) {
		return Question{}, ErrNoCurrentQuestion
	}
	return s.Questions[s.Index], nil
}

// Submit grades a selection against the current question. The selection is
// treated as a set: duplicates collapse and order is ignored. Single-answer
// questions require exactly one index, multi-answer exactly |Correct|.
// Exact-match grading only; no partial credit. A question id is recorded at
// most once, and any rejection leaves the session unchanged.
func (s *Session) Submit(questionID int, selected []int) (Feedback, error) {
	q, err := s.Current()
	if err != nil {
		return Feedback{}, err
	}
	if q.ID != questionID {
		return Feedback{}, ErrWrongQuestion
	}
	if _, done := s.Answered[questionID]; done {
		return Feedback{}, ErrAlreadyAnswered
	}

	sel := dedupeInts(selected)
	want := 1
	if q.Multi {
		want = len(q.Correct)
	}
	if len(sel) != want {
		return Feedback{}, ErrSelectionCount
	}
	for _, i := range sel {
		if i < 0 || i >= len(q.Options) {
			return Feedback{}, ErrSelectionRange
		}
	}

	correct := equalIntSets(sel, q.Correct)
	s.Answered[questionID] = sel
	if correct {
		s.CorrectCount++
	}
	tally := s.PerDomain[q.Domain]
	tally.Attempted++
	if correct {
		tally.Correct++
	}
	s.PerDomain[q.Domain] = tally

	return Feedback{
		Correct:        correct,
		CorrectOptions: append([]int(nil), q.Correct...),
		Explanation:    q.Explanation,
	}, nil
}

// Advance moves the cursor past an answered question. Reaching the end of the
// bank finishes the session.
func (s *Session) Advance() error {
	q, err := s.Current()
	if err != nil {
		return err
	}
	if _, done := s.Answered[q.ID]; !done {
		return ErrNotAnswered
	}
	s.Index++
	if s.Index >= len(s.Questions) {
		s.Finished = true
	}
	return nil
}

// Finish ends the session immediately; valid at any point.
func (s *Session) Finish() { s.Finished = true }

// Reset replaces the whole session with a newly built one. Nothing changes on
// a build failure.
func (s *Session) Reset(total, seed int) error {
	ns, err := NewSession(total, seed)
	if err != nil {
		return err
	}
	*s = *ns
	return nil
}

// Results summarizes a session for the results view.
type Results struct {
	Scaled       int                    `json:"scaled"`
	Passed       bool                   `json:"passed"`
	CorrectCount int                    `json:"correct_count"`
	Answered     int                    `json:"answered"`
	Total        int                    `json:"total"`
	PerDomain    map[string]DomainTally `json:"per_domain"`
}

// Results computes the scaled score over the questions actually attempted.
func (s *Session) Results() Results {
	scaled := RawToScaled(s.CorrectCount, len(s.Answered))
	perDomain := make(map[string]DomainTally, len(s.PerDomain))
	for d, t := range s.PerDomain {
		perDomain[d] = t
	}
	return Results{
		Scaled:       scaled,
		Passed:       Passed(scaled),
		CorrectCount: s.CorrectCount,
		Answered:     len(s.Answered),
		Total:        len(s.Questions),
		PerDomain:    perDomain,
	}
}

func dedupeInts(in []int) []int {
	seen := make(map[int]struct{}, len(in))
	out := make([]int, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

func equalIntSets(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[int]struct{}, len(a))
	for _, v := range a {
		seen[v] = struct{}{}
	}
	for _, v := range b {
		if _, ok := seen[v]; !ok {
			return false
		}
	}
	return true
}
