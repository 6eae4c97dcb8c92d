package http

import "github.com/cloudprep/ccpquiz/internal/quiz"

// QuestionView is a question as served to the browser: the answer key and
// explanation are stripped until the question is answered. Select tells the
// UI how many options to collect. Options must be rendered in the order
// given; the grader works in option indices.
type QuestionView struct {
	ID      int      `json:"id"`
	Domain  string   `json:"domain"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
	Multi   bool     `json:"multi"`
	Select  int      `json:"select"`
	Index   int      `json:"index"`
	Total   int      `json:"total"`
}

func viewOf(q quiz.Question, index, total int) QuestionView {
	sel := 1
	if q.Multi {
		sel = len(q.Correct)
	}
	return QuestionView{
		ID:      q.ID,
		Domain:  q.Domain,
		Prompt:  q.Prompt,
		Options: q.Options,
		Multi:   q.Multi,
		Select:  sel,
		Index:   index,
		Total:   total,
	}
}

// OptionFeedback pairs an option label with its rationale, shown after a
// submission. Falls back to the option catalog when the question carries no
// per-option explanations.
type OptionFeedback struct {
	Label string `json:"label"`
	Note  string `json:"note"`
}

func optionFeedback(q quiz.Question) []OptionFeedback {
	correct := make(map[int]bool, len(q.Correct))
	for _, i := range q.Correct {
		correct[i] = true
	}
	out := make([]OptionFeedback, len(q.Options))
	for i, label := range q.Options {
		note := ""
		if i < len(q.OptionExplanations) {
			note = q.OptionExplanations[i]
		}
		if note == "" {
			note = quiz.OptionNote(label, correct[i])
		}
		out[i] = OptionFeedback{Label: label, Note: note}
	}
	return out
}
