// Package quiz implements the fixed four-question service recommendation
// questionnaire as a small forward-only state machine.
package quiz

import "errors"

var (
	ErrQuizComplete     = errors.New("quiz already complete")
	ErrUnknownAnswer    = errors.New("answer is not one of the question's options")
	ErrIncompleteAnswer = errors.New("all four answers are required")
)

// Question is one step of the questionnaire with its fixed option list.

type Question struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}

// Answer option vocabulary referenced by the recommendation rules. The rules
// compare raw labels, so these constants must match the option lists below.
const (
	GoalOnlinePresence = "Establish online presence"
	GoalSellOnline     = "Sell products/services online"
	GoalAutomate       = "Automate business processes"
	GoalSoftware       = "Create a software product"

	BudgetTopTier = "KSh 100,000+"
)

var questions = []Question{
	{
		Prompt:  "What is your primary goal?",
		Options: []string{GoalOnlinePresence, GoalSellOnline, GoalAutomate, GoalSoftware},
	},
	{
		Prompt:  "How soon do you need it delivered?",
		Options: []string{"ASAP", "Within 1-3 months", "Within 3-6 months", "Flexible"},
	},
	{
		Prompt:  "What is your budget range?",
		Options: []string{"Under KSh 25,000", "KSh 25,000 - 50,000", "KSh 50,000 - 100,000", BudgetTopTier},
	},
	{
		Prompt:  "How large is your team?",
		Options: []string{"Just me", "2-10 people", "11-50 people", "50+ people"},
	},
}

// NumQuestions is the fixed questionnaire depth.
const NumQuestions = 4

// Questions returns the questionnaire in order.
func Questions() []Question {
	out := make([]Question, len(questions))
	for i, q := range questions {
		opts := make([]string, len(q.Options))
		copy(opts, q.Options)
		out[i] = Question{Prompt: q.Prompt, Options: opts}
	}
	return out
}

// State holds quiz progress. Transitions are strictly forward; Reset is the
// only way back. The zero value is a fresh quiz at question 0.

type State struct {
	answers []string
}

// CurrentQuestionIndex reports the question being asked, NumQuestions once
// the quiz is complete.
func (s *State) CurrentQuestionIndex() int {
	return len(s.answers)
}

// Answers returns the labels collected so far, in order.
func (s *State) Answers() []string {
	out := make([]string, len(s.answers))
	copy(out, s.answers)
	return out
}

// Complete reports whether the terminal state has been reached.
func (s *State) Complete() bool {
	return len(s.answers) >= NumQuestions
}

// Answer records a label for the current question and advances. Answering
// the final question completes the quiz and returns the recommendation;
// until then the returned recommendation is empty.
func (s *State) Answer(label string) (recommendation string, err error) {
	if s.Complete() {
		return "", ErrQuizComplete
	}
	if !validOption(len(s.answers), label) {
		return "", ErrUnknownAnswer
	}
	s.answers = append(s.answers, label)
	if !s.Complete() {
		return "", nil
	}
	return Recommend(s.answers)
}

// Reset returns to question 0 and clears all answers; valid in any state.
func (s *State) Reset() {
	s.answers = nil
}

func validOption(questionIndex int, label string) bool {
	if questionIndex < 0 || questionIndex >= len(questions) {
		return false
	}
	for _, opt := range questions[questionIndex].Options {
		if opt == label {
			return true
		}
	}
	return false
}

// Recommend maps a full answer sequence to a service display name.
//
// Only the goal (answer 1) and budget (answer 3) drive the outcome; the
// delivery and team-size answers are collected but unused, matching the
// production questionnaire. Any goal outside the three special cases falls
// through to the default.
func Recommend(answers []string) (string, error) {
	if len(answers) < NumQuestions {
		return "", ErrIncompleteAnswer
	}
	goal, budget := answers[0], answers[2]

	switch goal {
	case GoalSellOnline:
		return "E-commerce Solutions", nil
	case GoalAutomate:
		return "AI & Automation Solutions", nil
	case GoalSoftware:
		if budget == BudgetTopTier {
			return "SaaS Development", nil
		}
		return "Custom Software Development", nil
	default:
		return "Web Design & Development", nil
	}
}
