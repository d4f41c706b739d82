package quiz

import (
	"errors"
	"testing"

	"github.com/trader2544/telvix-quote-service/internal/domain/pricing"
)

func answerAll(t *testing.T, s *State, labels ...string) string {
	t.Helper()
	var rec string
	for _, l := range labels {
		var err error
		rec, err = s.Answer(l)
		if err != nil {
			t.Fatalf("Answer(%q): %v", l, err)
		}
	}
	return rec
}

func TestStateTransitions(t *testing.T) {
	t.Run("advances one question per answer", func(t *testing.T) {
		var s State
		if s.CurrentQuestionIndex() != 0 {
			t.Fatalf("fresh state at question %d", s.CurrentQuestionIndex())
		}
		if _, err := s.Answer(GoalOnlinePresence); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.CurrentQuestionIndex() != 1 || s.Complete() {
			t.Fatalf("unexpected state: index=%d complete=%v", s.CurrentQuestionIndex(), s.Complete())
		}
	})

	t.Run("fourth answer terminates with a recommendation", func(t *testing.T) {
		var s State
		rec := answerAll(t, &s, GoalOnlinePresence, "ASAP", "Under KSh 25,000", "Just me")
		if rec == "" {
			t.Fatal("expected a recommendation on the fourth answer")
		}
		if !s.Complete() || s.CurrentQuestionIndex() != NumQuestions {
			t.Fatalf("expected terminal state, got index=%d", s.CurrentQuestionIndex())
		}
	})

	t.Run("no transitions past the terminal state", func(t *testing.T) {
		var s State
		answerAll(t, &s, GoalOnlinePresence, "ASAP", "Under KSh 25,000", "Just me")
		if _, err := s.Answer("Just me"); !errors.Is(err, ErrQuizComplete) {
			t.Fatalf("expected ErrQuizComplete, got %v", err)
		}
	})

	t.Run("rejects labels outside the option list", func(t *testing.T) {
		var s State
		if _, err := s.Answer("World domination"); !errors.Is(err, ErrUnknownAnswer) {
			t.Fatalf("expected ErrUnknownAnswer, got %v", err)
		}
		if s.CurrentQuestionIndex() != 0 {
			t.Fatal("rejected answer must not advance the quiz")
		}
	})

	t.Run("reset from terminal state", func(t *testing.T) {
		var s State
		answerAll(t, &s, GoalSellOnline, "Flexible", BudgetTopTier, "50+ people")
		s.Reset()
		if s.CurrentQuestionIndex() != 0 || len(s.Answers()) != 0 {
			t.Fatalf("unexpected state after reset: index=%d answers=%v", s.CurrentQuestionIndex(), s.Answers())
		}
	})

	t.Run("reset mid-quiz", func(t *testing.T) {
		var s State
		if _, err := s.Answer(GoalAutomate); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		s.Reset()
		if s.CurrentQuestionIndex() != 0 {
			t.Fatal("expected question 0 after reset")
		}
	})
}

func TestRecommend(t *testing.T) {
	t.Run("requires all four answers", func(t *testing.T) {
		if _, err := Recommend([]string{GoalSellOnline, "ASAP", BudgetTopTier}); !errors.Is(err, ErrIncompleteAnswer) {
			t.Fatalf("expected ErrIncompleteAnswer, got %v", err)
		}
	})

	// The delivery (2nd) and team-size (4th) answers do not influence the
	// outcome. These cases pin that behavior.
	t.Run("sell online wins regardless of other answers", func(t *testing.T) {
		for _, delivery := range []string{"ASAP", "Flexible"} {
			for _, team := range []string{"Just me", "50+ people"} {
				rec, err := Recommend([]string{GoalSellOnline, delivery, "Under KSh 25,000", team})
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if rec != "E-commerce Solutions" {
					t.Fatalf("delivery=%q team=%q: got %q", delivery, team, rec)
				}
			}
		}
	})

	t.Run("automation goal", func(t *testing.T) {
		rec, _ := Recommend([]string{GoalAutomate, "ASAP", BudgetTopTier, "2-10 people"})
		if rec != "AI & Automation Solutions" {
			t.Fatalf("got %q", rec)
		}
	})

	t.Run("software product splits on budget", func(t *testing.T) {
		rec, _ := Recommend([]string{GoalSoftware, "Flexible", BudgetTopTier, "Just me"})
		if rec != "SaaS Development" {
			t.Fatalf("top-tier budget: got %q", rec)
		}
		for _, budget := range []string{"Under KSh 25,000", "KSh 25,000 - 50,000", "KSh 50,000 - 100,000"} {
			rec, _ := Recommend([]string{GoalSoftware, "Flexible", budget, "Just me"})
			if rec != "Custom Software Development" {
				t.Fatalf("budget=%q: got %q", budget, rec)
			}
		}
	})

	t.Run("default goal", func(t *testing.T) {
		rec, _ := Recommend([]string{GoalOnlinePresence, "ASAP", BudgetTopTier, "Just me"})
		if rec != "Web Design & Development" {
			t.Fatalf("got %q", rec)
		}
	})

	t.Run("unrecognized goal falls through to the default", func(t *testing.T) {
		rec, err := Recommend([]string{"Something else entirely", "ASAP", BudgetTopTier, "Just me"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec != "Web Design & Development" {
			t.Fatalf("got %q", rec)
		}
	})
}

// Every recommendation the rules can produce must resolve to a catalog
// offering, otherwise the quote flow dead-ends.
func TestRecommendationsResolveToCatalog(t *testing.T) {
	goals := append(Questions()[0].Options, "unmapped goal")
	budgets := Questions()[2].Options
	for _, goal := range goals {
		for _, budget := range budgets {
			rec, err := Recommend([]string{goal, "ASAP", budget, "Just me"})
			if err != nil {
				t.Fatalf("goal=%q budget=%q: %v", goal, budget, err)
			}
			if _, ok := pricing.FindServiceByName(rec); !ok {
				t.Errorf("recommendation %q is not a catalog offering", rec)
			}
		}
	}
}

func TestQuestionsAreCopies(t *testing.T) {
	qs := Questions()
	qs[0].Options[0] = "mutated"
	if Questions()[0].Options[0] == "mutated" {
		t.Fatal("question options were mutated through the accessor")
	}
}
