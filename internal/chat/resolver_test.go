package chat

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gatbot/internal/models"
	"gatbot/internal/store"
)

type fakeAI struct {
	reply  string
	called bool
}

func (f *fakeAI) Ask(ctx context.Context, question string) string {
	f.called = true
	return f.reply
}

type failingFAQs struct{}

func (failingFAQs) ReadAll(ctx context.Context) ([]models.FAQ, error) {
	return nil, errors.New("store unreachable")
}
func (failingFAQs) ReplaceAll(ctx context.Context, faqs []models.FAQ) error { return nil }
func (failingFAQs) Count(ctx context.Context) (int, error)                  { return 0, nil }
func (failingFAQs) Clear(ctx context.Context) error                         { return nil }

type panickingFAQs struct{}

func (panickingFAQs) ReadAll(ctx context.Context) ([]models.FAQ, error) {
	panic("corrupted corpus")
}
func (panickingFAQs) ReplaceAll(ctx context.Context, faqs []models.FAQ) error { return nil }
func (panickingFAQs) Count(ctx context.Context) (int, error)                  { return 0, nil }
func (panickingFAQs) Clear(ctx context.Context) error                         { return nil }

func newTestResolver(faqs store.FAQStore, ai Completer) *Resolver {
	return NewResolver(ResolverConfig{
		FAQs:       faqs,
		AI:         ai,
		Matcher:    NewMatcher(70, 5),
		AdminName:  "GAT Admin",
		AdminEmail: "admin@example.com",
	})
}

func TestResolveRuleHit(t *testing.T) {
	// A rule hit must win even when a near-identical FAQ exists.
	faqs := store.NewMemoryFAQs(models.FAQ{
		Question: "Who is the HOD of Mechanical Engineering?",
		Answer:   "stored faq answer",
	})
	ai := &fakeAI{reply: "ai answer"}
	r := newTestResolver(faqs, ai)

	res := r.Resolve(context.Background(), "Who is the HOD of Mechanical Engineering?")
	if res.Source != models.SourceRule {
		t.Fatalf("source = %q, want rule", res.Source)
	}
	if !strings.Contains(res.Response, "Bharat Vinjamuri") {
		t.Errorf("response = %q, want the rule-table answer", res.Response)
	}
	if ai.called {
		t.Error("AI must not be consulted on a rule hit")
	}
}

func TestResolveFAQHit(t *testing.T) {
	faqs := store.NewMemoryFAQs(
		models.FAQ{Question: "When was GAT established?", Answer: "Global Academy of Technology (GAT) was established in 2001 under the National Education Foundation (NEF)."},
		models.FAQ{Question: "Where is GAT located?", Answer: "Bengaluru."},
	)
	r := newTestResolver(faqs, &fakeAI{reply: "ai answer"})

	res := r.Resolve(context.Background(), "When was GAT established?")
	if res.Source != models.SourceFAQ {
		t.Fatalf("source = %q, want faq", res.Source)
	}
	if res.Response != "Global Academy of Technology (GAT) was established in 2001 under the National Education Foundation (NEF)." {
		t.Errorf("response = %q, want the stored answer verbatim", res.Response)
	}
}

func TestResolveAIFallback(t *testing.T) {
	// Domain keyword present, no FAQ close enough: the AI stage answers.
	faqs := store.NewMemoryFAQs(models.FAQ{Question: "When was GAT established?", Answer: "2001."})
	ai := &fakeAI{reply: "Hostel fees are around ₹80,000 per year."}
	r := newTestResolver(faqs, ai)

	res := r.Resolve(context.Background(), "Tell me everything there is to know about hostel life")
	if res.Source != models.SourceAI {
		t.Fatalf("source = %q, want ai", res.Source)
	}
	if res.Response != ai.reply {
		t.Errorf("response = %q, want the AI reply", res.Response)
	}
	if !ai.called {
		t.Error("AI was not consulted")
	}
}

func TestResolveStaticFallback(t *testing.T) {
	faqs := store.NewMemoryFAQs()
	ai := &fakeAI{reply: "ai answer"}
	r := newTestResolver(faqs, ai)

	res := r.Resolve(context.Background(), "What's your favorite movie?")
	if res.Source != models.SourceFallback {
		t.Fatalf("source = %q, want fallback", res.Source)
	}
	if !strings.Contains(res.Response, "GAT Admin") || !strings.Contains(res.Response, "admin@example.com") {
		t.Errorf("response = %q, want it to contain the admin contact", res.Response)
	}
	if ai.called {
		t.Error("AI must not be consulted for out-of-domain questions")
	}
}

func TestResolveStoreFailureDegrades(t *testing.T) {
	// A failing corpus read means "no data", not a resolution error.
	r := newTestResolver(failingFAQs{}, &fakeAI{reply: "ai answer"})

	res := r.Resolve(context.Background(), "What's your favorite movie?")
	if res.Source != models.SourceFallback {
		t.Errorf("source = %q, want fallback", res.Source)
	}

	res = r.Resolve(context.Background(), "What is the hostel fee?")
	if res.Source != models.SourceAI {
		t.Errorf("source = %q, want ai for an in-domain question", res.Source)
	}
}

func TestResolvePanicRecovered(t *testing.T) {
	r := newTestResolver(panickingFAQs{}, &fakeAI{})

	res := r.Resolve(context.Background(), "tell me something")
	if res.Source != models.SourceError {
		t.Fatalf("source = %q, want error", res.Source)
	}
	if res.Response != "An error occurred." {
		t.Errorf("response = %q", res.Response)
	}
}

func TestResolveTotality(t *testing.T) {
	faqs := store.NewMemoryFAQs(store.SeedFAQs...)
	r := newTestResolver(faqs, &fakeAI{reply: "ai answer"})

	inputs := []string{
		"",
		"   ",
		"?!.,;:",
		strings.Repeat("placement ", 2000),
		string([]byte{0xff, 0xfe}),
		"日本語の質問",
	}

	valid := map[models.Source]bool{
		models.SourceRule:     true,
		models.SourceFAQ:      true,
		models.SourceAI:       true,
		models.SourceFallback: true,
		models.SourceError:    true,
	}

	for _, in := range inputs {
		res := r.Resolve(context.Background(), in)
		if res.Response == "" {
			t.Errorf("Resolve(%q) returned an empty response", in)
		}
		if !valid[res.Source] {
			t.Errorf("Resolve(%q) returned unknown source %q", in, res.Source)
		}
	}
}
