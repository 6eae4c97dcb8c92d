package quiz

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestDomainQuotasSumToTotal(t *testing.T) {
	for total := 1; total <= 200; total++ {
		q := domainQuotas(total)
		sum := 0
		for _, n := range q {
			if n < 0 {
				t.Fatalf("total=%d: negative quota %v", total, q)
			}
			sum += n
		}
		if sum != total {
			t.Fatalf("total=%d: quotas sum to %d (%v)", total, sum, q)
		}
	}
}

func TestDomainQuotasBillingAbsorbsRemainder(t *testing.T) {
	// 150 * 0.12 = 18, but the first three round to 36+45+51 = 132, so
	// Billing gets 18 by remainder; at other totals the remainder differs
	// from naive rounding.
	q := domainQuotas(150)
	if q[DomainConcepts] != 36 || q[DomainSecurity] != 45 || q[DomainTech] != 51 || q[DomainBilling] != 18 {
		t.Fatalf("unexpected quotas for 150: %v", q)
	}
}

func TestBuildBankRejectsBadTotal(t *testing.T) {
	for _, total := range []int{0, -1, -150} {
		if _, err := BuildBank(total, 42); err == nil {
			t.Fatalf("total=%d: expected error", total)
		}
	}
}

func TestBuildBankShapeInvariants(t *testing.T) {
	for _, total := range []int{1, 20, 65, 150} {
		bank, err := BuildBank(total, 42)
		if err != nil {
			t.Fatalf("total=%d: %v", total, err)
		}
		if len(bank) > total {
			t.Fatalf("total=%d: got %d questions", total, len(bank))
		}
		seen := map[int]bool{}
		for _, q := range bank {
			if seen[q.ID] {
				t.Fatalf("duplicate id %d", q.ID)
			}
			seen[q.ID] = true
			if q.Prompt == "" || q.Explanation == "" {
				t.Fatalf("q%d: empty prompt or explanation", q.ID)
			}
			wantOpts := 4
			if q.Multi {
				wantOpts = 5
			}
			if len(q.Options) != wantOpts {
				t.Fatalf("q%d: multi=%v with %d options", q.ID, q.Multi, len(q.Options))
			}
			if q.Multi && len(q.Correct) < 2 {
				t.Fatalf("q%d: multi with %d correct indices", q.ID, len(q.Correct))
			}
			if !q.Multi && len(q.Correct) != 1 {
				t.Fatalf("q%d: single with %d correct indices", q.ID, len(q.Correct))
			}
			for _, i := range q.Correct {
				if i < 0 || i >= len(q.Options) {
					t.Fatalf("q%d: correct index %d out of range", q.ID, i)
				}
			}
			if q.OptionExplanations != nil && len(q.OptionExplanations) != len(q.Options) {
				t.Fatalf("q%d: %d option explanations for %d options", q.ID, len(q.OptionExplanations), len(q.Options))
			}
		}
	}
}

func TestBuildBankReproducible(t *testing.T) {
	a, err := BuildBank(150, 42)
	if err != nil {
		t.Fatal(err)
	}
	b, err := BuildBank(150, 42)
	if err != nil {
		t.Fatal(err)
	}
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if !reflect.DeepEqual(a[i], b[i]) {
			t.Fatalf("question %d differs:\n%+v\n%+v", i, a[i], b[i])
		}
	}
}

func TestBuildBankSeedChangesOrder(t *testing.T) {
	a, _ := BuildBank(150, 42)
	b, _ := BuildBank(150, 7)
	same := true
	for i := range a {
		if i >= len(b) || a[i].Prompt != b[i].Prompt {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical order")
	}
}

func TestDedupeFirstWins(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	first := Normalize(mcq(1, DomainConcepts, "  Same prompt? ", []string{"A", "B", "C", "D"}, 0, "first"), rng)
	second := Normalize(mcq(2, DomainConcepts, "same prompt?", []string{"A", "B", "C", "D"}, 1, "second"), rng)
	other := Normalize(mrq(3, DomainConcepts, "same prompt?", []string{"A", "B", "C", "D", "E"}, []int{0, 1}, "multi variant"), rng)

	out := dedupe([]Question{first, second, other})
	if len(out) != 2 {
		t.Fatalf("expected 2 after dedupe, got %d", len(out))
	}
	if out[0].Explanation != "first" {
		t.Fatalf("first occurrence should win, got %q", out[0].Explanation)
	}
	if !out[1].Multi {
		t.Fatal("multi discriminator must keep the multi variant")
	}
}
