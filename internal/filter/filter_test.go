package filter

import (
	"testing"

	"quizview/internal/question"
)

func sampleBank() []question.Record {
	return []question.Record{
		{Number: 1, Type: "choice", Text: "What is 1+1? A.1 B.2", Answer: "B"},
		{Number: 2, Type: "true-false", Text: "The sky is blue", Answer: "true"},
		{Number: 12, Type: "choice", Text: "Select the Go keyword A.func B.fn", Answer: "A"},
		{Number: 30, Type: "true-false", Text: "Regex (a+)* is safe", Answer: "false"},
	}
}

// TestApplyUnrestrictedReturnsFullSet verifies empty search and "all" keep everything in order.
func TestApplyUnrestrictedReturnsFullSet(t *testing.T) {
	bank := sampleBank()
	got := Apply(bank, Criteria{Search: "", Type: AllTypes})
	if len(got) != len(bank) {
		t.Fatalf("expected %d records, got %d", len(bank), len(got))
	}
	for i := range bank {
		if got[i].Number != bank[i].Number {
			t.Fatalf("order changed at %d: %d != %d", i, got[i].Number, bank[i].Number)
		}
	}
}

// TestApplyUnrestrictedCopiesFullSet verifies the unfiltered view does not
// alias the full set.
func TestApplyUnrestrictedCopiesFullSet(t *testing.T) {
	bank := sampleBank()
	got := Apply(bank, Criteria{})
	got[0].Text = "changed"
	if bank[0].Text == "changed" {
		t.Fatalf("expected the view to be a copy of the full set")
	}
	if empty := Apply(nil, Criteria{}); empty == nil || len(empty) != 0 {
		t.Fatalf("expected an empty non-nil view, got %#v", empty)
	}
}

// TestApplyMatchesNumberSubstring verifies number matches even without text matches.
func TestApplyMatchesNumberSubstring(t *testing.T) {
	bank := []question.Record{
		{Number: 1, Type: "choice", Text: "alpha"},
		{Number: 2, Type: "choice", Text: "beta"},
	}
	got := Apply(bank, Criteria{Search: "2", Type: AllTypes})
	if len(got) != 1 || got[0].Number != 2 {
		t.Fatalf("expected record 2, got %+v", got)
	}
}

// TestApplySearchIsCaseInsensitive verifies text search ignores case.
func TestApplySearchIsCaseInsensitive(t *testing.T) {
	got := Apply(sampleBank(), Criteria{Search: "SKY", Type: AllTypes})
	if len(got) != 1 || got[0].Number != 2 {
		t.Fatalf("expected record 2, got %+v", got)
	}
}

// TestApplyTypeAndSearchCombine verifies both predicates must hold.
func TestApplyTypeAndSearchCombine(t *testing.T) {
	got := Apply(sampleBank(), Criteria{Search: "1", Type: "choice"})
	if len(got) != 2 || got[0].Number != 1 || got[1].Number != 12 {
		t.Fatalf("expected records 1 and 12, got %+v", got)
	}
}

// TestApplyUnknownTypeIsEmpty verifies a type without records yields nothing.
func TestApplyUnknownTypeIsEmpty(t *testing.T) {
	got := Apply(sampleBank(), Criteria{Search: "sky", Type: "essay"})
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil result, got %#v", got)
	}
}

// TestApplyTreatsSearchLiterally verifies regex metacharacters are plain text.
func TestApplyTreatsSearchLiterally(t *testing.T) {
	got := Apply(sampleBank(), Criteria{Search: "(a+)*", Type: AllTypes})
	if len(got) != 1 || got[0].Number != 30 {
		t.Fatalf("expected record 30, got %+v", got)
	}
	if got := Apply(sampleBank(), Criteria{Search: ".*", Type: AllTypes}); len(got) != 0 {
		t.Fatalf("expected no matches for .*, got %+v", got)
	}
}

// TestApplyEmptyBank verifies nil input is safe.
func TestApplyEmptyBank(t *testing.T) {
	if got := Apply(nil, Criteria{Search: "x", Type: "choice"}); len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}

// TestTypesFirstAppearanceOrder verifies distinct types keep bank order.
func TestTypesFirstAppearanceOrder(t *testing.T) {
	got := Types(sampleBank())
	if len(got) != 2 || got[0] != "choice" || got[1] != "true-false" {
		t.Fatalf("unexpected types: %v", got)
	}
}

// TestCriteriaUnrestricted verifies the sentinel and empty type both mean no restriction.
func TestCriteriaUnrestricted(t *testing.T) {
	if !(Criteria{Type: AllTypes}).Unrestricted() || !(Criteria{}).Unrestricted() {
		t.Fatalf("expected unrestricted criteria")
	}
	if (Criteria{Search: "x"}).Unrestricted() {
		t.Fatalf("expected search to restrict")
	}
}
