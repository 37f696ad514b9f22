package badges

import (
	"reflect"
	"testing"
)

func TestCheck_SingleUnlock(t *testing.T) {
	got := Check(Stats{TotalXP: 550}, map[string]bool{})
	want := []string{"XP_500"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Check = %v, want %v", got, want)
	}
}

func TestCheck_Idempotent(t *testing.T) {
	stats := Stats{TotalXP: 550}
	first := Check(stats, map[string]bool{})
	if len(first) != 1 {
		t.Fatalf("first Check = %v, want one code", first)
	}

	already := map[string]bool{}
	for _, code := range first {
		already[code] = true
	}
	if second := Check(stats, already); len(second) != 0 {
		t.Errorf("second Check = %v, want empty", second)
	}

	// Still empty even when the stats grow and re-satisfy the predicate.
	if third := Check(Stats{TotalXP: 1200}, already); len(third) != 0 {
		t.Errorf("Check after stats grew = %v, want empty", third)
	}
}

func TestCheck_MultipleUnlocksInDeclarationOrder(t *testing.T) {
	got := Check(Stats{Streak: 7, TotalXP: 2000}, map[string]bool{})
	want := []string{"STREAK_3", "STREAK_7", "XP_500", "XP_2000"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Check = %v, want %v (declaration order)", got, want)
	}
}

func TestCheck_PerfectDay(t *testing.T) {
	got := Check(Stats{PerfectDay: true}, map[string]bool{})
	want := []string{"PERFECT_DAY"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Check = %v, want %v", got, want)
	}
}

func TestCheck_NothingSatisfied(t *testing.T) {
	if got := Check(Stats{TotalXP: 499, Streak: 2, TotalSessions: 9}, map[string]bool{}); len(got) != 0 {
		t.Errorf("Check = %v, want empty", got)
	}
}

func TestCheck_PartiallyUnlocked(t *testing.T) {
	already := map[string]bool{"STREAK_3": true, "XP_500": true}
	got := Check(Stats{Streak: 8, TotalXP: 600}, already)
	want := []string{"STREAK_7"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Check = %v, want %v", got, want)
	}
}

func TestCatalog_CodesUniqueAndStable(t *testing.T) {
	seen := map[string]bool{}
	for _, cond := range Catalog() {
		if seen[cond.Code] {
			t.Errorf("duplicate badge code %q", cond.Code)
		}
		seen[cond.Code] = true
		if cond.Satisfied == nil {
			t.Errorf("badge %q has no predicate", cond.Code)
		}
	}
	if len(seen) != 10 {
		t.Errorf("catalog has %d badges, want 10", len(seen))
	}
}
