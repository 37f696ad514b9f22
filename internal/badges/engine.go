package badges

// Check returns the codes of badges newly unlocked by the given stats, in
// catalog declaration order.
//
// A badge is newly unlocked iff its predicate holds and its code is absent
// from alreadyUnlocked. Idempotency depends on the caller supplying an
// accurate set, so concurrent checks for one user must be serialized at the
// persistence layer.
func Check(stats Stats, alreadyUnlocked map[string]bool) []string {
	var newly []string
	for _, cond := range Catalog() {
		if alreadyUnlocked[cond.Code] {
			continue
		}
		if cond.Satisfied(stats) {
			newly = append(newly, cond.Code)
		}
	}
	return newly
}
