package validate

// Tracker remembers the invoice identities seen during one batch run.
// The engine consults it only for records that carry both a vendor and an
// invoice number. A Tracker is owned by a single run and never shared.
type Tracker struct {
	seen map[string]struct{}
}

// NewTracker returns an empty tracker for one batch run.
func NewTracker() *Tracker {
	return &Tracker{seen: make(map[string]struct{})}
}

// Seen reports whether the key was recorded earlier in the run.
func (t *Tracker) Seen(key string) bool {
	_, ok := t.seen[key]
	return ok
}

// Record marks the key as seen.
func (t *Tracker) Record(key string) {
	t.seen[key] = struct{}{}
}
