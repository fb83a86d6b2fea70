package props

// MergeInto copies r's entries into target. On a key collision r's entry
// wins. Repositories are unioned, so the target's list never gains a
// duplicate. Overlays are copied so the two registries never share one.
//
// Merging is idempotent: doing it twice leaves target as it was after the
// first merge. Merging a registry into itself changes nothing.
func (r *Registry) MergeInto(target *Registry) {
	if target == nil {
		panic("props: merge into nil registry")
	}
	if target == r {
		return
	}
	target.tokenTypes.PutAll(r.tokenTypes.Snapshot())
	target.lights.PutAll(r.lights.Snapshot())
	target.sights.PutAll(r.sights.Snapshot())
	target.tables.PutAll(r.tables.Snapshot())
	target.states.PutAll(cloneStates(r.states.Snapshot()))
	target.bars.PutAll(cloneBars(r.bars.Snapshot()))
	target.sheets.PutAll(r.sheets.Snapshot())
	target.repos.AddAll(r.repos.Values()...)
}
