// Package reconcile implements the synchronization reconciliation engine:
// a last-write-wins merge over two keyed collections of records plus the
// push/delete classification used to drive a one-way sync transport.
//
// Every function in the package is pure: no I/O, no logging, no mutation of
// its inputs. Callers may invoke them concurrently.
package reconcile

// Keyed is implemented by any row that can take part in a reconciliation
// pass. SyncUpdatedAt returns an ISO-8601 stamp, or "" when the row was
// never explicitly stamped.
type Keyed interface {
	SyncID() string
	SyncUpdatedAt() string
}

// Result is the outcome of one reconciliation pass. Merged holds exactly one
// record per id appearing in either input. The four id slices are disjoint;
// an id whose two sides tie on timestamp (including the both-missing case)
// is resolved to the local record and appears in none of them.
type Result[T Keyed] struct {
	Merged     []T
	LocalWins  []string
	RemoteWins []string
	NewLocal   []string
	NewRemote  []string
}

// Merge reconciles a local and a remote snapshot of the same logical
// collection. For an id present on both sides the record with the strictly
// newer stamp wins; ties keep the local record, so a less fresh remote read
// never overwrites local state. An id present on one side only is kept
// unconditionally: deletion is inferred by DeletedIDs, never here.
//
// Duplicate ids within a single side are tolerated: the last occurrence in
// slice order is the deterministic winner for that side's lookup.
//
// Merged is ordered local-first (deduplicated local slice order) followed by
// remote-only ids in remote slice order. Callers needing a different order
// re-sort.
func Merge[T Keyed](local, remote []T) Result[T] {
	localIdx, localOrder := index(local)
	remoteIdx, remoteOrder := index(remote)

	res := Result[T]{Merged: make([]T, 0, len(localOrder)+len(remoteOrder))}

	for _, id := range localOrder {
		l := localIdx[id]
		r, ok := remoteIdx[id]
		if !ok {
			res.Merged = append(res.Merged, l)
			res.NewLocal = append(res.NewLocal, id)
			continue
		}
		switch CompareStamps(l.SyncUpdatedAt(), r.SyncUpdatedAt()) {
		case 1:
			res.Merged = append(res.Merged, l)
			res.LocalWins = append(res.LocalWins, id)
		case -1:
			res.Merged = append(res.Merged, r)
			res.RemoteWins = append(res.RemoteWins, id)
		default:
			res.Merged = append(res.Merged, l)
		}
	}

	for _, id := range remoteOrder {
		if _, ok := localIdx[id]; ok {
			continue
		}
		res.Merged = append(res.Merged, remoteIdx[id])
		res.NewRemote = append(res.NewRemote, id)
	}

	return res
}

// index builds the id lookup for one side and the deduplicated iteration
// order. Later occurrences of a duplicated id replace earlier ones without
// changing the id's position in the order.
func index[T Keyed](records []T) (map[string]T, []string) {
	idx := make(map[string]T, len(records))
	order := make([]string, 0, len(records))
	for _, rec := range records {
		id := rec.SyncID()
		if _, seen := idx[id]; !seen {
			order = append(order, id)
		}
		idx[id] = rec
	}
	return idx, order
}
