package reconcile

// ItemsToPush returns every local record that is absent remotely or strictly
// newer than its remote counterpart. These are the push candidates for a
// one-way-to-remote sync; performing the push belongs to the transport, not
// to this package.
func ItemsToPush[T Keyed](local, remote []T) []T {
	remoteIdx, _ := index(remote)

	var out []T
	seen := make(map[string]bool, len(local))
	for i := len(local) - 1; i >= 0; i-- {
		// Walk backwards so the last occurrence of a duplicated id wins,
		// consistent with Merge.
		l := local[i]
		id := l.SyncID()
		if seen[id] {
			continue
		}
		seen[id] = true
		r, ok := remoteIdx[id]
		if !ok || CompareStamps(l.SyncUpdatedAt(), r.SyncUpdatedAt()) > 0 {
			out = append(out, l)
		}
	}
	// Restore input order.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// DeletedIDs returns the ids present remotely but absent locally, in remote
// order. Under a one-way-to-remote sync, local absence means the user
// deleted the record, so these are candidates for remote deletion. An id
// that is new only remotely is the caller's to pull via Merge; it is neither
// pushed nor deleted.
func DeletedIDs[T Keyed](local, remote []T) []string {
	localIdx, _ := index(local)
	_, remoteOrder := index(remote)

	var out []string
	for _, id := range remoteOrder {
		if _, ok := localIdx[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}
