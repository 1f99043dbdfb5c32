// Package formstore keeps form session snapshots between requests.
//
// A snapshot is the formstate.FormState of a session, keyed by an opaque
// session id. Two implementations are provided: MemoryStore for single
// process deployments and tests, and RedisStore for shared storage.
//
//	store := formstore.NewMemoryStore(30*time.Minute, time.Minute)
//	defer store.Close()
//
//	if err := store.Save(ctx, id, form.State()); err != nil { ... }
//	snap, err := store.Load(ctx, id)
//	if errors.Is(err, formstore.ErrNotFound) { ... }
//	_ = form.Restore(snap)
//
// Stores never hand out shared references: saved and loaded snapshots are
// copies.
package formstore
