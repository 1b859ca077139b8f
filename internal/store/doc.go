// Package store persists the feeder state and the feed history.
//
// The state is kept as a single flat text record (see [EncodeRecord]) so that
// every backend stores exactly the same thing. Three backends implement
// [Store]:
//   - [FileStore] writes the record to a text file and the history as JSON lines
//   - [BoltStore] keeps both in a BoltDB file
//   - [SQLiteStore] keeps both in a SQLite database with embedded migrations
//
// # Failure Handling
//
// Reading the state never fails the caller: [Load] substitutes [DefaultState]
// for a missing or corrupt record. [Save] logs and returns write failures so
// the caller can report them.
//
//	st := store.Load(s, logger)
//	...
//	_ = store.Save(s, st, logger)
package store
