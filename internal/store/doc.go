// Package store provides persistence for the calculator's preferences.
//
// It contains concrete implementations of domain.PreferenceStore. Each store
// holds a flat string map, like the preference set of a mobile platform:
//   - PrefsFileStore    JSON file, written atomically via temp file + rename
//   - SealedFileStore   the same map sealed with a passphrase (scrypt +
//     ChaCha20-Poly1305)
//   - SQLiteStore       a single preferences table in a SQLite database
//   - MemoryStore       process memory, for tests and --ephemeral runs
//
// All methods are concurrency-safe via internal locking.
package store
