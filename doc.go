// Package finch is the client foundation of the `fin` command-line tool, a
// single-user monthly finance dashboard backed by a small HTTP/JSON service.
//
// The core functionalities include:
//   - Resource Client: a typed boundary to the service's endpoints (users,
//     categories, income, expenses, analysis, recommendations) with no
//     business logic of its own.
//   - Synchronization: the Syncer fetches the four month-scoped resources
//     concurrently and commits them as one consistent Snapshot; superseded
//     refreshes are detected by sequence number and never reach the screen.
//   - Session: the immutable per-run context, the user identity and the
//     global category set, fetched once at startup.
//   - View model: pure presentation mappings (currency and percent strings,
//     category resolution with a placeholder fallback, budget tone,
//     recommendation capping) recomputed on every render.
//
// The service owns all derived figures; this package never recomputes an
// analysis client-side. A failed read degrades to partial data instead of
// failing the whole refresh.
package finch
