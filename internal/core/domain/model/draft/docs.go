// Package draft provides the draft order aggregate: the server-side record
// that preserves a wizard session's partial progress.
//
// Key business rules:
//   - A draft is created lazily on the first transition past the first page
//     and updated in place afterwards; one session never owns two drafts
//   - Every update is a full replace of the stored snapshot (last write wins),
//     never a field-level merge
//   - Drafts are superseded, not deleted, when the intake is finalized; the
//     final order keeps a reference back to the draft id for traceability
package draft
