// Package wizard contains the client-facing state machine of the intake
// workflow. A Session owns one FormState, sequences the wizard steps, invokes
// validation and duplicate checks at the right transitions, drives draft
// saves and performs the final submission.
//
// Sessions serialize their transitions: a step advance requested while a
// draft save is still outstanding waits for it instead of interleaving.
// Every store-bound call runs under the session context, so closing the
// session cancels in-flight work and any response that still arrives is
// discarded rather than applied to a torn-down form.
package wizard
