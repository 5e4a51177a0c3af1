// Package notification delivers order lifecycle notifications over
// configurable channels.
//
// A Channel knows how to deliver a single Message (webhook, email, SMS).
// Channels are collected in an immutable Registry built at startup. The
// Router fans a message out to every enabled channel, isolating failures so
// one broken channel never blocks the others. The webhook channel is wrapped
// in a RetryingChannel that retries transient failures with exponential
// backoff and resolves exhausted deliveries as handled.
//
// The OrderListener bridges the event bus and the router: it translates
// domain events into messages and triggers the fan-out. Notification
// delivery is strictly best-effort, no failure in this package ever
// propagates back to the business operation that produced the event.
package notification
