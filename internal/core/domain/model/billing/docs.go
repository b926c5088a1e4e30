// Package billing holds the money side of a confirmed order: the
// reconciliation of the frozen final price against refunds, the producer
// payout scheduled after confirmation, and the refunds issued when a
// dispute resolves against the producer.
package billing
