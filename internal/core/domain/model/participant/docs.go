// Package participant provides the marketplace user aggregate: customers,
// producers and platform admins.
//
// For producers it additionally models fabrication capabilities, the supported
// material set and declared printers with build volume limits, which the
// producer matching service uses to decide pool eligibility, plus fulfillment
// counters advanced when orders are confirmed.
package participant
