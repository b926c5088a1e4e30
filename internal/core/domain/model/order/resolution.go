package order

import (
	"fmt"

	"printmarket/internal/pkg/errs"
)

// DisputeResolution is the closed set of outcomes an admin can give an open
// dispute.
type DisputeResolution int

const (
	// ResolutionUnknown represents an invalid or undefined resolution.
	ResolutionUnknown DisputeResolution = iota

	// ResolutionConfirm closes the dispute in the producer's favor and
	// confirms the order.
	ResolutionConfirm

	// ResolutionRefund closes the dispute with a full refund.
	ResolutionRefund

	// ResolutionPartialRefund closes the dispute with a partial refund.
	ResolutionPartialRefund
)

func getResolutionStrings() map[DisputeResolution]string {
	return map[DisputeResolution]string{
		ResolutionUnknown:       "unknown",
		ResolutionConfirm:       "confirm",
		ResolutionRefund:        "refund",
		ResolutionPartialRefund: "partial_refund",
	}
}

// ResolutionFromString parses the transported string form of a resolution.
func ResolutionFromString(value string) (DisputeResolution, error) {
	for resolution, str := range getResolutionStrings() {
		if resolution != ResolutionUnknown && str == value {
			return resolution, nil
		}
	}
	return ResolutionUnknown, errs.NewValueIsInvalidErrorWithCause(
		"resolution is invalid",
		fmt.Errorf("%q is not a valid dispute resolution", value),
	)
}

// String returns the transported name of the resolution.
func (r DisputeResolution) String() string {
	if str, ok := getResolutionStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the DisputeResolution value is valid.
func (r DisputeResolution) Validate() error {
	if r == ResolutionUnknown {
		return errs.NewValueIsInvalidErrorWithCause("resolution is invalid",
			fmt.Errorf("%d is not a valid dispute resolution", r))
	}
	if _, ok := getResolutionStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("resolution is invalid",
			fmt.Errorf("%d is not a valid dispute resolution", r))
	}
	return nil
}

// TargetStatus returns the order status this resolution moves a dispute to.
func (r DisputeResolution) TargetStatus() (Status, error) {
	switch r {
	case ResolutionConfirm:
		return Confirmed, nil
	case ResolutionRefund:
		return Refunded, nil
	case ResolutionPartialRefund:
		return PartialRefund, nil
	default:
		return Unknown, r.Validate()
	}
}
