package participant

import (
	"fmt"

	"printmarket/internal/pkg/errs"
)

// Role is the closed set of marketplace roles a participant can hold.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleCustomer orders fabrications.
	RoleCustomer

	// RoleProducer fulfills orders from the shared pool.
	RoleProducer

	// RoleAdmin operates the platform and resolves disputes.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "unknown",
		RoleCustomer: "customer",
		RoleProducer: "producer",
		RoleAdmin:    "admin",
	}
}

// RoleFromString parses the persisted string form of a role.
func RoleFromString(value string) (Role, error) {
	for role, str := range getRoleStrings() {
		if role != RoleUnknown && str == value {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role is invalid",
		fmt.Errorf("%q is not a valid role", value),
	)
}

// String returns the persisted name of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if r == RoleUnknown {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid",
			fmt.Errorf("%d is not a valid role", r))
	}
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}
