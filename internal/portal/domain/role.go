package domain

import (
	"fmt"
	"strings"
)

// Role is derived from registry state for a wallet address. It is never
// stored; it is recomputed whenever the address changes.
type Role int

const (
	RoleDefault Role = iota
	RoleVerifier
	RoleOwner
)

func (r Role) String() string {
	switch r {
	case RoleOwner:
		return "owner"
	case RoleVerifier:
		return "verifier"
	default:
		return "default"
	}
}

// ParseRole accepts the lower-case names produced by String.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "owner":
		return RoleOwner, nil
	case "verifier":
		return RoleVerifier, nil
	case "default", "":
		return RoleDefault, nil
	}
	return RoleDefault, fmt.Errorf("domain: unknown role %q", s)
}

func (r Role) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

func (r *Role) UnmarshalText(b []byte) error {
	parsed, err := ParseRole(string(b))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
