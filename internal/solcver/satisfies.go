package solcver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/blang/semver/v4"
)

var (
	ErrInvalidRange   = errors.New("solcver: invalid range expression")
	ErrInvalidVersion = errors.New("solcver: invalid version")
)

// ParseVersion accepts "0.7.0", "v0.7.0" and short forms such as "0.7".
func ParseVersion(s string) (semver.Version, error) {
	v, err := semver.ParseTolerant(strings.TrimSpace(s))
	if err != nil {
		return semver.Version{}, fmt.Errorf("%w %q: %v", ErrInvalidVersion, s, err)
	}
	return v, nil
}

// Satisfies reports whether version matches rangeExpr.
func Satisfies(rangeExpr, version string) (bool, error) {
	r, err := semver.ParseRange(strings.TrimSpace(rangeExpr))
	if err != nil {
		return false, fmt.Errorf("%w %q: %v", ErrInvalidRange, rangeExpr, err)
	}
	v, err := ParseVersion(version)
	if err != nil {
		return false, err
	}
	return r(v), nil
}
