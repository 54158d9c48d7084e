package netutil

import (
	"fmt"
	"regexp"
	"strconv"
)

const (
	minPrefixLength = 8
	maxPrefixLength = 30
)

var cidrRegexp = regexp.MustCompile(`^(\d{1,3})\.(\d{1,3})\.(\d{1,3})\.(\d{1,3})/(\d{1,2})$`)

// ValidateCIDR checks that s has the shape of a usable IPv4 CIDR block:
// four dot-separated octets in the 0-255 range followed by a prefix length
// between 8 and 30. It is a syntax check only; whether the address is the
// canonical network address of the block is left to the provisioning engine.
func ValidateCIDR(s string) error {
	m := cidrRegexp.FindStringSubmatch(s)
	if m == nil {
		return fmt.Errorf("%q is not a valid CIDR block: must be formatted like 10.0.0.0/16", s)
	}
	for _, part := range m[1:5] {
		octet, err := strconv.Atoi(part)
		if err != nil {
			return fmt.Errorf("%q is not a valid CIDR block: %v", s, err)
		}
		if octet > 255 {
			return fmt.Errorf("%q is not a valid CIDR block: octet %d is out of range", s, octet)
		}
	}
	prefixLength, err := strconv.Atoi(m[5])
	if err != nil {
		return fmt.Errorf("%q is not a valid CIDR block: %v", s, err)
	}
	if prefixLength < minPrefixLength || prefixLength > maxPrefixLength {
		return fmt.Errorf("%q is not a valid CIDR block: prefix length must be between /%d and /%d", s, minPrefixLength, maxPrefixLength)
	}
	return nil
}
