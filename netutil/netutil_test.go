package netutil

import (
	"testing"
)

func TestValidateCIDR(t *testing.T) {
	validCIDRs := []string{
		"10.0.0.0/16",
		"172.16.0.0/12",
		"192.168.1.0/24",
		"10.0.0.0/8",
		"10.0.1.128/30",
		"0.0.0.0/8",
		"255.255.255.252/30",
	}

	for _, cidr := range validCIDRs {
		if err := ValidateCIDR(cidr); err != nil {
			t.Errorf("correct CIDR block %q tested invalid: %v", cidr, err)
		}
	}

	invalidCIDRs := []string{
		"",
		"10.0.0.0",
		"10.0.0.0/31",
		"10.0.0.0/7",
		"999.0.0.0/16",
		"10.0.0.0/16x",
		"10.256.0.0/16",
		"10.0.0/16",
		"10.0.0.0.0/16",
		"10.0.0.0/",
		"10.0.0.0/123",
		" 10.0.0.0/16",
	}

	for _, cidr := range invalidCIDRs {
		if err := ValidateCIDR(cidr); err == nil {
			t.Errorf("incorrect CIDR block %q tested valid, expected error", cidr)
		}
	}
}
