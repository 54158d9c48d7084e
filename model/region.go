package model

import (
	"strings"

	"github.com/aws/aws-sdk-go/aws/endpoints"
)

type Region struct {
	name string
}

func RegionForName(name string) Region {
	return Region{
		name: name,
	}
}

// RegionFromAvailabilityZone derives the region an availability zone belongs
// to by stripping the trailing zone letters, e.g. us-west-2a -> us-west-2.
func RegionFromAvailabilityZone(az string) Region {
	return Region{
		name: strings.TrimRight(az, "abcdefghijklmnopqrstuvwxyz"),
	}
}

// Known reports whether the region exists in the SDK's bundled endpoint
// metadata. The lookup is entirely offline; an unknown region is worth a
// warning but may simply postdate the SDK release.
func (r Region) Known() bool {
	for _, p := range endpoints.DefaultPartitions() {
		if _, ok := p.Regions()[r.name]; ok {
			return true
		}
	}
	return false
}

func (r Region) String() string {
	return r.name
}
