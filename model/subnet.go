package model

import (
	"github.com/cloudnative-incubator/vpc-aws/naming"
)

type Subnet struct {
	AvailabilityZone string `yaml:"availabilityZone,omitempty"`
	CIDR             string `yaml:"cidr,omitempty"`
	Private          bool
}

func NewPublicSubnet(az string, cidr string) Subnet {
	return Subnet{
		AvailabilityZone: az,
		CIDR:             cidr,
		Private:          false,
	}
}

func NewPrivateSubnet(az string, cidr string) Subnet {
	return Subnet{
		AvailabilityZone: az,
		CIDR:             cidr,
		Private:          true,
	}
}

func (s Subnet) Public() bool {
	return !s.Private
}

// VisibilityType is the tag value identifying the subnet's visibility class.
func (s Subnet) VisibilityType() string {
	if s.Private {
		return "private"
	}
	return "public"
}

func (s Subnet) AvailabilityZoneLogicalName() string {
	return naming.FromNameToCfnResource(s.AvailabilityZone)
}

func (s Subnet) LogicalName() string {
	if s.Private {
		return "PrivateSubnet" + s.AvailabilityZoneLogicalName()
	}
	return "PublicSubnet" + s.AvailabilityZoneLogicalName()
}

func (s Subnet) RouteTableAssociationLogicalName() string {
	return s.LogicalName() + "RouteTableAssociation"
}
