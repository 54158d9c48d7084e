package model

import (
	"fmt"
)

// vpc-aws manages at most one NAT gateway per availability zone. Each one
// lives in the zone's public subnet, owns a dedicated elastic IP, and serves
// as the default-route target of the zone's private route table.
type NATGateway struct {
	publicSubnet  Subnet
	privateSubnet Subnet
}

func NewNATGateway(public Subnet, private Subnet) NATGateway {
	if public.Private {
		panic(fmt.Sprintf("[bug] assertion failed: NAT gateway must be placed in a public subnet but got: %+v", public))
	}
	return NATGateway{
		publicSubnet:  public,
		privateSubnet: private,
	}
}

func (g NATGateway) LogicalName() string {
	return "NatGateway" + g.publicSubnet.AvailabilityZoneLogicalName()
}

func (g NATGateway) EIPLogicalName() string {
	return g.LogicalName() + "EIP"
}

func (g NATGateway) RouteLogicalName() string {
	return "RouteToNatGateway" + g.privateSubnet.AvailabilityZoneLogicalName()
}

func (g NATGateway) PublicSubnet() Subnet {
	return g.publicSubnet
}

func (g NATGateway) PrivateSubnet() Subnet {
	return g.privateSubnet
}
