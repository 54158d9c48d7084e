package model

// RouteTable is an ownership link between the VPC and a set of routes.
// Public subnets share a single table with a default route to the internet
// gateway; each private subnet gets a table scoped to its own zone whose
// default route, if any, targets the zone's NAT gateway.
type RouteTable struct {
	// Subnet is the zone-scoped owner for private tables. Ignored when
	// Shared is set.
	Subnet Subnet
	Shared bool
}

func NewSharedPublicRouteTable() RouteTable {
	return RouteTable{Shared: true}
}

func NewPrivateRouteTable(s Subnet) RouteTable {
	return RouteTable{Subnet: s}
}

func (t RouteTable) LogicalName() string {
	if t.Shared {
		return "PublicRouteTable"
	}
	return "PrivateRouteTable" + t.Subnet.AvailabilityZoneLogicalName()
}
