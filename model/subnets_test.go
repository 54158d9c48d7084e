package model

import (
	"testing"
)

func TestSubnetsMixed(t *testing.T) {

	public := NewPublicSubnet("ap-northeast-1a", "10.0.0.0/24")
	s1 := Subnets{
		public,
	}
	if s1.ContainsBothPrivateAndPublic() {
		t.Error("Func ContainsBothPrivateAndPublic should return false when there is only one public subnet in Subnets but it did not")
	}

	private := NewPrivateSubnet("ap-northeast-1b", "10.0.1.0/24")
	s2 := Subnets{
		private,
	}
	if s2.ContainsBothPrivateAndPublic() {
		t.Error("Func ContainsBothPrivateAndPublic should return false when there is only one private subnet in Subnets but it did not")
	}

	s3 := Subnets{
		public,
		private,
	}
	if !s3.ContainsBothPrivateAndPublic() {
		t.Error("Func ContainsBothPrivateAndPublic should return true when the set of subnets contains both private and public subnet(s) but it did not")
	}
}

func TestSubnetLogicalNames(t *testing.T) {
	public := NewPublicSubnet("us-west-2a", "10.0.1.0/24")
	if public.LogicalName() != "PublicSubnetUsWest2a" {
		t.Errorf("unexpected logical name for public subnet: %s", public.LogicalName())
	}
	if public.VisibilityType() != "public" {
		t.Errorf("unexpected visibility type for public subnet: %s", public.VisibilityType())
	}

	private := NewPrivateSubnet("us-west-2a", "10.0.11.0/24")
	if private.LogicalName() != "PrivateSubnetUsWest2a" {
		t.Errorf("unexpected logical name for private subnet: %s", private.LogicalName())
	}
	if private.RouteTableAssociationLogicalName() != "PrivateSubnetUsWest2aRouteTableAssociation" {
		t.Errorf("unexpected association logical name: %s", private.RouteTableAssociationLogicalName())
	}
}

func TestNATGatewayLogicalNames(t *testing.T) {
	public := NewPublicSubnet("eu-west-1b", "10.0.2.0/24")
	private := NewPrivateSubnet("eu-west-1b", "10.0.12.0/24")
	ngw := NewNATGateway(public, private)

	if ngw.LogicalName() != "NatGatewayEuWest1b" {
		t.Errorf("unexpected NAT gateway logical name: %s", ngw.LogicalName())
	}
	if ngw.EIPLogicalName() != "NatGatewayEuWest1bEIP" {
		t.Errorf("unexpected EIP logical name: %s", ngw.EIPLogicalName())
	}
	if ngw.RouteLogicalName() != "RouteToNatGatewayEuWest1b" {
		t.Errorf("unexpected route logical name: %s", ngw.RouteLogicalName())
	}
}

func TestRouteTableLogicalNames(t *testing.T) {
	if NewSharedPublicRouteTable().LogicalName() != "PublicRouteTable" {
		t.Error("the shared public route table should be named PublicRouteTable")
	}

	private := NewPrivateRouteTable(NewPrivateSubnet("us-east-1c", "10.0.13.0/24"))
	if private.LogicalName() != "PrivateRouteTableUsEast1c" {
		t.Errorf("unexpected private route table logical name: %s", private.LogicalName())
	}
}

func TestRegionFromAvailabilityZone(t *testing.T) {
	cases := []struct {
		az       string
		expected string
	}{
		{"us-west-2a", "us-west-2"},
		{"eu-central-1b", "eu-central-1"},
		{"ap-northeast-1c", "ap-northeast-1"},
	}
	for _, c := range cases {
		if r := RegionFromAvailabilityZone(c.az); r.String() != c.expected {
			t.Errorf("RegionFromAvailabilityZone(%q) = %q, expected %q", c.az, r, c.expected)
		}
	}

	if !RegionFromAvailabilityZone("us-east-1a").Known() {
		t.Error("us-east-1 should be a known region")
	}
	if RegionFromAvailabilityZone("xx-nowhere-9z").Known() {
		t.Error("xx-nowhere-9 should not be a known region")
	}
}
