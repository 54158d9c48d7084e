package config

// InitialConfig holds the flag values "vpc-aws init" renders the default
// network.yaml from.
type InitialConfig struct {
	VPCName            string
	VPCCIDR            string
	AvailabilityZones  []string
	PublicSubnetCIDRs  []string
	PrivateSubnetCIDRs []string
	Environment        string
	Project            string
}
