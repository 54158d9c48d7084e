package model

// vpc-aws manages exactly one VPC per network stack. The VPC is declared from
// the configured address block and never mutated after declaration; replace
// and update operations are the provisioning engine's own convergence
// behavior, not something this tool drives.
type VPC struct {
	CIDR            string `yaml:"cidr,omitempty"`
	InstanceTenancy string `yaml:"instanceTenancy,omitempty"`
	DNSSupport      bool   `yaml:"dnsSupport"`
	DNSHostnames    bool   `yaml:"dnsHostnames"`
}

func (v VPC) LogicalName() string {
	return "Vpc"
}
