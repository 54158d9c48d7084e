package config

import (
	"errors"
	"fmt"
	"io/ioutil"

	"github.com/imdario/mergo"
	yaml "gopkg.in/yaml.v2"

	"github.com/cloudnative-incubator/vpc-aws/logger"
	"github.com/cloudnative-incubator/vpc-aws/model"
	"github.com/cloudnative-incubator/vpc-aws/netutil"
)

// ManagedBy is the tag value identifying stacks declared by this tool.
const ManagedBy = "vpc-aws"

func NewDefaultConfig() *Config {
	return &Config{
		InstanceTenancy: "default",
		DNS: DNS{
			Support:   true,
			Hostnames: true,
		},
		NATGateway: NATGateway{
			Enabled: true,
		},
		FlowLogs: FlowLogs{
			Enabled:       true,
			RetentionDays: 7,
		},
	}
}

type DNS struct {
	Support   bool `yaml:"support"`
	Hostnames bool `yaml:"hostnames"`
}

type NATGateway struct {
	Enabled bool `yaml:"enabled"`
}

type FlowLogs struct {
	Enabled       bool `yaml:"enabled"`
	RetentionDays int  `yaml:"retentionDays"`
}

// Config is the declarative description of one VPC network stack. Required:
// vpcCIDR, availabilityZones, publicSubnetCIDRs, privateSubnetCIDRs,
// environment, project. Everything else has a usable default.
type Config struct {
	VPCName            string                 `yaml:"vpcName"`
	VPCCIDR            string                 `yaml:"vpcCIDR"`
	AvailabilityZones  []string               `yaml:"availabilityZones"`
	PublicSubnetCIDRs  []string               `yaml:"publicSubnetCIDRs"`
	PrivateSubnetCIDRs []string               `yaml:"privateSubnetCIDRs"`
	Environment        string                 `yaml:"environment"`
	Project            string                 `yaml:"project"`
	InstanceTenancy    string                 `yaml:"instanceTenancy"`
	DNS                DNS                    `yaml:"dns"`
	NATGateway         NATGateway             `yaml:"natGateway"`
	FlowLogs           FlowLogs               `yaml:"flowLogs"`
	ExtraTags          map[string]string      `yaml:"extraTags"`
	ExtraCfnResources  map[string]interface{} `yaml:"extraCfnResources"`
}

func ConfigFromFile(loc string) (*Config, error) {
	d, err := ioutil.ReadFile(loc)
	if err != nil {
		return nil, fmt.Errorf("failed reading config file: %v", err)
	}
	c, err := ConfigFromBytes(d)
	if err != nil {
		return nil, fmt.Errorf("failed loading %s: %v", loc, err)
	}
	return c, nil
}

func ConfigFromBytes(data []byte) (*Config, error) {
	c := NewDefaultConfig()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed decoding config file: %v", err)
	}

	c.SetDefaults()

	if err := c.Valid(); err != nil {
		return nil, err
	}

	c.warnUnknownRegions()

	return c, nil
}

// SetDefaults fills in the fields whose defaults depend on other fields.
func (c *Config) SetDefaults() {
	if c.VPCName == "" && c.Project != "" && c.Environment != "" {
		c.VPCName = fmt.Sprintf("%s-%s", c.Project, c.Environment)
	}
}

// Valid checks the configuration one rule at a time and fails on the first
// violation, before any resource is declared. Deliberately no cross-field
// semantic validation happens here: subnet blocks aren't checked for
// containment in the VPC block nor for overlaps between each other; the
// provisioning engine surfaces those as apply-time provider errors.
func (c *Config) Valid() error {
	if c.VPCCIDR == "" {
		return errors.New("vpcCIDR must be set")
	}
	if len(c.AvailabilityZones) == 0 {
		return errors.New("availabilityZones must be set and non-empty")
	}
	if len(c.PublicSubnetCIDRs) != len(c.AvailabilityZones) {
		return fmt.Errorf(
			"publicSubnetCIDRs must contain one CIDR block per availability zone: got %d CIDR block(s) for %d zone(s)",
			len(c.PublicSubnetCIDRs),
			len(c.AvailabilityZones),
		)
	}
	if len(c.PrivateSubnetCIDRs) != len(c.AvailabilityZones) {
		return fmt.Errorf(
			"privateSubnetCIDRs must contain one CIDR block per availability zone: got %d CIDR block(s) for %d zone(s)",
			len(c.PrivateSubnetCIDRs),
			len(c.AvailabilityZones),
		)
	}
	if c.Environment == "" {
		return errors.New("environment must be set")
	}
	if c.Project == "" {
		return errors.New("project must be set")
	}
	if err := netutil.ValidateCIDR(c.VPCCIDR); err != nil {
		return fmt.Errorf("invalid vpcCIDR: %v", err)
	}
	for i, cidr := range c.PublicSubnetCIDRs {
		if err := netutil.ValidateCIDR(cidr); err != nil {
			return fmt.Errorf("invalid publicSubnetCIDRs[%d]: %v", i, err)
		}
	}
	for i, cidr := range c.PrivateSubnetCIDRs {
		if err := netutil.ValidateCIDR(cidr); err != nil {
			return fmt.Errorf("invalid privateSubnetCIDRs[%d]: %v", i, err)
		}
	}
	return nil
}

// Tags returns the merged tag set for the stack: user-supplied extraTags
// plus the standard Name/Environment/Project/ManagedBy set. Standard keys
// win on conflict.
func (c *Config) Tags() (map[string]string, error) {
	tags := map[string]string{}
	for k, v := range c.ExtraTags {
		tags[k] = v
	}

	standard := map[string]string{
		"Name":        c.VPCName,
		"Environment": c.Environment,
		"Project":     c.Project,
		"ManagedBy":   ManagedBy,
	}
	if err := mergo.Merge(&tags, standard, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed merging standard tags: %v", err)
	}
	return tags, nil
}

// PublicSubnets returns the public subnet pair members in input zone order.
func (c *Config) PublicSubnets() model.Subnets {
	subnets := make(model.Subnets, len(c.AvailabilityZones))
	for i, az := range c.AvailabilityZones {
		subnets[i] = model.NewPublicSubnet(az, c.PublicSubnetCIDRs[i])
	}
	return subnets
}

// PrivateSubnets returns the private subnet pair members in input zone order.
func (c *Config) PrivateSubnets() model.Subnets {
	subnets := make(model.Subnets, len(c.AvailabilityZones))
	for i, az := range c.AvailabilityZones {
		subnets[i] = model.NewPrivateSubnet(az, c.PrivateSubnetCIDRs[i])
	}
	return subnets
}

func (c *Config) VPC() model.VPC {
	return model.VPC{
		CIDR:            c.VPCCIDR,
		InstanceTenancy: c.InstanceTenancy,
		DNSSupport:      c.DNS.Support,
		DNSHostnames:    c.DNS.Hostnames,
	}
}

// An availability zone naming a region the SDK's bundled endpoint metadata
// doesn't know is suspicious but not necessarily wrong, so it only warns.
func (c *Config) warnUnknownRegions() {
	for _, az := range c.AvailabilityZones {
		if region := model.RegionFromAvailabilityZone(az); !region.Known() {
			logger.Warnf("availability zone %q doesn't belong to any known AWS region; the provisioning engine may reject it", az)
		}
	}
}
