package builtin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudnative-incubator/vpc-aws/config"
	"github.com/cloudnative-incubator/vpc-aws/filereader/texttemplate"
)

// The scaffolded default configuration must itself pass validation.
func TestDefaultNetworkConfigTemplateRoundTrips(t *testing.T) {
	opts := config.InitialConfig{
		VPCCIDR:            "10.0.0.0/16",
		AvailabilityZones:  []string{"us-west-2a", "us-west-2b"},
		PublicSubnetCIDRs:  []string{"10.0.1.0/24", "10.0.2.0/24"},
		PrivateSubnetCIDRs: []string{"10.0.11.0/24", "10.0.12.0/24"},
		Environment:        "staging",
		Project:            "payments",
	}

	rendered, err := texttemplate.GetString(DefaultNetworkConfigTmplFile, String(DefaultNetworkConfigTmplFile), opts)
	require.NoError(t, err)

	c, err := config.ConfigFromBytes([]byte(rendered))
	require.NoError(t, err)

	assert.Equal(t, "payments-staging", c.VPCName)
	assert.Equal(t, "10.0.0.0/16", c.VPCCIDR)
	assert.Equal(t, opts.AvailabilityZones, c.AvailabilityZones)
	assert.Equal(t, opts.PublicSubnetCIDRs, c.PublicSubnetCIDRs)
	assert.Equal(t, opts.PrivateSubnetCIDRs, c.PrivateSubnetCIDRs)
}

func TestDefaultNetworkConfigTemplateKeepsVpcName(t *testing.T) {
	opts := config.InitialConfig{
		VPCName:            "payments-net",
		VPCCIDR:            "10.0.0.0/16",
		AvailabilityZones:  []string{"us-west-2a"},
		PublicSubnetCIDRs:  []string{"10.0.1.0/24"},
		PrivateSubnetCIDRs: []string{"10.0.11.0/24"},
		Environment:        "staging",
		Project:            "payments",
	}

	rendered, err := texttemplate.GetString(DefaultNetworkConfigTmplFile, String(DefaultNetworkConfigTmplFile), opts)
	require.NoError(t, err)

	c, err := config.ConfigFromBytes([]byte(rendered))
	require.NoError(t, err)
	assert.Equal(t, "payments-net", c.VPCName)
}
