package cfnstack

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRendering(t *testing.T) {
	tmpl := NewTemplate("test network stack")
	tmpl.Add("Vpc", Resource{
		Type: "AWS::EC2::VPC",
		Properties: map[string]interface{}{
			"CidrBlock": "10.0.0.0/16",
		},
	})
	tmpl.AddOutput("VpcId", "The id of the network", map[string]interface{}{"Ref": "Vpc"})

	body, err := tmpl.RenderAsString()
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &parsed))

	assert.Equal(t, TemplateFormatVersion, parsed["AWSTemplateFormatVersion"])
	assert.Equal(t, "test network stack", parsed["Description"])

	resources := parsed["Resources"].(map[string]interface{})
	vpc := resources["Vpc"].(map[string]interface{})
	assert.Equal(t, "AWS::EC2::VPC", vpc["Type"])

	outputs := parsed["Outputs"].(map[string]interface{})
	require.Contains(t, outputs, "VpcId")
}

func TestTemplateAddPanicsOnDuplicate(t *testing.T) {
	tmpl := NewTemplate("test")
	tmpl.Add("Vpc", Resource{Type: "AWS::EC2::VPC"})
	assert.Panics(t, func() {
		tmpl.Add("Vpc", Resource{Type: "AWS::EC2::VPC"})
	})
}

func TestResourcesOfType(t *testing.T) {
	tmpl := NewTemplate("test")
	tmpl.Add("PublicSubnetUsWest2a", Resource{Type: "AWS::EC2::Subnet"})
	tmpl.Add("PrivateSubnetUsWest2a", Resource{Type: "AWS::EC2::Subnet"})
	tmpl.Add("Vpc", Resource{Type: "AWS::EC2::VPC"})

	assert.Len(t, tmpl.ResourcesOfType("AWS::EC2::Subnet"), 2)
	assert.Len(t, tmpl.ResourcesOfType("AWS::EC2::VPC"), 1)
	assert.Empty(t, tmpl.ResourcesOfType("AWS::EC2::NatGateway"))
}

func TestPatchTemplate(t *testing.T) {
	tmpl := NewTemplate("test")
	tmpl.Add("Vpc", Resource{Type: "AWS::EC2::VPC"})
	body, err := tmpl.RenderAsString()
	require.NoError(t, err)

	// yaml-decoded extras arrive with interface{} keys
	extras := map[string]interface{}{
		"VpcPeering": map[interface{}]interface{}{
			"Type": "AWS::EC2::VPCPeeringConnection",
			"Properties": map[interface{}]interface{}{
				"VpcId":     map[interface{}]interface{}{"Ref": "Vpc"},
				"PeerVpcId": "vpc-0123456789abcdef0",
			},
		},
	}

	patched, err := PatchTemplate(body, extras)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(patched), &parsed))

	resources := parsed["Resources"].(map[string]interface{})
	require.Contains(t, resources, "Vpc")
	require.Contains(t, resources, "VpcPeering")
	peering := resources["VpcPeering"].(map[string]interface{})
	assert.Equal(t, "AWS::EC2::VPCPeeringConnection", peering["Type"])
}

func TestPatchTemplateWithoutExtrasIsIdentity(t *testing.T) {
	tmpl := NewTemplate("test")
	tmpl.Add("Vpc", Resource{Type: "AWS::EC2::VPC"})
	body, err := tmpl.RenderAsString()
	require.NoError(t, err)

	patched, err := PatchTemplate(body, nil)
	require.NoError(t, err)
	assert.Equal(t, body, patched)
}
