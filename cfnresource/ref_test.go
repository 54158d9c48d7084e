package cfnresource

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRef(t *testing.T) {
	assert.Equal(t, map[string]interface{}{"Ref": "Vpc"}, Ref("Vpc"))
}

func TestGetAtt(t *testing.T) {
	assert.Equal(t,
		map[string]interface{}{"Fn::GetAtt": []interface{}{"NatGatewayUsWest2aEIP", "AllocationId"}},
		GetAtt("NatGatewayUsWest2aEIP", "AllocationId"),
	)
}

func TestMaybeRef(t *testing.T) {
	present := PresentRef("VpcFlowLog")
	assert.True(t, present.Present())
	ref, ok := present.Ref()
	assert.True(t, ok)
	assert.Equal(t, Ref("VpcFlowLog"), ref)

	absent := AbsentRef()
	assert.False(t, absent.Present())
	_, ok = absent.Ref()
	assert.False(t, ok)
}
