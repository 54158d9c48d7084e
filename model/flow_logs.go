package model

import (
	"fmt"
)

// logGroupPathPrefix is the fixed path template the flow-log sink is named
// under; the network name is the only variable part.
const logGroupPathPrefix = "/vpc/flow-logs/"

// FlowLogs describes the optional traffic-metadata logging bundle: a log
// group, a trust role for the flow-logs service, a policy on that role, and
// the flow-log binding itself. The four resources are declared together or
// not at all.
type FlowLogs struct {
	Enabled       bool `yaml:"enabled"`
	RetentionDays int  `yaml:"retentionDays"`
}

func (f FlowLogs) LogGroupName(networkName string) string {
	return fmt.Sprintf("%s%s", logGroupPathPrefix, networkName)
}

func (f FlowLogs) LogGroupLogicalName() string {
	return "FlowLogsLogGroup"
}

func (f FlowLogs) RoleLogicalName() string {
	return "FlowLogsRole"
}

func (f FlowLogs) RolePolicyLogicalName() string {
	return "FlowLogsRolePolicy"
}

func (f FlowLogs) LogicalName() string {
	return "VpcFlowLog"
}
