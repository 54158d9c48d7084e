package network

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"

	"github.com/cloudnative-incubator/vpc-aws/cfnresource"
	"github.com/cloudnative-incubator/vpc-aws/cfnstack"
	"github.com/cloudnative-incubator/vpc-aws/config"
	"github.com/cloudnative-incubator/vpc-aws/model"
)

// VERSION set by build script
var VERSION = "UNKNOWN"

const (
	allIPs            = "0.0.0.0/0"
	flowLogsPrincipal = "vpc-flow-logs.amazonaws.com"
)

// Stack compiles a validated network configuration into a declarative
// resource graph. It enumerates every resource specification in one
// synchronous pass and wires their cross-references as deferred bindings;
// it never waits on, retries, or cleans up after the actual cloud-side
// creation, which belongs entirely to the provisioning engine.
type Stack struct {
	*config.Config
}

func NewStack(cfg *config.Config) (*Stack, error) {
	if err := cfg.Valid(); err != nil {
		return nil, errors.Wrap(err, "invalid network configuration")
	}
	return &Stack{Config: cfg}, nil
}

// Outputs is the stable output contract of a compiled network stack. All
// ids are deferred references resolved by the provisioning engine; list
// fields preserve the input availability-zone order.
type Outputs struct {
	VPCID                map[string]interface{}
	VPCCIDR              string
	PublicSubnetIDs      []interface{}
	PrivateSubnetIDs     []interface{}
	PublicRouteTableID   map[string]interface{}
	PrivateRouteTableIDs []interface{}
	NATGatewayIDs        []interface{}
	InternetGatewayID    map[string]interface{}
	FlowLogID            cfnresource.MaybeRef
}

// Template builds the resource graph in dependency order: the VPC, the
// internet gateway, the per-zone subnet pairs, the route tables and their
// associations, the conditional NAT gateways, the baseline security group,
// and the conditional flow-logging bundle.
func (s *Stack) Template() (*cfnstack.Template, error) {
	tags, err := s.Tags()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build stack tags")
	}

	t := cfnstack.NewTemplate(fmt.Sprintf("%s network stack", s.VPCName))

	vpc := s.VPC()
	vpcRef := cfnresource.Ref(vpc.LogicalName())

	t.Add(vpc.LogicalName(), cfnstack.Resource{
		Type: "AWS::EC2::VPC",
		Properties: map[string]interface{}{
			"CidrBlock":          vpc.CIDR,
			"InstanceTenancy":    vpc.InstanceTenancy,
			"EnableDnsSupport":   vpc.DNSSupport,
			"EnableDnsHostnames": vpc.DNSHostnames,
			"Tags":               tagList(tags),
		},
	})

	igw := model.InternetGateway{}
	t.Add(igw.LogicalName(), cfnstack.Resource{
		Type: "AWS::EC2::InternetGateway",
		Properties: map[string]interface{}{
			"Tags": nameTags(tags, s.VPCName),
		},
	})
	t.Add(igw.AttachmentLogicalName(), cfnstack.Resource{
		Type: "AWS::EC2::VPCGatewayAttachment",
		Properties: map[string]interface{}{
			"InternetGatewayId": cfnresource.Ref(igw.LogicalName()),
			"VpcId":             vpcRef,
		},
	})

	publicSubnets := s.PublicSubnets()
	privateSubnets := s.PrivateSubnets()
	for _, subnet := range append(append(model.Subnets{}, publicSubnets...), privateSubnets...) {
		t.Add(subnet.LogicalName(), s.subnetResource(subnet, tags))
	}

	s.addPublicRouting(t, igw, publicSubnets, tags)

	natGateways := s.natGateways(publicSubnets, privateSubnets)
	for _, ngw := range natGateways {
		s.addNATGateway(t, ngw, tags)
	}
	s.addPrivateRouting(t, privateSubnets, natGateways, tags)

	t.Add("DefaultSecurityGroup", cfnstack.Resource{
		Type: "AWS::EC2::SecurityGroup",
		Properties: map[string]interface{}{
			"GroupDescription": fmt.Sprintf("%s baseline security group", s.VPCName),
			"VpcId":            vpcRef,
			// all egress permitted; no ingress entries, so the provider's
			// implicit ingress-deny applies
			"SecurityGroupEgress": []map[string]interface{}{
				{"IpProtocol": "-1", "CidrIp": allIPs},
			},
			"Tags": nameTags(tags, s.VPCName),
		},
	})

	if s.FlowLogs.Enabled {
		s.addFlowLogs(t, vpcRef)
	}

	s.addOutputs(t)

	return t, nil
}

// RenderTemplateAsString renders the graph to the stack template document
// consumed by the provisioning engine, with any extra user-supplied
// resources spliced in.
func (s *Stack) RenderTemplateAsString() (string, error) {
	t, err := s.Template()
	if err != nil {
		return "", err
	}
	body, err := t.RenderAsString()
	if err != nil {
		return "", err
	}
	return cfnstack.PatchTemplate(body, s.ExtraCfnResources)
}

// Outputs exposes the derived identifiers of the compiled graph. Two passes
// over the same configuration yield structurally identical bundles.
func (s *Stack) Outputs() Outputs {
	publicSubnets := s.PublicSubnets()
	privateSubnets := s.PrivateSubnets()
	natGateways := s.natGateways(publicSubnets, privateSubnets)

	out := Outputs{
		VPCID:              cfnresource.Ref(s.VPC().LogicalName()),
		VPCCIDR:            s.VPCCIDR,
		PublicRouteTableID: cfnresource.Ref(model.NewSharedPublicRouteTable().LogicalName()),
		InternetGatewayID:  cfnresource.Ref(model.InternetGateway{}.LogicalName()),
		FlowLogID:          cfnresource.AbsentRef(),
	}
	for _, subnet := range publicSubnets {
		out.PublicSubnetIDs = append(out.PublicSubnetIDs, cfnresource.Ref(subnet.LogicalName()))
	}
	for _, subnet := range privateSubnets {
		out.PrivateSubnetIDs = append(out.PrivateSubnetIDs, cfnresource.Ref(subnet.LogicalName()))
	}
	for _, subnet := range privateSubnets {
		out.PrivateRouteTableIDs = append(out.PrivateRouteTableIDs, cfnresource.Ref(model.NewPrivateRouteTable(subnet).LogicalName()))
	}
	for _, ngw := range natGateways {
		out.NATGatewayIDs = append(out.NATGatewayIDs, cfnresource.Ref(ngw.LogicalName()))
	}
	if s.FlowLogs.Enabled {
		out.FlowLogID = cfnresource.PresentRef(model.FlowLogs{}.LogicalName())
	}
	return out
}

func (s *Stack) subnetResource(subnet model.Subnet, tags map[string]string) cfnstack.Resource {
	subnetTagMap := map[string]string{}
	for k, v := range tags {
		subnetTagMap[k] = v
	}
	subnetTagMap["Name"] = fmt.Sprintf("%s-%s-%s", s.VPCName, subnet.VisibilityType(), subnet.AvailabilityZone)
	subnetTagMap["AvailabilityZone"] = subnet.AvailabilityZone
	subnetTagMap["VisibilityType"] = subnet.VisibilityType()
	subnetTags := tagList(subnetTagMap)
	return cfnstack.Resource{
		Type: "AWS::EC2::Subnet",
		Properties: map[string]interface{}{
			"AvailabilityZone":    subnet.AvailabilityZone,
			"CidrBlock":           subnet.CIDR,
			"MapPublicIpOnLaunch": subnet.Public(),
			"VpcId":               cfnresource.Ref(s.VPC().LogicalName()),
			"Tags":                subnetTags,
		},
	}
}

// addPublicRouting declares the single route table shared by every public
// subnet, its default route to the internet gateway, and the associations.
func (s *Stack) addPublicRouting(t *cfnstack.Template, igw model.InternetGateway, publicSubnets model.Subnets, tags map[string]string) {
	routeTable := model.NewSharedPublicRouteTable()
	t.Add(routeTable.LogicalName(), cfnstack.Resource{
		Type: "AWS::EC2::RouteTable",
		Properties: map[string]interface{}{
			"VpcId": cfnresource.Ref(s.VPC().LogicalName()),
			"Tags":  nameTags(tags, fmt.Sprintf("%s-public", s.VPCName)),
		},
	})

	// the engine must not create a route through the gateway before the
	// gateway is attached to the VPC
	t.Add("RouteToInternet", cfnstack.Resource{
		Type: "AWS::EC2::Route",
		Properties: map[string]interface{}{
			"DestinationCidrBlock": allIPs,
			"RouteTableId":         cfnresource.Ref(routeTable.LogicalName()),
			"GatewayId":            cfnresource.Ref(igw.LogicalName()),
		},
		DependsOn: []string{igw.AttachmentLogicalName()},
	})

	for _, subnet := range publicSubnets {
		t.Add(subnet.RouteTableAssociationLogicalName(), cfnstack.Resource{
			Type: "AWS::EC2::SubnetRouteTableAssociation",
			Properties: map[string]interface{}{
				"RouteTableId": cfnresource.Ref(routeTable.LogicalName()),
				"SubnetId":     cfnresource.Ref(subnet.LogicalName()),
			},
		})
	}
}

// natGateways pairs subnets by index: the NAT gateway serving the i-th
// private subnet lives in the i-th public subnet. Returns nil when NAT is
// disabled.
func (s *Stack) natGateways(publicSubnets, privateSubnets model.Subnets) []model.NATGateway {
	if !s.NATGateway.Enabled {
		return nil
	}
	gateways := make([]model.NATGateway, len(publicSubnets))
	for i := range publicSubnets {
		gateways[i] = model.NewNATGateway(publicSubnets[i], privateSubnets[i])
	}
	return gateways
}

func (s *Stack) addNATGateway(t *cfnstack.Template, ngw model.NATGateway, tags map[string]string) {
	t.Add(ngw.EIPLogicalName(), cfnstack.Resource{
		Type: "AWS::EC2::EIP",
		Properties: map[string]interface{}{
			"Domain": "vpc",
		},
		DependsOn: []string{model.InternetGateway{}.AttachmentLogicalName()},
	})
	t.Add(ngw.LogicalName(), cfnstack.Resource{
		Type: "AWS::EC2::NatGateway",
		Properties: map[string]interface{}{
			"AllocationId": cfnresource.GetAtt(ngw.EIPLogicalName(), "AllocationId"),
			"SubnetId":     cfnresource.Ref(ngw.PublicSubnet().LogicalName()),
			"Tags":         nameTags(tags, fmt.Sprintf("%s-%s", s.VPCName, ngw.PublicSubnet().AvailabilityZone)),
		},
	})
}

// addPrivateRouting declares one route table per private subnet. With NAT
// enabled each table gets a default route to the NAT gateway of the same
// zone index; with NAT disabled the tables carry no default route at all.
func (s *Stack) addPrivateRouting(t *cfnstack.Template, privateSubnets model.Subnets, natGateways []model.NATGateway, tags map[string]string) {
	for i, subnet := range privateSubnets {
		routeTable := model.NewPrivateRouteTable(subnet)
		t.Add(routeTable.LogicalName(), cfnstack.Resource{
			Type: "AWS::EC2::RouteTable",
			Properties: map[string]interface{}{
				"VpcId": cfnresource.Ref(s.VPC().LogicalName()),
				"Tags":  nameTags(tags, fmt.Sprintf("%s-private-%s", s.VPCName, subnet.AvailabilityZone)),
			},
		})

		if natGateways != nil {
			ngw := natGateways[i]
			t.Add(ngw.RouteLogicalName(), cfnstack.Resource{
				Type: "AWS::EC2::Route",
				Properties: map[string]interface{}{
					"DestinationCidrBlock": allIPs,
					"RouteTableId":         cfnresource.Ref(routeTable.LogicalName()),
					"NatGatewayId":         cfnresource.Ref(ngw.LogicalName()),
				},
			})
		}

		t.Add(subnet.RouteTableAssociationLogicalName(), cfnstack.Resource{
			Type: "AWS::EC2::SubnetRouteTableAssociation",
			Properties: map[string]interface{}{
				"RouteTableId": cfnresource.Ref(routeTable.LogicalName()),
				"SubnetId":     cfnresource.Ref(subnet.LogicalName()),
			},
		})
	}
}

// addFlowLogs declares the all-or-nothing logging bundle: the log sink, the
// trust role for the flow-logs service, the minimal log-write policy scoped
// to the sink, and the flow-log binding capturing all traffic on the VPC.
func (s *Stack) addFlowLogs(t *cfnstack.Template, vpcRef map[string]interface{}) {
	flowLogs := model.FlowLogs{
		Enabled:       s.FlowLogs.Enabled,
		RetentionDays: s.FlowLogs.RetentionDays,
	}

	t.Add(flowLogs.LogGroupLogicalName(), cfnstack.Resource{
		Type: "AWS::Logs::LogGroup",
		Properties: map[string]interface{}{
			"LogGroupName":    flowLogs.LogGroupName(s.VPCName),
			"RetentionInDays": flowLogs.RetentionDays,
		},
	})
	t.Add(flowLogs.RoleLogicalName(), cfnstack.Resource{
		Type: "AWS::IAM::Role",
		Properties: map[string]interface{}{
			"AssumeRolePolicyDocument": cfnresource.AssumeRolePolicyDocument(flowLogsPrincipal),
		},
	})
	t.Add(flowLogs.RolePolicyLogicalName(), cfnstack.Resource{
		Type: "AWS::IAM::Policy",
		Properties: map[string]interface{}{
			"PolicyName": "flow-logs-delivery",
			"Roles":      []interface{}{cfnresource.Ref(flowLogs.RoleLogicalName())},
			"PolicyDocument": map[string]interface{}{
				"Version": "2012-10-17",
				"Statement": []map[string]interface{}{
					cfnresource.PolicyStatement(
						[]string{
							"logs:CreateLogStream",
							"logs:PutLogEvents",
							"logs:DescribeLogGroups",
							"logs:DescribeLogStreams",
						},
						cfnresource.GetAtt(flowLogs.LogGroupLogicalName(), "Arn"),
					),
				},
			},
		},
	})
	t.Add(flowLogs.LogicalName(), cfnstack.Resource{
		Type: "AWS::EC2::FlowLog",
		Properties: map[string]interface{}{
			"DeliverLogsPermissionArn": cfnresource.GetAtt(flowLogs.RoleLogicalName(), "Arn"),
			"LogGroupName":             flowLogs.LogGroupName(s.VPCName),
			"ResourceId":               vpcRef,
			"ResourceType":             "VPC",
			"TrafficType":              "ALL",
		},
		DependsOn: []string{flowLogs.LogGroupLogicalName()},
	})
}

func (s *Stack) addOutputs(t *cfnstack.Template) {
	out := s.Outputs()

	t.AddOutput("VpcId", "The id of the network", out.VPCID)
	t.AddOutput("VpcCidr", "The address block of the network", out.VPCCIDR)
	t.AddOutput("PublicSubnetIds", "Public subnet ids in input zone order", cfnresource.Join(",", out.PublicSubnetIDs))
	t.AddOutput("PrivateSubnetIds", "Private subnet ids in input zone order", cfnresource.Join(",", out.PrivateSubnetIDs))
	t.AddOutput("PublicRouteTableId", "The id of the shared public route table", out.PublicRouteTableID)
	t.AddOutput("PrivateRouteTableIds", "Private route table ids in input zone order", cfnresource.Join(",", out.PrivateRouteTableIDs))
	t.AddOutput("InternetGatewayId", "The id of the internet gateway", out.InternetGatewayID)
	if len(out.NATGatewayIDs) > 0 {
		t.AddOutput("NatGatewayIds", "NAT gateway ids in input zone order", cfnresource.Join(",", out.NATGatewayIDs))
	}
	if ref, ok := out.FlowLogID.Ref(); ok {
		t.AddOutput("FlowLogId", "The id of the VPC flow log", ref)
	}
}

func tagList(tags map[string]string) []map[string]interface{} {
	// iterate in sorted key order so repeated compilations render
	// byte-identical documents
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	list := make([]map[string]interface{}, 0, len(tags))
	for _, k := range keys {
		list = append(list, cfnresource.Tag(k, tags[k]))
	}
	return list
}

// nameTags returns the merged tag set with the Name tag replaced, keeping
// the shared tags on every named resource.
func nameTags(tags map[string]string, name string) []map[string]interface{} {
	named := map[string]string{}
	for k, v := range tags {
		named[k] = v
	}
	named["Name"] = name
	return tagList(named)
}
