package model

// vpc-aws manages exactly one internet gateway per network stack. The
// gateway attachment is a separate resource so that routes through the
// gateway can declare an ordering edge on it.
type InternetGateway struct {
}

func (g InternetGateway) LogicalName() string {
	return "InternetGateway"
}

func (g InternetGateway) AttachmentLogicalName() string {
	return "VpcGatewayAttachment"
}
