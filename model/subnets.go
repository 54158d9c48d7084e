package model

type Subnets []Subnet

func (s Subnets) ContainsBothPrivateAndPublic() bool {
	allPublic := true
	allPrivate := true
	for _, subnet := range s {
		allPublic = allPublic && subnet.Public()
		allPrivate = allPrivate && subnet.Private
	}
	return !allPublic && !allPrivate
}

// LogicalNames returns the subnet logical names preserving the order of the
// receiver, which in turn preserves the input availability-zone order.
func (s Subnets) LogicalNames() []string {
	names := make([]string, len(s))
	for i, subnet := range s {
		names[i] = subnet.LogicalName()
	}
	return names
}
