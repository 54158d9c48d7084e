package naming

import (
	"strings"
)

func FromNameToCfnResource(name string) string {
	// Convert a user-supplied name like an availability zone into something
	// valid as a cfn logical resource name or we'll end up with cfn errors
	// like "Template format error: Resource name us-west-2a is non alphanumeric"
	return strings.Replace(strings.Title(name), "-", "", -1)
}
