package cfnresource

// Ref returns the deferred binding for the engine-assigned id of a resource
// declared elsewhere in the same stack. The provisioning engine resolves it
// during its apply phase and derives creation order from it; nothing in this
// process ever waits on the concrete value.
func Ref(logicalName string) map[string]interface{} {
	return map[string]interface{}{"Ref": logicalName}
}

// GetAtt returns the deferred binding for a single attribute of a resource,
// e.g. the AllocationId of an EIP or the Arn of a log group.
func GetAtt(logicalName string, attribute string) map[string]interface{} {
	return map[string]interface{}{"Fn::GetAtt": []interface{}{logicalName, attribute}}
}

// Join concatenates a mix of literal strings and deferred values with the
// given separator, resolved engine-side.
func Join(separator string, values []interface{}) map[string]interface{} {
	return map[string]interface{}{"Fn::Join": []interface{}{separator, values}}
}

func Tag(key string, value interface{}) map[string]interface{} {
	return map[string]interface{}{"Key": key, "Value": value}
}

func PolicyStatement(actions []string, resource interface{}) map[string]interface{} {
	return map[string]interface{}{
		"Effect":   "Allow",
		"Action":   actions,
		"Resource": resource,
	}
}

func AssumeRolePolicyDocument(servicePrincipal string) map[string]interface{} {
	return map[string]interface{}{
		"Version": "2012-10-17",
		"Statement": []map[string]interface{}{
			{
				"Effect": "Allow",
				"Principal": map[string]interface{}{
					"Service": []string{servicePrincipal},
				},
				"Action": []string{"sts:AssumeRole"},
			},
		},
	}
}
