package cfnstack

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

const TemplateFormatVersion = "2010-09-09"

type Resource struct {
	Type       string                 `json:"Type"`
	Properties map[string]interface{} `json:"Properties,omitempty"`
	DependsOn  []string               `json:"DependsOn,omitempty"`
}

type Output struct {
	Description string      `json:"Description,omitempty"`
	Value       interface{} `json:"Value"`
}

// Template is a declarative resource graph in CloudFormation's stack
// template format. Resources reference each other through deferred bindings
// ({"Ref": ...}, {"Fn::GetAtt": ...}); the provisioning engine derives the
// creation order from those edges during apply.
type Template struct {
	AWSTemplateFormatVersion string              `json:"AWSTemplateFormatVersion"`
	Description              string              `json:"Description,omitempty"`
	Resources                map[string]Resource `json:"Resources"`
	Outputs                  map[string]Output   `json:"Outputs,omitempty"`
}

func NewTemplate(description string) *Template {
	return &Template{
		AWSTemplateFormatVersion: TemplateFormatVersion,
		Description:              description,
		Resources:                map[string]Resource{},
		Outputs:                  map[string]Output{},
	}
}

// Add declares a resource under the given logical name. Logical names are
// derived deterministically from validated input, so a duplicate can only
// mean a programming error in the graph builder.
func (t *Template) Add(logicalName string, r Resource) {
	if _, ok := t.Resources[logicalName]; ok {
		panic(fmt.Sprintf("[bug] assertion failed: resource %q is declared twice in the same stack", logicalName))
	}
	t.Resources[logicalName] = r
}

// AddOutput registers a derived value under the stack's output contract.
func (t *Template) AddOutput(name string, description string, value interface{}) {
	t.Outputs[name] = Output{
		Description: description,
		Value:       value,
	}
}

// ResourcesOfType returns the logical names of every declared resource of
// the given provider resource kind.
func (t *Template) ResourcesOfType(resourceType string) []string {
	var names []string
	for name, r := range t.Resources {
		if r.Type == resourceType {
			names = append(names, name)
		}
	}
	return names
}

func (t *Template) RenderAsString() (string, error) {
	body, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "failed to render stack template")
	}
	return string(body), nil
}
