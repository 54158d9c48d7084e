package cfnstack

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"github.com/tidwall/sjson"
)

// PatchTemplate splices extra, user-supplied resource definitions into a
// rendered template body. Extras are spliced in name order so two renders of
// the same configuration produce byte-identical bodies.
func PatchTemplate(body string, extraResources map[string]interface{}) (string, error) {
	names := make([]string, 0, len(extraResources))
	for name := range extraResources {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		raw, err := json.Marshal(normalizeKeys(extraResources[name]))
		if err != nil {
			return "", errors.Wrapf(err, "failed to encode extra resource %q", name)
		}
		body, err = sjson.SetRaw(body, "Resources."+name, string(raw))
		if err != nil {
			return "", errors.Wrapf(err, "failed to splice extra resource %q into the stack template", name)
		}
	}
	return body, nil
}

// normalizeKeys rewrites the map[interface{}]interface{} values produced by
// the yaml decoder into the string-keyed maps encoding/json requires.
func normalizeKeys(v interface{}) interface{} {
	switch v := v.(type) {
	case map[interface{}]interface{}:
		m := map[string]interface{}{}
		for key, value := range v {
			m[fmt.Sprintf("%v", key)] = normalizeKeys(value)
		}
		return m
	case map[string]interface{}:
		m := map[string]interface{}{}
		for key, value := range v {
			m[key] = normalizeKeys(value)
		}
		return m
	case []interface{}:
		s := make([]interface{}, len(v))
		for i, value := range v {
			s[i] = normalizeKeys(value)
		}
		return s
	default:
		return v
	}
}
