package cfnstack

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/aryann/difflib"
	"github.com/mgutz/ansi"
)

// DiffJSON renders a line diff between two JSON documents, re-indented so
// that formatting differences don't show up as changes. context limits the
// number of unchanged lines shown around each change; pass a negative value
// for the full documents.
func DiffJSON(current, desired string, context int) (string, error) {
	var currentBytes bytes.Buffer
	err := json.Indent(&currentBytes, []byte(current), "", "  ")
	if err != nil {
		return "", err
	}

	var desiredBytes bytes.Buffer
	err = json.Indent(&desiredBytes, []byte(desired), "", "  ")
	if err != nil {
		return "", err
	}

	return DiffText(currentBytes.String(), desiredBytes.String(), context)
}

func DiffText(current, desired string, context int) (string, error) {
	diffs := difflib.Diff(strings.Split(current, "\n"), strings.Split(desired, "\n"))

	changed := false
	for _, r := range diffs {
		if r.Delta != difflib.Common {
			changed = true
			break
		}
	}
	if !changed {
		return "", nil
	}

	diffOutputs := []string{}
	if context >= 0 {
		distances := calculateDistances(diffs)
		omitting := false
		for i, r := range diffs {
			if distances[i] > context {
				if !omitting {
					diffOutputs = append(diffOutputs, "...\n")
					omitting = true
				}
			} else {
				omitting = false
				diffOutputs = append(diffOutputs, sprintDiffRecord(r))
			}
		}
	} else {
		for _, r := range diffs {
			diffOutputs = append(diffOutputs, sprintDiffRecord(r))
		}
	}
	return strings.Join(diffOutputs, ""), nil
}

// Calculate distance of every diff-line to the closest change
func calculateDistances(diffs []difflib.DiffRecord) map[int]int {
	distances := map[int]int{}

	// Iterate forwards through diffs, set 'distance' based on closest 'change' before this line
	change := -1
	for i, diff := range diffs {
		if diff.Delta != difflib.Common {
			change = i
		}
		distance := math.MaxInt32
		if change != -1 {
			distance = i - change
		}
		distances[i] = distance
	}

	// Iterate backwards through diffs, reduce 'distance' based on closest 'change' after this line
	change = -1
	for i := len(diffs) - 1; i >= 0; i-- {
		diff := diffs[i]
		if diff.Delta != difflib.Common {
			change = i
		}
		if change != -1 {
			distance := change - i
			if distance < distances[i] {
				distances[i] = distance
			}
		}
	}

	return distances
}

func sprintDiffRecord(diff difflib.DiffRecord) string {
	text := diff.Payload

	var res string
	switch diff.Delta {
	case difflib.RightOnly:
		res = fmt.Sprintf("%s\n", ansi.Color("+ "+text, "green"))
	case difflib.LeftOnly:
		res = fmt.Sprintf("%s\n", ansi.Color("- "+text, "red"))
	case difflib.Common:
		res = fmt.Sprintf("%s\n", "  "+text)
	}
	return res
}
