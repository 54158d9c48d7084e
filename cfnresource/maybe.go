package cfnresource

// MaybeRef is a deferred reference that may be deliberately absent. Absence
// is a valid end state (the feature behind the reference is disabled), which
// is distinct from a reference the engine merely hasn't resolved yet.
type MaybeRef struct {
	ref     map[string]interface{}
	present bool
}

func PresentRef(logicalName string) MaybeRef {
	return MaybeRef{
		ref:     Ref(logicalName),
		present: true,
	}
}

func AbsentRef() MaybeRef {
	return MaybeRef{}
}

func (m MaybeRef) Present() bool {
	return m.present
}

// Ref returns the underlying deferred binding. The second return is false
// when the reference is deliberately absent.
func (m MaybeRef) Ref() (map[string]interface{}, bool) {
	return m.ref, m.present
}
