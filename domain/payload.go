package domain

// Payload is a decoded JSON request body. Boundary entities are parsed from it
// instead of from typed request structs so that a missing property and a
// wrong-typed property stay distinguishable, and presence is always reported
// before type.
type Payload map[string]any

// has reports whether key holds a usable value. Empty strings, zero numbers
// and explicit nulls count as missing, matching the presence rule applied to
// every entity.
func (p Payload) has(key string) bool {
	v, ok := p[key]
	if !ok {
		return false
	}
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case float64:
		return t != 0
	default:
		return true
	}
}

func (p Payload) str(key string) (string, bool) {
	s, ok := p[key].(string)
	return s, ok
}

// Merge returns a copy of p with extra entries applied on top. The receiver is
// never mutated; handlers share decoded bodies across retries.
func (p Payload) Merge(extra Payload) Payload {
	merged := make(Payload, len(p)+len(extra))
	for k, v := range p {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}
