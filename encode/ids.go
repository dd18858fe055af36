package encode

// IDs allocates canonical identities for one document. Every reference role
// (an element's own id and an information target) draws from the same
// table, so an original identity resolves to the same integer wherever it
// appears. An IDs must not be shared between documents.
type IDs struct {
	m     map[string]int
	origs []string
}

func NewIDs() *IDs {
	return &IDs{m: map[string]int{}}
}

// Resolve returns the canonical identity of orig, allocating the next
// integer the first time orig is seen.
func (ids *IDs) Resolve(orig string) int {
	if id, ok := ids.m[orig]; ok {
		return id
	}
	id := len(ids.origs)
	ids.m[orig] = id
	ids.origs = append(ids.origs, orig)
	return id
}

// Lookup returns the canonical identity of orig without allocating.
func (ids *IDs) Lookup(orig string) (int, bool) {
	id, ok := ids.m[orig]
	return id, ok
}

func (ids *IDs) Len() int {
	return len(ids.origs)
}

// Originals returns the original identities indexed by canonical identity.
func (ids *IDs) Originals() []string {
	res := make([]string, len(ids.origs))
	copy(res, ids.origs)
	return res
}
