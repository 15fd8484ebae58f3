package jail

import "strings"

// Record holds one jail's parameters as reported by jail(8), preserving the
// order in which they were declared.  A parameter declared without a value
// (for example "persist") is present with an empty value, which is distinct
// from a parameter that was never declared at all.
type Record struct {
	keys   []string
	params map[string]string
}

// Set adds or replaces a parameter.  A key keeps the position of its first
// assignment; the last assigned value wins.
func (r *Record) Set(key, value string) {
	if r.params == nil {
		r.params = make(map[string]string)
	}
	if _, ok := r.params[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.params[key] = value
}

// Get returns the value of a parameter and whether the parameter was declared.
func (r *Record) Get(key string) (string, bool) {
	v, ok := r.params[key]
	return v, ok
}

// Keys returns the parameter names in declaration order.
func (r *Record) Keys() []string {
	return r.keys
}

// Len returns the number of declared parameters.
func (r *Record) Len() int {
	return len(r.keys)
}

// Name returns the jail's "name" parameter, or the empty string if the jail
// did not report one.
func (r *Record) Name() string {
	v, _ := r.Get("name")
	return v
}

func (r *Record) reset() {
	r.keys = r.keys[:0]
	for k := range r.params {
		delete(r.params, k)
	}
}

// Stream iterates over a NUL-delimited jail(8) export, yielding one Record
// per jail.  Each jail's parameters appear as "key" or "key=value" records
// followed by an empty record closing the group.
type Stream struct {
	records []string
}

// NewStream splits raw export output into records.  Records are
// NUL-terminated, so the trailing NUL of the final record does not count as
// an additional empty record.
func NewStream(raw []byte) *Stream {
	if len(raw) == 0 {
		return &Stream{}
	}
	s := strings.TrimSuffix(string(raw), "\x00")
	return &Stream{records: strings.Split(s, "\x00")}
}

// Next extracts the next jail's parameters into rec, consuming records from
// the head of the stream up to and including the group terminator.  It
// returns false only when the stream is already exhausted; a lone terminator
// yields an empty Record, and a group that reaches end-of-stream without a
// terminator is still returned.
func (s *Stream) Next(rec *Record) bool {
	rec.reset()
	if len(s.records) == 0 {
		return false
	}
	consumed := 0
	for _, raw := range s.records {
		consumed++
		if raw == "" {
			break
		}
		key, value, _ := strings.Cut(raw, "=")
		rec.Set(key, value)
	}
	s.records = s.records[consumed:]
	return true
}
