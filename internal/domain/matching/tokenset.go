package matching

import (
	"database/sql/driver"
	"encoding/json"
	"sort"
)

// TokenSet is a set of exact-match skill or course identifiers. Tokens are
// case-sensitive and never normalized. The zero value is an empty set.
type TokenSet struct {
	m map[string]struct{}
}

func NewTokenSet(tokens ...string) TokenSet {
	s := TokenSet{m: make(map[string]struct{}, len(tokens))}
	for _, t := range tokens {
		s.m[t] = struct{}{}
	}
	return s
}

// DecodeTokenSet decodes a JSON array of strings. It never fails: nil,
// empty, or malformed input yields the empty set. Non-string elements make
// the whole payload malformed. Empty strings and null elements are dropped.
func DecodeTokenSet(raw []byte) TokenSet {
	if len(raw) == 0 {
		return TokenSet{}
	}
	var tokens []string
	if err := json.Unmarshal(raw, &tokens); err != nil {
		return TokenSet{}
	}
	return TokenSetFromInput(tokens)
}

// TokenSetFromInput builds a set from decoded external input, dropping empty
// tokens. NewTokenSet keeps whatever it is given.
func TokenSetFromInput(tokens []string) TokenSet {
	s := TokenSet{m: make(map[string]struct{}, len(tokens))}
	for _, t := range tokens {
		if t == "" {
			continue
		}
		s.m[t] = struct{}{}
	}
	return s
}

func (s TokenSet) Len() int {
	return len(s.m)
}

func (s TokenSet) IsEmpty() bool {
	return len(s.m) == 0
}

func (s TokenSet) Has(token string) bool {
	_, ok := s.m[token]
	return ok
}

// With returns a copy of s that also contains tokens.
func (s TokenSet) With(tokens ...string) TokenSet {
	out := TokenSet{m: make(map[string]struct{}, len(s.m)+len(tokens))}
	for t := range s.m {
		out.m[t] = struct{}{}
	}
	for _, t := range tokens {
		out.m[t] = struct{}{}
	}
	return out
}

func (s TokenSet) Intersect(other TokenSet) TokenSet {
	small, large := s, other
	if small.Len() > large.Len() {
		small, large = large, small
	}
	out := TokenSet{m: make(map[string]struct{}, small.Len())}
	for t := range small.m {
		if large.Has(t) {
			out.m[t] = struct{}{}
		}
	}
	return out
}

// Difference returns the tokens of s that are not in other.
func (s TokenSet) Difference(other TokenSet) TokenSet {
	out := TokenSet{m: make(map[string]struct{}, len(s.m))}
	for t := range s.m {
		if !other.Has(t) {
			out.m[t] = struct{}{}
		}
	}
	return out
}

func (s TokenSet) Union(other TokenSet) TokenSet {
	out := TokenSet{m: make(map[string]struct{}, len(s.m)+len(other.m))}
	for t := range s.m {
		out.m[t] = struct{}{}
	}
	for t := range other.m {
		out.m[t] = struct{}{}
	}
	return out
}

func (s TokenSet) Intersects(other TokenSet) bool {
	small, large := s, other
	if small.Len() > large.Len() {
		small, large = large, small
	}
	for t := range small.m {
		if large.Has(t) {
			return true
		}
	}
	return false
}

func (s TokenSet) Equal(other TokenSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for t := range s.m {
		if !other.Has(t) {
			return false
		}
	}
	return true
}

// Sorted returns the tokens in ascending byte order.
func (s TokenSet) Sorted() []string {
	out := make([]string, 0, len(s.m))
	for t := range s.m {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func (s TokenSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON follows the DecodeTokenSet contract and never returns an
// error, so a malformed field does not reject the surrounding document.
func (s *TokenSet) UnmarshalJSON(b []byte) error {
	*s = DecodeTokenSet(b)
	return nil
}

// Scan reads a JSON text or JSONB column. NULL and undecodable values scan
// to the empty set.
func (s *TokenSet) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		*s = DecodeTokenSet(v)
	case string:
		*s = DecodeTokenSet([]byte(v))
	default:
		*s = TokenSet{}
	}
	return nil
}

func (s TokenSet) Value() (driver.Value, error) {
	b, err := s.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}
