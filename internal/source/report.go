package source

import "go/types"

// Report is the result of inspecting one named type.
type Report struct {
	Name    string `json:"name" yaml:"name" toml:"name"`
	Package string `json:"package" yaml:"package" toml:"package"`
	Arity   int    `json:"arity" yaml:"arity" toml:"arity"`
	// Ineligible holds the rejection reason; Arity is zero when it is set.
	Ineligible string `json:"ineligible,omitempty" yaml:"ineligible,omitempty" toml:"ineligible,omitempty"`

	Named *types.Named `json:"-" yaml:"-" toml:"-"`
	Err   error        `json:"-" yaml:"-" toml:"-"`
}

// OK reports whether the type is eligible and its arity was inferred.
func (r Report) OK() bool { return r.Err == nil }

// Fields returns the first Arity fields of the reported type.
func (r Report) Fields() []*types.Var {
	if !r.OK() {
		return nil
	}
	st := r.Named.Underlying().(*types.Struct)
	out := make([]*types.Var, r.Arity)
	for i := range out {
		out[i] = st.Field(i)
	}
	return out
}
