package match

import (
	"github.com/NickyBoy89/sigfind/resolve"
	"github.com/NickyBoy89/sigfind/symbol"
	log "github.com/sirupsen/logrus"
)

// Matcher compares candidate declarations against one target signature
type Matcher struct {
	target   *Target
	resolver *resolve.Resolver
	logger   log.FieldLogger
}

// Option configures a Matcher
type Option func(*Matcher)

// WithLogger routes the matcher's debug output to logger
func WithLogger(logger log.FieldLogger) Option {
	return func(m *Matcher) {
		m.logger = logger
	}
}

// New parses signature and returns a matcher for it. A malformed signature
// fails here, never during matching.
func New(signature string, opts ...Option) (*Matcher, error) {
	target, err := ParseTarget(signature)
	if err != nil {
		return nil, err
	}
	m := &Matcher{target: target, logger: log.StandardLogger()}
	for _, opt := range opts {
		opt(m)
	}
	m.resolver = resolve.NewResolver(m.logger)
	return m, nil
}

func (m *Matcher) Target() *Target {
	return m.target
}

// BoundMap maps each type parameter declared on decl to the first bound it
// was declared with, or Object
func BoundMap(decl *symbol.Definition) map[string]string {
	bounds := make(map[string]string, len(decl.TypeParameters))
	for _, param := range decl.TypeParameters {
		bounds[param.Name] = param.FirstBound()
	}
	return bounds
}

// IsMatch reports whether decl is the target method. The name and the number
// of parameters must be equal, and every parameter's written type must resolve
// to the target's descriptor, either directly or through the first bound of
// a type parameter. The return type is never considered.
func (m *Matcher) IsMatch(decl *symbol.Definition, ctx *resolve.Context) bool {
	if decl == nil || ctx == nil {
		return false
	}
	if decl.Name != m.target.Name {
		return false
	}
	if len(decl.Parameters) != len(m.target.Params) {
		return false
	}

	bounds := BoundMap(decl)
	for i, written := range decl.ParameterTypes() {
		if !m.matchParameter(i, written, bounds, ctx) {
			m.logger.WithFields(log.Fields{
				"target":    m.target.String(),
				"parameter": i,
				"type":      written,
			}).Debug("Parameter did not resolve")
			return false
		}
	}
	return true
}

func (m *Matcher) matchParameter(index int, written string, bounds map[string]string, ctx *resolve.Context) bool {
	want := m.target.Params[index]
	if m.resolver.Matches(want, written, ctx) {
		return true
	}

	// Retry once with a type parameter replaced by its bound: T[] -> Date[]
	name := resolve.ParseTypeName(written)
	bound, ok := bounds[name.Element]
	if !ok {
		return false
	}
	return m.resolver.Matches(want, name.WithElement(bound).String(), ctx)
}
