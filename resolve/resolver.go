package resolve

import (
	"strings"

	"github.com/NickyBoy89/sigfind/descriptor"
	log "github.com/sirupsen/logrus"
)

// JavaLang is the package every compilation unit imports implicitly
const JavaLang = "java.lang."

// Candidate is one way a short name could be qualified
type Candidate struct {
	// Which rule produced the prefix: package, java.lang, default, import
	Rule   string
	Prefix string
}

// Candidates lists, in priority order, every prefix under which element could
// be resolved in ctx: the file's own package, java.lang, the default package,
// then each import in declaration order. Single imports only contribute when
// their simple name is exactly element. A qualified context only offers the
// name as written.
func Candidates(element string, ctx *Context) []Candidate {
	if ctx.Qualified {
		return []Candidate{{Rule: "qualified", Prefix: ""}}
	}
	candidates := []Candidate{
		{Rule: "package", Prefix: ctx.packagePrefix()},
		{Rule: "java.lang", Prefix: JavaLang},
		{Rule: "default", Prefix: ""},
	}
	for _, imp := range ctx.Imports {
		if imp.Kind == Single && imp.SimpleName != element {
			continue
		}
		candidates = append(candidates, Candidate{Rule: "import", Prefix: imp.Prefix})
	}
	return candidates
}

// JVMForm renders prefix + name in descriptor form: a primitive letter, or
// L<binary name>; with one `[` per array dimension
func JVMForm(prefix string, name TypeName) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("[", name.Dimensions))
	if code, ok := descriptor.PrimitiveCode(name.Element); ok {
		sb.WriteByte(code)
		return sb.String()
	}
	sb.WriteByte('L')
	sb.WriteString(strings.ReplaceAll(prefix+name.Element, ".", "/"))
	sb.WriteByte(';')
	return sb.String()
}

// MatchWithPrefix reports whether qualifying name with prefix yields target
func MatchWithPrefix(target descriptor.Descriptor, name TypeName, prefix string) bool {
	// Depth mismatches can never match, whatever the prefix
	if name.Dimensions != target.Dimensions() {
		return false
	}
	return JVMForm(prefix, name) == target.String()
}

// Resolve returns the first candidate under which name denotes target
func Resolve(target descriptor.Descriptor, name TypeName, ctx *Context) (Candidate, bool) {
	if name.Element == "" {
		return Candidate{}, false
	}
	for _, candidate := range Candidates(name.Element, ctx) {
		if MatchWithPrefix(target, name, candidate.Prefix) {
			return candidate, true
		}
	}
	return Candidate{}, false
}

// Matches reports whether shortTypeName, as written in the file described by
// ctx, could denote target. It never consults a symbol table, so a name that
// only looks resolvable through an import is accepted.
func Matches(target descriptor.Descriptor, shortTypeName string, ctx *Context) bool {
	_, ok := Resolve(target, ParseTypeName(shortTypeName), ctx)
	return ok
}

// Resolver is Matches with debug tracing
type Resolver struct {
	Logger log.FieldLogger
}

func NewResolver(logger log.FieldLogger) *Resolver {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Resolver{Logger: logger}
}

func (r *Resolver) Matches(target descriptor.Descriptor, shortTypeName string, ctx *Context) bool {
	candidate, ok := Resolve(target, ParseTypeName(shortTypeName), ctx)
	if ok {
		r.Logger.WithFields(log.Fields{
			"target": target.String(),
			"type":   shortTypeName,
			"rule":   candidate.Rule,
			"prefix": candidate.Prefix,
		}).Debug("Resolved type name")
	}
	return ok
}
