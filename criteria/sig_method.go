package criteria

import (
	"github.com/NickyBoy89/sigfind/match"
	log "github.com/sirupsen/logrus"
)

// IsSigMethod is satisfied at the declaration of one method, named by its
// JVM signature
type IsSigMethod struct {
	session *Session
	matcher *match.Matcher
}

// IsSigMethod builds the criterion for signature. A malformed signature is
// reported here and never during evaluation.
func (s *Session) IsSigMethod(signature string) (*IsSigMethod, error) {
	matcher, err := match.New(signature, match.WithLogger(s.Logger))
	if err != nil {
		return nil, err
	}
	return &IsSigMethod{session: s, matcher: matcher}, nil
}

func (c *IsSigMethod) IsSatisfiedBy(path *Path) bool {
	if path == nil || path.Unit == nil {
		return false
	}
	if !path.Leaf.IsMethodLike() {
		c.session.Metrics.recordEvaluation(c.Kind(), "skipped")
		return false
	}

	ctx := c.session.ContextFor(path)
	matched := c.matcher.IsMatch(path.Leaf, ctx)

	result := "miss"
	if matched {
		result = "match"
	}
	c.session.Metrics.recordEvaluation(c.Kind(), result)
	c.session.Logger.WithFields(log.Fields{
		"criterion": c.String(),
		"method":    path.Leaf.Name,
		"line":      path.Leaf.Line,
		"matched":   matched,
	}).Debug("Evaluated signature criterion")
	return matched
}

func (c *IsSigMethod) Kind() Kind {
	return KindSigMethod
}

// Target is the parsed signature this criterion looks for
func (c *IsSigMethod) Target() *match.Target {
	return c.matcher.Target()
}

func (c *IsSigMethod) String() string {
	return "IsSigMethodCriterion: " + c.matcher.Target().String()
}
