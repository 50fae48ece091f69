package criteria

// ReturnType is satisfied at the declaration of a method whose return type
// should be annotated. It has no logic of its own: locating the method is
// the whole job, so it defers to an IsSigMethod for the same method.
type ReturnType struct {
	inMethod *IsSigMethod
}

func (s *Session) ReturnType(methodName string) (*ReturnType, error) {
	inMethod, err := s.IsSigMethod(methodName)
	if err != nil {
		return nil, err
	}
	return &ReturnType{inMethod: inMethod}, nil
}

func (c *ReturnType) IsSatisfiedBy(path *Path) bool {
	if path == nil {
		return false
	}
	c.inMethod.session.Logger.Trace("ReturnType deferring to signature criterion")
	return c.inMethod.IsSatisfiedBy(path)
}

func (c *ReturnType) Kind() Kind {
	return KindReturnType
}

// String names the method, and the return type when the signature gave one
func (c *ReturnType) String() string {
	target := c.inMethod.Target()
	described := "ReturnTypeCriterion for method: " + target.String()
	switch {
	case !target.HasReturn:
		return described
	case target.IsVoid:
		return described + " returning void"
	default:
		return described + " returning " + target.Return.SourceName()
	}
}
