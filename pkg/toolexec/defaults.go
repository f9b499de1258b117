package toolexec

// DefaultRegistry returns a registry with the built-in skillbox tools
// registered.
func DefaultRegistry() Registry {
	r := NewRegistry()
	// Registration of built-ins cannot collide
	_ = r.Register(NewCalculatorTool())
	_ = r.Register(NewTemplateTool())
	return r
}
