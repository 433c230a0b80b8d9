package ports

// Class is a class resolved in the hosted runtime.
type Class interface {
	Path() string
}

// Method is a resolved static method.
type Method interface {
	Name() string
	Signature() string
}

// Runtime is the managed runtime hosting the execute callback. Lookups report
// absence with ok=false; CallStatic errors belong to the runtime.
type Runtime interface {
	FindClass(path string) (Class, bool)
	GetStaticMethod(class Class, name string, signature string) (Method, bool)
	CallStatic(method Method, arg *string) error
}

// Invoker forwards decoded execute strings to the callback target.
type Invoker interface {
	Invoke(text *string)
}
