package scope

// Memory is the stack of lexical scopes open during parsing. Every frame is
// a Scope whose parent is the frame below it, so lookups walk innermost to
// outermost.
type Memory[V any] struct {
	top   *Scope[V]
	depth int
}

func NewMemory[V any]() *Memory[V] {
	return &Memory[V]{}
}

func (mem *Memory[V]) PushScope() {
	mem.top = New(mem.top)
	mem.depth++
}

// PopScope drops the innermost frame and everything declared in it.
// Popping an empty stack is a no-op.
func (mem *Memory[V]) PopScope() {
	if mem.top == nil {
		return
	}
	mem.top = mem.top.Parent
	mem.depth--
}

func (mem *Memory[V]) Depth() int {
	return mem.depth
}

// Insert declares name in the innermost frame
func (mem *Memory[V]) Insert(name string, element V) error {
	if mem.top == nil {
		return NO_ACTIVE_SCOPE
	}
	return mem.top.Insert(name, element)
}

func (mem *Memory[V]) Lookup(name string) (V, error) {
	if mem.top == nil {
		var empty V
		return empty, SYMBOL_NOT_FOUND_ON_SCOPE
	}
	return mem.top.Lookup(name)
}
