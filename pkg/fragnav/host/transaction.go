package host

// OpKind is the type of a single host operation.
type OpKind int

const (
	OpAdd     OpKind = iota // Create the view in the container under a tag
	OpAttach                // Re-show a detached view
	OpDetach                // Hide a view but keep it findable by tag
	OpRemove                // Destroy a view
	OpReplace               // Remove every attached screen, then add the view
)

func (k OpKind) String() string {
	switch k {
	case OpAdd:
		return "add"
	case OpAttach:
		return "attach"
	case OpDetach:
		return "detach"
	case OpRemove:
		return "remove"
	case OpReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Transition is a hint for how the host should animate a transaction.
type Transition int

const (
	TransitionUnset Transition = iota
	TransitionNone
	TransitionOpen
	TransitionClose
	TransitionFade
)

// Op is one step of a Transaction.
type Op struct {
	Kind OpKind
	View View
	Tag  string
}

// Transaction is an ordered batch of operations committed atomically.
type Transaction struct {
	ops        []Op
	transition Transition
}

// NewTransaction creates an empty transaction with the given transition hint.
func NewTransaction(transition Transition) *Transaction {
	return &Transaction{transition: transition}
}

func (t *Transaction) Add(view View, tag string) *Transaction {
	t.ops = append(t.ops, Op{Kind: OpAdd, View: view, Tag: tag})
	return t
}

func (t *Transaction) Attach(view View) *Transaction {
	t.ops = append(t.ops, Op{Kind: OpAttach, View: view})
	return t
}

func (t *Transaction) Detach(view View) *Transaction {
	t.ops = append(t.ops, Op{Kind: OpDetach, View: view})
	return t
}

func (t *Transaction) Remove(view View) *Transaction {
	t.ops = append(t.ops, Op{Kind: OpRemove, View: view})
	return t
}

func (t *Transaction) Replace(view View, tag string) *Transaction {
	t.ops = append(t.ops, Op{Kind: OpReplace, View: view, Tag: tag})
	return t
}

// Ops returns a copy of the queued operations.
func (t *Transaction) Ops() []Op {
	out := make([]Op, len(t.ops))
	copy(out, t.ops)
	return out
}

// Transition returns the transition hint.
func (t *Transaction) Transition() Transition {
	return t.transition
}

// IsEmpty returns true if the transaction has no operations.
func (t *Transaction) IsEmpty() bool {
	return len(t.ops) == 0
}

// Len returns the number of operations.
func (t *Transaction) Len() int {
	return len(t.ops)
}
