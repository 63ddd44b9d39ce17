package expr

// Sort is the closed enumeration of value sorts this kernel understands.
// Unknown is a top used to propagate sort-error information without
// aborting construction (see Wrapper).
type Sort int

const (
	Unknown Sort = iota
	Bool
	Int
)

func (s Sort) String() string {
	switch s {
	case Bool:
		return "Bool"
	case Int:
		return "Int"
	default:
		return "Unknown"
	}
}
