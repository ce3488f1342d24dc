package deploy

// Kind identifies the concrete variant of a deployment option.
type Kind uint8

const (
	// KindNone is the kind of the Empty terminal marker
	KindNone Kind = iota

	// KindCapacity for mailbox capacity options
	KindCapacity

	// KindSelector for configuration lookup path options
	KindSelector

	// KindExecutor for opaque executor handle options
	KindExecutor

	// KindName for human-readable unit name options
	KindName

	// KindTimeout for processing timeout options
	KindTimeout
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindCapacity:
		return "capacity"
	case KindSelector:
		return "selector"
	case KindExecutor:
		return "executor"
	case KindName:
		return "name"
	case KindTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}
