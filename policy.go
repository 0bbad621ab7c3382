package intrusive

import "reflect"

// Policy selects what Release does with a node that is still linked.
type Policy int

// Available release policies.
const (
	// PolicyRecover logs a warning and unlinks the node so that its list
	// never points at a released element.
	PolicyRecover Policy = iota
	// PolicyUnchecked skips all checks. Releasing a linked node leaves it in
	// its list and preconditions of node operations are not asserted.
	PolicyUnchecked
)

func (p Policy) String() string {
	switch p {
	case PolicyRecover:
		return "recover"
	case PolicyUnchecked:
		return "unchecked"
	default:
		return "unknown"
	}
}

// Default is the tag for elements that belong to a single list.
type Default struct{}

// Unchecked is embedded in a tag type to select PolicyUnchecked:
//
//	type hot struct{ intrusive.Unchecked }
//
//	type Packet struct {
//		node intrusive.Node[hot]
//	}
type Unchecked struct{}

// ReleasePolicy returns PolicyUnchecked.
func (Unchecked) ReleasePolicy() Policy {
	return PolicyUnchecked
}

// policer is implemented by tags that choose their release policy.
type policer interface {
	ReleasePolicy() Policy
}

// policyOf returns the release policy of Tag. Tags that do not implement
// ReleasePolicy use PolicyRecover.
func policyOf[Tag any]() Policy {
	var tag Tag
	if p, ok := any(tag).(policer); ok {
		return p.ReleasePolicy()
	}
	return PolicyRecover
}

func tagName[Tag any]() string {
	return reflect.TypeFor[Tag]().String()
}
