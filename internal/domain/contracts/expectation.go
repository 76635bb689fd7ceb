package contracts

import "fmt"

// Expectation is a named precondition on a contract's fields, checked after identity validation.
type Expectation int

const (
	ExpectContentAttached Expectation = iota + 1
	ExpectNotManuallyApproved
	ExpectNotificationUnread
)

type expectationDef struct {
	description string
	holds       func(*Contract) bool
}

var expectations = map[Expectation]expectationDef{
	ExpectContentAttached: {
		description: "contract content is attached",
		holds:       func(c *Contract) bool { return c.Content != nil },
	},
	ExpectNotManuallyApproved: {
		description: "contract has not been manually approved",
		holds:       func(c *Contract) bool { return !c.WasManuallyApproved },
	},
	ExpectNotificationUnread: {
		description: "contract notification has not been read",
		holds:       func(c *Contract) bool { return !c.HasNotificationBeenRead },
	},
}

// Description is the fixed human-readable rendering used in failures.
func (e Expectation) Description() string {
	if def, ok := expectations[e]; ok {
		return def.description
	}
	return fmt.Sprintf("unknown expectation %d", int(e))
}

func (e Expectation) String() string { return e.Description() }

// Holds evaluates the expectation. Unknown expectations and nil contracts never hold.
func (e Expectation) Holds(c *Contract) bool {
	def, ok := expectations[e]
	if !ok || c == nil {
		return false
	}
	return def.holds(c)
}
