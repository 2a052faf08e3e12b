package catalog

import "fmt"

// DefaultMinFunctions is the size the catalog subcommand pads each DLL to.
const DefaultMinFunctions = 100

// Placeholder returns the synthetic entry used at position n (1-based).
func Placeholder(n int) Function {
	return Function{
		Name:        fmt.Sprintf("placeholder_%d", n),
		Description: DefaultDescription,
	}
}

// Pad tops fns up to target entries with placeholders numbered from len(fns)+1.
// The result is a new slice; fns is never modified and never shortened.
func Pad(fns []Function, target int) []Function {
	out := make([]Function, len(fns), max(len(fns), target))
	copy(out, fns)
	for i := len(fns) + 1; i <= target; i++ {
		out = append(out, Placeholder(i))
	}
	return out
}

// Padded returns a copy of the entry with its function list padded to target.
func (e Entry) Padded(target int) Entry {
	e.Functions = Pad(e.Functions, target)
	return e
}
