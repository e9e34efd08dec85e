package domain

// An operator-defined shortcut mapping a short alias (e.g. "home") to a full
// free-text address. Aliases are matched case-insensitively.
type Place struct {
	Alias   string
	Address string
}
