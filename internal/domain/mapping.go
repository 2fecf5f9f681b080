package domain

// Entry is a single alias -> target pair of the mapping file.
type Entry struct {
	Alias  string
	Target string
}

// Mapping is the ordered set of entries read from the mapping file.
type Mapping []Entry

// Aliases returns the aliases in mapping order.
func (m Mapping) Aliases() []string {
	aliases := make([]string, 0, len(m))
	for _, e := range m {
		aliases = append(aliases, e.Alias)
	}
	return aliases
}
