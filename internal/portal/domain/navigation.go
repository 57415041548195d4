package domain

// NavItem is either a Link or a DropdownGroup. The unexported method seals
// the set; switch on the concrete type to handle both.
type NavItem interface {
	navItem()
}

// Link is a direct navigation entry.
type Link struct {
	Title string
	Icon  string
	Path  string
}

// DropdownGroup is a titled group of links.
type DropdownGroup struct {
	Title string
	Icon  string
	Items []Link
}

func (Link) navItem()          {}
func (DropdownGroup) navItem() {}
