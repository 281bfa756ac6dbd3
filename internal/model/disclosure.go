package model

// PanelKey identifies one accordion item inside a panel group
type PanelKey string

// NoPanel is the closed state of a disclosure group
const NoPanel PanelKey = ""

// Disclosure tracks the single open item of an accordion group.
// The zero value has every item closed.
type Disclosure struct {
	open PanelKey
}

// NewDisclosure creates a group with the given item open (NoPanel for none)
func NewDisclosure(initial PanelKey) Disclosure {
	return Disclosure{open: initial}
}

// Toggle closes key if it is open, otherwise makes it the only open item
func (d *Disclosure) Toggle(key PanelKey) {
	if d.open == key {
		d.open = NoPanel
		return
	}
	d.open = key
}

// Close collapses whichever item is open
func (d *Disclosure) Close() {
	d.open = NoPanel
}

// Open returns the open key and whether any item is open
func (d Disclosure) Open() (PanelKey, bool) {
	return d.open, d.open != NoPanel
}

// IsOpen reports whether key is the open item
func (d Disclosure) IsOpen(key PanelKey) bool {
	return key != NoPanel && d.open == key
}
