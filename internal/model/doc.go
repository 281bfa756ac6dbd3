package model

// Package model defines the domain data of the case-study presenter: the sales
// prediction model evaluated by the simulator, and the small view-state
// machines (phase navigation, single-open accordions, the image focus slot)
// the UI drives. Everything here is pure data with explicit transitions and no
// dependency on the UI toolkit.
