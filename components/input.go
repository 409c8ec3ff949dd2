package components

// ButtonsData is the level-held state of the six buttons for one tick.
// Edge events are not tracked; the mapper only needs what is down now.
type ButtonsData struct {
	Left, Right bool
	Up, Down    bool
	A, B        bool
}
