package ui

// counter is the click-counter demo carried over from the home page.
// State is instance-scoped: remounting the view resets it to zero.
type counter struct {
	count int
}

func (c *counter) increment() {
	c.count++
}
