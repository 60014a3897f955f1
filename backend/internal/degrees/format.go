package degrees

import "fmt"

// NotConnected is printed when no path exists
const NotConnected = "Not connected."

// Summary is the headline for a connection
func (c *Connection) Summary() string {
	if !c.Result.Found {
		return NotConnected
	}
	return fmt.Sprintf("%d degrees of separation.", c.Result.Degrees())
}

// Lines renders each hop as "{i}: {A} and {B} starred in {M}"
func (c *Connection) Lines() []string {
	lines := make([]string, len(c.Hops))
	for i, h := range c.Hops {
		lines[i] = h.String()
	}
	return lines
}

func (h Hop) String() string {
	return fmt.Sprintf("%d: %s and %s starred in %s", h.Index, h.From.Name, h.To.Name, h.Movie.Title)
}
