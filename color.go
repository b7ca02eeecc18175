// color.go defines the two shogi players.

package shogo

// Color identifies a player: Black (sente, moves first) or White (gote).
type Color int

const (
	Black Color = iota
	White
)

// Flip returns the opposing color.
func (c Color) Flip() Color {
	return c ^ 1
}

func (c Color) String() string {
	if c == Black {
		return "b"
	}
	return "w"
}
