package main

// census is the live piece count per color. It belongs to whoever owns the
// pieces, a roster here, so every caller and every test gets its own.
type census struct {
	White int
	Black int
}

func (c *census) add(kind uint8) {
	if kind&blackBit != 0 {
		c.Black++
	} else {
		c.White++
	}
}

func (c *census) remove(kind uint8) {
	if kind&blackBit != 0 {
		c.Black--
	} else {
		c.White--
	}
}

func (c census) total() int {
	return c.White + c.Black
}

// validate is a sanity bound, not a rules check: it says nothing about
// distinct squares or legal piece composition.
func (c census) validate() bool {
	return c.White <= 16 && c.Black <= 16
}

func censusFor(pieces []Piece) census {
	var c census
	for _, piece := range pieces {
		c.add(piece.Kind)
	}
	return c
}
