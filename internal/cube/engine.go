package cube

// quarterTurn performs one clockwise quarter turn of face.
func (c *Cube) quarterTurn(face Face) {
	t := &moveTable[face]

	base := int(face) * FaceletsPerFace
	var old [FaceletsPerFace]Color
	copy(old[:], c.facelets[base:base+FaceletsPerFace])
	for i, src := range t.own {
		c.facelets[base+i] = old[src]
	}

	// Every strip is read before it is overwritten except strips[3], which
	// is saved first.
	s := &t.strips
	var saved [3]Color
	for j, idx := range s[3] {
		saved[j] = c.facelets[idx]
	}
	for k := 3; k > 0; k-- {
		for j := range s[k] {
			c.facelets[s[k][j]] = c.facelets[s[k-1][j]]
		}
	}
	for j, idx := range s[0] {
		c.facelets[idx] = saved[j]
	}
}

// QuarterTurn performs one clockwise quarter turn of face.
func (c *Cube) QuarterTurn(face Face) error {
	if !face.Valid() {
		return ErrUnknownFace
	}
	c.quarterTurn(face)
	return nil
}

// Apply applies moves in order. All moves are checked first: if any is
// invalid the cube is unchanged and a *SequenceError is returned.
func (c *Cube) Apply(moves ...Move) error {
	if err := ValidateMoves(moves); err != nil {
		return err
	}
	for _, m := range moves {
		c.applyMove(m)
	}
	return nil
}

func (c *Cube) applyMove(m Move) {
	for n := m.Turn.QuarterTurns(); n > 0; n-- {
		c.quarterTurn(m.Face)
	}
}

// ApplyMove parses token and applies it. On error the cube is unchanged.
func (c *Cube) ApplyMove(token string) error {
	m, err := ParseMove(token)
	if err != nil {
		return err
	}
	c.applyMove(m)
	return nil
}

// ApplySequence applies tokens left to right. It stops at the first bad
// token and returns a *SequenceError with its index; moves before it stay
// applied.
func (c *Cube) ApplySequence(tokens []string) error {
	for i, tok := range tokens {
		if err := c.ApplyMove(tok); err != nil {
			return &SequenceError{Index: i, Token: tok, Err: err}
		}
	}
	return nil
}
