package cart

// Snapshot est la forme sérialisable du panier (stockée dans Redis)
type Snapshot struct {
	Lines []Line `json:"lines"`
}

func (c *Cart) Snapshot() Snapshot {
	return Snapshot{Lines: c.Lines()}
}

// FromSnapshot reconstruit un panier. Les lignes à quantité nulle sont
// ignorées et les doublons fusionnés.
func FromSnapshot(s Snapshot) *Cart {
	c := New()
	for _, l := range s.Lines {
		if l.Quantity <= 0 {
			continue
		}
		if existing := c.find(l.ID); existing != nil {
			existing.Quantity += l.Quantity
			continue
		}
		line := l
		c.lines = append(c.lines, &line)
	}
	return c
}
