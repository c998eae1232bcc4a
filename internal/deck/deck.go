package deck

// New returns a standard 52-card deck in a fixed pre-shuffle order
// (clubs through spades, deuce through ace).
func New() []Card {
	cards := make([]Card, 0, 52)
	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// Shuffle returns a permutation of cards derived deterministically from the
// seed string: the same seed always yields the same order. The input slice
// is not modified.
//
// The permutation is Fisher-Yates from the top index down, with each swap
// index picked as floor(rng()*(i+1)). The generator emits values strictly
// below 1.0, so the swap index never exceeds i.
func Shuffle(cards []Card, seed string) []Card {
	out := make([]Card, len(cards))
	copy(out, cards)

	rng := newRNG(hashSeed(seed))
	for i := len(out) - 1; i > 0; i-- {
		j := int(rng.Float64() * float64(i+1))
		out[i], out[j] = out[j], out[i]
	}
	return out
}
