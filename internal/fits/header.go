// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package fits

// Card is a single header entry. Value is one of the scalar kinds produced
// by the loader: string, bool, int64, float64, or nil for valueless cards.
type Card struct {
	Keyword string
	Value   any
	Comment string
}

// Header is an ordered sequence of cards. Keywords may repeat; repeated
// keywords (HISTORY, COMMENT, ...) form an ordered sub-sequence per keyword.
type Header struct {
	cards []Card
}

// NewHeader builds a header from cards in order.
func NewHeader(cards ...Card) *Header {
	h := &Header{cards: make([]Card, len(cards))}
	copy(h.cards, cards)
	return h
}

// Append adds a card to the end of the header.
func (h *Header) Append(keyword string, value any, comment string) {
	h.cards = append(h.cards, Card{Keyword: keyword, Value: value, Comment: comment})
}

// Cards returns the header's cards in insertion order. The returned slice is
// the header's backing storage and must not be mutated by callers.
func (h *Header) Cards() []Card {
	return h.cards
}

// Len returns the total number of cards, duplicates included.
func (h *Header) Len() int {
	return len(h.cards)
}

// Get returns the first card with the given keyword. Keyword matching is
// case-sensitive.
func (h *Header) Get(keyword string) (Card, bool) {
	for _, c := range h.cards {
		if c.Keyword == keyword {
			return c, true
		}
	}
	return Card{}, false
}

// Value returns the value of the first card with the given keyword, or nil
// when the keyword is absent.
func (h *Header) Value(keyword string) any {
	if c, ok := h.Get(keyword); ok {
		return c.Value
	}
	return nil
}
