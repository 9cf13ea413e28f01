package board

import "strings"

// IsCapture returns true if m captures a piece when played in p,
// including en passant captures.
func (p *Position) IsCapture(m Move) bool {
	if !p.IsEmpty(m.To()) {
		return true
	}
	pt, _ := p.PieceAt(m.From())
	return pt == Pawn && p.EnPassant.Is(m.To())
}

// LongAlgebraic renders m in long algebraic notation, e.g. "Ng1f3",
// "e4xd5" or "e7e8q". It returns "" if no piece stands on the origin.
func (p *Position) LongAlgebraic(m Move) string {
	pt, _ := p.PieceAt(m.From())
	if pt == NoPieceType {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(pt.Letter())
	sb.WriteString(m.From().String())
	if p.IsCapture(m) {
		sb.WriteByte('x')
	}
	sb.WriteString(m.To().String())
	if promo, ok := m.Promotion(); ok {
		sb.WriteByte(promo.Char())
	}
	return sb.String()
}
