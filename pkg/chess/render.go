package chess

import (
	"strings"

	"github.com/muesli/termenv"
)

// Render draws the position as an 8x8 text board, rank 8 at the top, white
// pieces in upper case. Piece colors degrade gracefully on terminals
// without color support, via termenv's profile detection.
func (s State) Render() string {
	profile := termenv.ColorProfile()
	whitePiece := profile.Color("15")
	blackPiece := profile.Color("208")
	frame := profile.Color("8")

	builder := strings.Builder{}

	// The FEN placement field already lists ranks top-down, which is the
	// printing order.
	placement := strings.Fields(s.Fen())[0]
	for i, rank := range strings.Split(placement, "/") {
		builder.WriteString(termenv.String("12345678"[7-i:8-i] + " ").Foreground(frame).String())
		for _, symbol := range rank {
			if symbol >= '1' && symbol <= '8' {
				builder.WriteString(strings.Repeat(". ", int(symbol-'0')))
				continue
			}

			style := termenv.String(string(symbol) + " ")
			if symbol >= 'A' && symbol <= 'Z' {
				style = style.Foreground(whitePiece).Bold()
			} else {
				style = style.Foreground(blackPiece)
			}
			builder.WriteString(style.String())
		}
		builder.WriteByte('\n')
	}
	builder.WriteString(termenv.String("  a b c d e f g h").Foreground(frame).String())
	builder.WriteByte('\n')

	return builder.String()
}
