// Command safeexpr-keypad is a terminal rendition of the calculator
// keypad. Every rune typed is a button press; a bare newline presses =.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/ostrica/safeexpr/keypad"
)

func main() {
	var pad keypad.Pad
	fmt.Println("Keys: digits . ( ) + - * / % ^  |  C clear, ⌫ or 'b' backspace, = or newline equals, 'q' quits")
	draw(&pad)
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			pad.Equals()
			draw(&pad)
			continue
		}
		for _, r := range line {
			switch r {
			case 'q':
				return
			case 'b':
				pad.Backspace()
			default:
				pad.Press(string(r))
			}
		}
		draw(&pad)
	}
}

func draw(pad *keypad.Pad) {
	fmt.Printf("┌%s┐\n│%16s│\n└%s┘\n", strings.Repeat("─", 16), pad.Display(), strings.Repeat("─", 16))
	for _, row := range keypad.Layout {
		fmt.Println("   " + strings.Join(row, "  "))
	}
}
