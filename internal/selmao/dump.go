package selmao

import (
	"fmt"
	"strings"
)

var rowConsonants = []byte{0, 'b', 'c', 'd', 'f', 'g', 'j', 'k', 'l', 'm', 'n', 'p', 'r', 's', 't', 'v', 'x', 'z'}

// Dump renders the cmavo skeleton table for the "-c" CLI flag: one line per
// consonant row, each cell the selma'o name at that vowel-pattern index, or
// "-" for an unmapped cell.
func Dump() string {
	var sb strings.Builder
	for row, cons := range rowConsonants {
		label := "(vowel)"
		if cons != 0 {
			label = string(cons)
		}
		sb.WriteString(fmt.Sprintf("%-8s", label))
		for col := 0; col < 46; col++ {
			cat := skeleton[row][col]
			cell := "-"
			if cat != 0 {
				cell = cat.Name()
			}
			sb.WriteString(fmt.Sprintf(" %-6s", cell))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
