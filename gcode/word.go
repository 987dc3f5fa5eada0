package gcode

import (
	"strconv"
	"strings"
)

// Word is a single letter+number command token, e.g. X10.5 or G01.
type Word struct {
	W   byte
	Arg float64
}

func (w Word) IsAxis() bool {
	switch w.W {
	case 'X', 'Y', 'Z': // maybe someday 'A', 'B', 'C', 'U', 'V', 'W':
		return true
	}
	return false
}

func formatFloat(f float64, prec int) string {
	s := strconv.FormatFloat(f, 'f', prec, 64)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
	}
	return strings.TrimRight(s, ".")
}

func (w Word) String() string {
	return string(w.W) + formatFloat(w.Arg, 4)
}
