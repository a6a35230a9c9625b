package domain

import (
	"fmt"
	"unicode/utf8"
)

// Value is either a Text or a Number.
type Value interface {
	isValue()
}

type Text string

type Number float64

func (Text) isValue() {}
func (Number) isValue() {}

// ProcessValue returns the character count of a Text and the double of a Number.
func ProcessValue(value Value) float64 {
	switch v := value.(type) {
	case Text:
		return float64(utf8.RuneCountInString(string(v)))
	case Number:
		return float64(v) * 2
	default:
		panic(fmt.Sprintf("unsupported value %T", value))
	}
}
