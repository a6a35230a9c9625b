package internal

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

type Config struct {
	LogLevel     string        `env:"LOG_LEVEL,default=INFO"`
	SquareDelay  time.Duration `env:"SQUARE_DELAY,default=1s"`
	SquareInputs string        `env:"SQUARE_INPUTS,default=4 -1"`
	ReportColor  bool          `env:"REPORT_COLOR,default=true"`
}

// ParseInputs reads numbers separated by commas or spaces.
// The env tag syntax reserves commas, so defaults use spaces.
func ParseInputs(str string) ([]float64, error) {
	var inputs []float64
	parts := strings.FieldsFunc(str, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	for _, part := range parts {
		n, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("SQUARE_INPUTS must only hold numbers, got %q", part)
		}
		inputs = append(inputs, n)
	}
	return inputs, nil
}
