package errors

import "fmt"

var (
	ErrNegativeNumber   = fmt.Errorf("Negative number not allowed")
	ErrSquareOutOfRange = fmt.Errorf("square is not a finite number")
	ErrInvalidRatedItem = fmt.Errorf("invalid rated item")
	ErrInvalidProduct   = fmt.Errorf("invalid product")
	ErrUnknownDay       = fmt.Errorf("unknown day")
)
