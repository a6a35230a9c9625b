package domain

import (
	"assignment-lab/errors"
	"fmt"
	"strings"
)

type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func (d Day) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("Day(%d)", int(d))
	}
	return dayNames[d]
}

// Days lists the week from Monday to Sunday.
func Days() []Day {
	return []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

func ParseDay(s string) (Day, error) {
	for _, d := range Days() {
		if strings.EqualFold(strings.TrimSpace(s), d.String()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", errors.ErrUnknownDay, s)
}

type DayType int

const (
	Weekday DayType = iota
	Weekend
)

func (t DayType) String() string {
	switch t {
	case Weekend:
		return "Weekend"
	default:
		return "Weekday"
	}
}

func GetDayType(day Day) DayType {
	switch day {
	case Saturday, Sunday:
		return Weekend
	default:
		return Weekday
	}
}
