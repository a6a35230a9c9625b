package domain

import (
	"assignment-lab/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetDayType(t *testing.T) {
	req := require.New(t)

	req.Equal("Weekend", GetDayType(Saturday).String())
	req.Equal("Weekday", GetDayType(Wednesday).String())
}

func TestGetDayType_AllDays(t *testing.T) {
	req := require.New(t)
	days := Days()
	req.Len(days, 7)

	for _, d := range days {
		isWeekend := d == Saturday || d == Sunday
		req.Equal(isWeekend, GetDayType(d) == Weekend, d.String())
	}
}

func TestParseDay(t *testing.T) {
	req := require.New(t)

	d, err := ParseDay("saturday")
	req.NoError(err)
	req.Equal(Saturday, d)

	d, err = ParseDay(" Monday ")
	req.NoError(err)
	req.Equal(Monday, d)

	_, err = ParseDay("funday")
	req.ErrorIs(err, errors.ErrUnknownDay)
}

func TestDay_String(t *testing.T) {
	req := require.New(t)

	req.Equal("Sunday", Sunday.String())
	req.Equal("Day(9)", Day(9).String())
}
