package model

import (
	"errors"
	"testing"

	"github.com/fuinorg/objects4j-sub000/internal/apierror"
	"github.com/stretchr/testify/suite"
)

type dayOfTheWeekSuite struct {
	suite.Suite
}

func TestDayOfTheWeekSuite(t *testing.T) {
	suite.Run(t, new(dayOfTheWeekSuite))
}

func (s *dayOfTheWeekSuite) TestParseDayOfTheWeek() {
	testCases := []struct {
		input string
		exp   DayOfTheWeek
		isErr bool
	}{
		{input: "Mon", exp: Mon},
		{input: "mon", exp: Mon},
		{input: "TUE", exp: Tue},
		{input: "sUn", exp: Sun},
		{input: "ph", exp: PH},
		{input: "Monday", isErr: true},
		{input: "Mo", isErr: true},
		{input: "", isErr: true},
	}

	for _, tc := range testCases {
		s.Run(tc.input, func() {
			got, err := ParseDayOfTheWeek(tc.input)
			if tc.isErr {
				var formatErr *apierror.FormatError
				s.True(errors.As(err, &formatErr))
				return
			}

			s.Require().NoError(err)
			s.Equal(tc.exp, got)
		})
	}
}

func (s *dayOfTheWeekSuite) TestString() {
	s.Equal("MON", Mon.String())
	s.Equal("PH", PH.String())
	s.Equal("DayOfTheWeek(0)", DayOfTheWeek(0).String())
}

func (s *dayOfTheWeekSuite) TestIsValidDayOfTheWeek() {
	s.True(IsValidDayOfTheWeek(""))
	s.True(IsValidDayOfTheWeek("wed"))
	s.False(IsValidDayOfTheWeek("xyz"))
}

func (s *dayOfTheWeekSuite) TestNext() {
	days := WeekDays()
	for i, d := range days {
		next, err := d.Next()
		s.Require().NoError(err)
		s.Equal(days[(i+1)%len(days)], next)

		prev, err := next.Previous()
		s.Require().NoError(err)
		s.Equal(d, prev)
	}

	_, err := PH.Next()
	var stateErr *apierror.StateError
	s.True(errors.As(err, &stateErr))

	_, err = PH.Previous()
	s.Error(err)
}

func (s *dayOfTheWeekSuite) TestDayRange() {
	got, err := DayRange(Mon, Fri)
	s.Require().NoError(err)
	s.Equal([]DayOfTheWeek{Mon, Tue, Wed, Thu, Fri}, got)

	got, err = DayRange(Sat, Sun)
	s.Require().NoError(err)
	s.Equal([]DayOfTheWeek{Sat, Sun}, got)

	_, err = DayRange(Fri, Mon)
	s.Error(err)

	_, err = DayRange(Mon, Mon)
	s.Error(err)

	_, err = DayRange(Sat, PH)
	s.Error(err)
}

func (s *dayOfTheWeekSuite) TestOrdering() {
	s.True(Mon.Before(Sun))
	s.True(PH.After(Sun))
	s.False(Wed.After(Wed))
}

func (s *dayOfTheWeekSuite) TestText() {
	var d DayOfTheWeek
	s.Require().NoError(d.UnmarshalText([]byte("fri")))
	s.Equal(Fri, d)

	text, err := d.MarshalText()
	s.Require().NoError(err)
	s.Equal("FRI", string(text))
}
