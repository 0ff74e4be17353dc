package validator

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
}

func (s *ValidatorTestSuite) TestIsValidEmail() {
	tests := []struct {
		desc       string
		email      string
		expIsValid bool
	}{
		{
			desc:       "invalid email - no at sign",
			email:      "student.kiit.ac.in",
			expIsValid: false,
		},
		{
			desc:       "invalid email - missing tld",
			email:      "student@kiit",
			expIsValid: false,
		},
		{
			desc:       "valid email",
			email:      "21052000@kiit.ac.in",
			expIsValid: true,
		},
	}
	for _, t := range tests {
		s.Equal(t.expIsValid, IsValidEmail(t.email), t.desc)
	}
}

func (s *ValidatorTestSuite) TestIsCampusEmail() {
	tests := []struct {
		desc       string
		email      string
		domain     string
		expIsValid bool
	}{
		{
			desc:       "campus email",
			email:      "21052000@kiit.ac.in",
			domain:     "kiit.ac.in",
			expIsValid: true,
		},
		{
			desc:       "campus email - mixed case",
			email:      "Student@KIIT.ac.in",
			domain:     "kiit.ac.in",
			expIsValid: true,
		},
		{
			desc:       "outside domain",
			email:      "student@gmail.com",
			domain:     "kiit.ac.in",
			expIsValid: false,
		},
		{
			desc:       "malformed",
			email:      "@kiit.ac.in",
			domain:     "kiit.ac.in",
			expIsValid: false,
		},
	}
	for _, t := range tests {
		s.Equal(t.expIsValid, IsCampusEmail(t.email, t.domain), t.desc)
	}
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}
