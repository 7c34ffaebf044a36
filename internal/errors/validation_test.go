package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/tides-game/tides-api/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) fields(err error) map[string][]string {
	var e *errors.Error
	s.Require().True(errors.As(err, &e))
	fields, ok := e.Meta[errors.MetaValidationErrors].(map[string][]string)
	s.Require().True(ok)
	return fields
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("name", "is required").
		Fieldf("rotation", "must be between %d and %d", 0, 3).
		RequiredField("player_id").
		InvalidField("species_id", "not in catalog")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Equal(errors.ReasonInvalidFields, errors.GetReason(err))
	s.Assert().Equal(
		"validation failed: name: is required; player_id: is required; "+
			"rotation: must be between 0 and 3; species_id: is invalid: not in catalog",
		errors.GetMessage(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	err := vb.Build()
	s.Assert().Nil(err)
}

func (s *ValidationTestSuite) TestRepeatedFieldKeepsEveryMessage() {
	vb := errors.NewValidationBuilder()
	vb.Field("ships", "duplicate id 1").Field("ships", "ship 2: ragged layout")

	fields := s.fields(vb.Build())
	s.Assert().Equal([]string{"duplicate id 1", "ship 2: ragged layout"}, fields["ships"])
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "test", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"valid with spaces", "  test  ", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("field", tc.value, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().NotNil(err)
			} else {
				s.Assert().Nil(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("server.port", 0, 1, 65535, vb)
	errors.ValidateRange("x", 2, 0, 9, vb)
	errors.ValidateRange("moves", 21, 1, 20, vb)

	fields := s.fields(vb.Build())
	s.Assert().Contains(fields["server.port"][0], "must be between 1 and 65535")
	s.Assert().Contains(fields["moves"][0], "must be between 1 and 20")
	s.Assert().NotContains(fields, "x")
}

func (s *ValidationTestSuite) TestValidateEnum() {
	allowedBackends := []string{"memory", "redis"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("storage.backend", "etcd", allowedBackends, vb)
	errors.ValidateEnum("ledger.driver", "memory", []string{"memory", "sqlite"}, vb)

	fields := s.fields(vb.Build())
	s.Assert().Contains(fields["storage.backend"][0], "must be one of: memory, redis")
	s.Assert().NotContains(fields, "ledger.driver")
}
