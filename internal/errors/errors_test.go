package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "sheet not found",
			expected: "NOT_FOUND: sheet not found",
		},
		{
			name:     "resource exhausted error",
			code:     errors.CodeResourceExhausted,
			message:  "no skill points left",
			expected: "RESOURCE_EXHAUSTED: no skill points left",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWithMeta() {
	err := errors.NotFound("skill not in catalog").
		WithMeta("skill", "Juggling").
		WithMeta("sheet_id", "sheet_1")

	s.Equal("Juggling", err.Meta["skill"])
	s.Equal("sheet_1", err.Meta["sheet_id"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(baseErr, "failed to load sheet")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("failed to load sheet", wrapped.Message)
	s.Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	baseErr := errors.NotFound("record not found").WithMeta("sheet_id", "abc")
	wrapped := errors.Wrap(baseErr, "sheet not found")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal("abc", wrapped.Meta["sheet_id"])

	wrapped.WithMeta("extra", true)
	s.NotContains(baseErr.Meta, "extra")
}

func (s *ErrorsTestSuite) TestWrapWithCodeKeepsSentinel() {
	sentinel := stderrors.New("unknown class")
	wrapped := errors.WrapWithCode(sentinel, errors.CodeNotFound, "class not in catalog")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.True(errors.Is(wrapped, sentinel))
	s.True(errors.IsNotFound(wrapped))

	outer := errors.Wrap(wrapped, "check eligibility")
	s.True(errors.Is(outer, sentinel))
	s.True(errors.IsNotFound(outer))
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "should be nil"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err1 := errors.NotFound("a")
	err2 := errors.NotFound("b")
	err3 := errors.InvalidArgument("a")

	s.True(err1.Is(err2))
	s.False(err1.Is(err3))
}

func (s *ErrorsTestSuite) TestGetters() {
	err := errors.ResourceExhausted("no points").WithMeta("available", 14)
	wrapped := errors.Wrap(err, "increment skill")
	stdErr := fmt.Errorf("plain")

	s.Equal(errors.CodeResourceExhausted, errors.GetCode(wrapped))
	s.Equal(errors.CodeInternal, errors.GetCode(stdErr))
	s.Equal(errors.CodeOK, errors.GetCode(nil))

	s.Equal(14, errors.GetMeta(wrapped)["available"])
	s.Nil(errors.GetMeta(stdErr))

	s.Equal("increment skill", errors.GetMessage(wrapped))
	s.Equal("plain", errors.GetMessage(stdErr))
	s.Equal("", errors.GetMessage(nil))
}

func (s *ErrorsTestSuite) TestGRPCConversion() {
	err := errors.NotFound("sheet not found").WithMeta("sheet_id", "123")

	grpcErr := errors.ToGRPCError(err)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Equal(codes.NotFound, st.Code())
	s.Equal("sheet not found", st.Message())

	back := errors.FromGRPCError(grpcErr)
	s.True(errors.IsNotFound(back))
	s.Equal("sheet not found", errors.GetMessage(back))
	s.Equal("123", errors.GetMeta(back)["sheet_id"])
}

func (s *ErrorsTestSuite) TestGRPCConversionPassThrough() {
	grpcErr := status.Error(codes.InvalidArgument, "bad input")
	s.Equal(grpcErr, errors.ToGRPCError(grpcErr))

	st, _ := status.FromError(errors.ToGRPCError(fmt.Errorf("boom")))
	s.Equal(codes.Internal, st.Code())

	s.Nil(errors.ToGRPCError(nil))
	s.Nil(errors.FromGRPCError(nil))
}

func (s *ErrorsTestSuite) TestGRPCCodeMapping() {
	testCases := []struct {
		code     errors.Code
		expected codes.Code
	}{
		{errors.CodeOK, codes.OK},
		{errors.CodeNotFound, codes.NotFound},
		{errors.CodeInvalidArgument, codes.InvalidArgument},
		{errors.CodeResourceExhausted, codes.ResourceExhausted},
		{errors.CodeFailedPrecondition, codes.FailedPrecondition},
		{errors.CodeInternal, codes.Internal},
		{errors.Code("SOMETHING_ELSE"), codes.Unknown},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, tc.code.GRPCCode())
		})
	}
}
