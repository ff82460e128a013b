package highcard

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ResultTestSuite struct {
	suite.Suite
}

func TestResultSuite(t *testing.T) {
	suite.Run(t, new(ResultTestSuite))
}

func (s *ResultTestSuite) TestResult() {
	testCases := []struct {
		name            string
		result          Result
		expectedString  string
		expectedMessage string
		expectedDraw    bool
	}{
		{
			name:            "player one wins",
			result:          ResultPlayerOneWins,
			expectedString:  "PLAYER_ONE_WINS",
			expectedMessage: "Player One Wins!",
			expectedDraw:    false,
		},
		{
			name:            "player two wins",
			result:          ResultPlayerTwoWins,
			expectedString:  "PLAYER_TWO_WINS",
			expectedMessage: "Player Two Wins!",
			expectedDraw:    false,
		},
		{
			name:            "draw",
			result:          ResultDraw,
			expectedString:  "DRAW",
			expectedMessage: "It's a Draw!",
			expectedDraw:    true,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			// Execute & Assert
			s.Equal(tc.expectedString, tc.result.String(), "String should match expected")
			s.Equal(tc.expectedMessage, tc.result.Message(), "Message should match expected")
			s.Equal(tc.expectedDraw, tc.result.IsDraw(), "IsDraw should match expected")
		})
	}
}
