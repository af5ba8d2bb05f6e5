//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"card-drop/internal/domain/participant"
	"card-drop/internal/handler/api"
	resdto "card-drop/internal/handler/dto/response"
	"card-drop/internal/handler/middleware"
	"card-drop/internal/pkg/errs"
	"card-drop/internal/usecase/commands"
	"card-drop/internal/usecase/queries"
	"card-drop/tests/common/httptest"
	commandsmock "card-drop/tests/mock/commands"
	queriesmock "card-drop/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const apiToken = "operator-token"

type ParticipantHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockClaimCommands
	mockQueries  *queriesmock.MockLeaderboardQueries
	handler      *api.ParticipantHandler
}

func (s *ParticipantHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockClaimCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockLeaderboardQueries(s.mockCtrl)
	s.handler = api.NewParticipantHandler(s.mockCommands, s.mockQueries)

	auth := middleware.NewAuthMiddleware(apiToken)
	s.router.POST("/participants/:id/claim", auth.RequireToken(), s.handler.Claim)
	s.router.GET("/participants/:id/status", s.handler.Status)
	s.router.PUT("/participants/:id/name", auth.RequireToken(), s.handler.Rename)
}

func (s *ParticipantHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestParticipantHandlerSuite(t *testing.T) {
	suite.Run(t, new(ParticipantHandlerTestSuite))
}

// ================================================================================
// TestClaim
// ================================================================================

func (s *ParticipantHandlerTestSuite) TestClaim() {
	url := "/participants/7/claim"
	until := time.Date(2025, 1, 1, 12, 30, 0, 0, time.UTC)

	s.Run("success: returns the claimed item", func() {
		s.mockCommands.EXPECT().Claim(gomock.Any(), participant.ID(7)).
			Return(&commands.ClaimResult{
				Outcome:       commands.OutcomeSuccess,
				ItemID:        "dragon.png",
				Points:        42,
				Score:         42,
				CooldownUntil: until,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, apiToken)

		var body resdto.ClaimResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("success", body.Outcome)
		s.Equal("dragon.png", body.ItemID)
		s.Equal(42, body.Score)
		s.Equal(until.Unix(), body.CooldownUntil)
	})

	s.Run("success: blocked claim reports remaining time", func() {
		s.mockCommands.EXPECT().Claim(gomock.Any(), participant.ID(7)).
			Return(&commands.ClaimResult{
				Outcome:       commands.OutcomeBlocked,
				Score:         42,
				CooldownUntil: until,
				Remaining:     90 * time.Second,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, apiToken)

		var body resdto.ClaimResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("blocked", body.Outcome)
		s.Empty(body.ItemID)
		s.Equal(int64(90), body.RemainingSeconds)
	})

	s.Run("success: concurrent claim is retried", func() {
		gomock.InOrder(
			s.mockCommands.EXPECT().Claim(gomock.Any(), participant.ID(7)).
				Return(nil, errs.Wrapf(errs.ErrConcurrentModification, "participant %d", 7)),
			s.mockCommands.EXPECT().Claim(gomock.Any(), participant.ID(7)).
				Return(&commands.ClaimResult{Outcome: commands.OutcomeBlocked, CooldownUntil: until}, nil),
		)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, apiToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 401 Unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 401 Unauthorized with wrong token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "guess")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 400 Bad Request for invalid id", func() {
		for _, bad := range []string{"abc", "0", "-5"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/participants/"+bad+"/claim", nil, apiToken)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "empty inventory",
				commandsError:  errs.Wrap(errs.ErrNoItemsAvailable, "pick"),
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "No items available",
			},
			{
				name:           "snapshot write failed",
				commandsError:  errs.Mark(errors.New("disk full"), errs.ErrPersistenceFailure),
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "Claim not persisted",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("boom"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Claim(gomock.Any(), participant.ID(7)).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, apiToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestStatus
// ================================================================================

func (s *ParticipantHandlerTestSuite) TestStatus() {
	s.Run("success: returns status with rank", func() {
		rank := 2
		until := time.Date(2025, 1, 1, 12, 30, 0, 0, time.UTC)
		s.mockQueries.EXPECT().Status(gomock.Any(), participant.ID(7)).
			Return(&queries.StatusView{
				ID:            7,
				DisplayName:   "Ada",
				Remaining:     5 * time.Minute,
				CooldownUntil: &until,
				Score:         60,
				Rank:          &rank,
				ItemCount:     2,
				Items:         []string{"a.png", "b.png"},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/participants/7/status", nil, "")

		var body resdto.StatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(7), body.ID)
		s.False(body.Eligible)
		s.Equal(int64(300), body.RemainingSeconds)
		s.Require().NotNil(body.CooldownUntil)
		s.Equal(until.Unix(), *body.CooldownUntil)
		s.Require().NotNil(body.Rank)
		s.Equal(2, *body.Rank)
		s.Equal([]string{"a.png", "b.png"}, body.Items)
	})

	s.Run("success: unclaimed participant has null rank", func() {
		s.mockQueries.EXPECT().Status(gomock.Any(), participant.ID(8)).
			Return(&queries.StatusView{ID: 8, DisplayName: "Player_8", Eligible: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/participants/8/status", nil, "")

		var body resdto.StatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Eligible)
		s.Nil(body.Rank)
		s.Empty(body.Items)
	})

	s.Run("error: 400 Bad Request for invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/participants/x/status", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

// ================================================================================
// TestRename
// ================================================================================

func (s *ParticipantHandlerTestSuite) TestRename() {
	url := "/participants/7/name"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().RegisterIdentity(gomock.Any(), participant.ID(7), "Ada", "Lovelace").
			Return(nil).Times(1)

		body := map[string]string{"first_name": " Ada ", "last_name": "Lovelace"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, apiToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, body := range []map[string]string{
			{},
			{"first_name": "   "},
			{"last_name": "only"},
		} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, apiToken)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		}
	})

	s.Run("error: 503 when the name was not persisted", func() {
		s.mockCommands.EXPECT().RegisterIdentity(gomock.Any(), participant.ID(7), "Ada", "").
			Return(errs.Mark(errors.New("disk full"), errs.ErrPersistenceFailure)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]string{"first_name": "Ada"}, apiToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Name not persisted")
	})
}
