//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"card-drop/internal/domain/participant"
	"card-drop/internal/pkg/clock"
	"card-drop/internal/pkg/errs"
	"card-drop/internal/usecase/queries"
	commandsmock "card-drop/tests/mock/commands"
	sharedmock "card-drop/tests/mock/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LeaderboardQueriesTestSuite struct {
	suite.Suite
	ctx       context.Context
	mockCtrl  *gomock.Controller
	reader    *sharedmock.MockParticipantReader
	catalog   *sharedmock.MockCatalogStore
	inventory *commandsmock.MockInventoryCommands
	clock     *clock.MockClock
	queries   queries.LeaderboardQueries
}

func (s *LeaderboardQueriesTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.reader = sharedmock.NewMockParticipantReader(s.mockCtrl)
	s.catalog = sharedmock.NewMockCatalogStore(s.mockCtrl)
	s.inventory = commandsmock.NewMockInventoryCommands(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))
	s.queries = queries.NewLeaderboardQueries(s.reader, s.catalog, s.inventory, s.clock)
}

func (s *LeaderboardQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLeaderboardQueriesSuite(t *testing.T) {
	suite.Run(t, new(LeaderboardQueriesTestSuite))
}

func claimer(id participant.ID, name string, score int, items ...string) *participant.Participant {
	if len(items) == 0 {
		items = []string{"a.png"}
	}
	return participant.Reconstruct(id, name, items, score, nil)
}

func (s *LeaderboardQueriesTestSuite) TestTop() {
	s.Run("orders by score and caps at n", func() {
		s.reader.EXPECT().Participants().Return([]*participant.Participant{
			claimer(1, "A", 100),
			claimer(2, "B", 50),
			claimer(3, "C", 75),
		})

		got, err := s.queries.Top(s.ctx, 2)
		s.Require().NoError(err)

		want := []queries.LeaderboardEntry{
			{Rank: 1, ID: 1, DisplayName: "A", Score: 100, ItemCount: 1},
			{Rank: 2, ID: 3, DisplayName: "C", Score: 75, ItemCount: 1},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			s.T().Errorf("Top mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("ties keep first-seen order", func() {
		s.reader.EXPECT().Participants().Return([]*participant.Participant{
			claimer(5, "first", 10),
			claimer(6, "second", 10),
		})

		got, err := s.queries.Top(s.ctx, 10)
		s.Require().NoError(err)
		s.Require().Len(got, 2)
		s.Equal(participant.ID(5), got[0].ID)
		s.Equal(participant.ID(6), got[1].ID)
	})

	s.Run("participants without claims are left out", func() {
		s.reader.EXPECT().Participants().Return([]*participant.Participant{
			participant.Reconstruct(9, "lurker", nil, 0, nil),
		})

		got, err := s.queries.Top(s.ctx, 10)
		s.Require().NoError(err)
		s.Empty(got)
	})

	s.Run("non-positive n yields an empty board", func() {
		got, err := s.queries.Top(s.ctx, 0)
		s.Require().NoError(err)
		s.Empty(got)
	})
}

func (s *LeaderboardQueriesTestSuite) TestRankOf() {
	board := []*participant.Participant{
		claimer(1, "A", 100),
		claimer(2, "B", 50),
		participant.Reconstruct(3, "C", nil, 0, nil),
	}

	s.Run("rank is the 1-based position", func() {
		s.reader.EXPECT().Participants().Return(board)

		rank, err := s.queries.RankOf(s.ctx, 2)
		s.Require().NoError(err)
		s.Require().NotNil(rank)
		s.Equal(2, *rank)
	})

	s.Run("no rank before the first claim", func() {
		s.reader.EXPECT().Participants().Return(board)

		rank, err := s.queries.RankOf(s.ctx, 3)
		s.Require().NoError(err)
		s.Nil(rank)
	})

	s.Run("invalid id", func() {
		_, err := s.queries.RankOf(s.ctx, 0)
		s.ErrorIs(err, errs.ErrInvalidParticipantID)
	})
}

func (s *LeaderboardQueriesTestSuite) TestStatus() {
	now := s.clock.Now()

	s.Run("cooling down participant", func() {
		until := now.Add(29*time.Minute + 30*time.Second)
		p := participant.Reconstruct(1, "A", []string{"a.png", "b.png"}, 60, &until)
		s.reader.EXPECT().GetParticipant(participant.ID(1)).Return(p, true)
		s.reader.EXPECT().Participants().Return([]*participant.Participant{claimer(2, "B", 80), p})

		view, err := s.queries.Status(s.ctx, 1)
		s.Require().NoError(err)

		s.False(view.Eligible)
		s.Equal(29*time.Minute+30*time.Second, view.Remaining)
		s.Require().NotNil(view.CooldownUntil)
		s.True(view.CooldownUntil.Equal(until))
		s.Equal(60, view.Score)
		s.Equal(2, view.ItemCount)
		s.Require().NotNil(view.Rank)
		s.Equal(2, *view.Rank)
	})

	s.Run("unknown participant is zero state", func() {
		s.reader.EXPECT().GetParticipant(participant.ID(42)).Return(nil, false)

		view, err := s.queries.Status(s.ctx, 42)
		s.Require().NoError(err)

		s.True(view.Eligible)
		s.Zero(view.Remaining)
		s.Nil(view.CooldownUntil)
		s.Nil(view.Rank)
		s.Equal("Player_42", view.DisplayName)
		s.Empty(view.Items)
	})

	s.Run("expired cooldown is eligible", func() {
		until := now.Add(-time.Second)
		p := participant.Reconstruct(1, "A", []string{"a.png"}, 10, &until)
		s.reader.EXPECT().GetParticipant(participant.ID(1)).Return(p, true)
		s.reader.EXPECT().Participants().Return([]*participant.Participant{p})

		view, err := s.queries.Status(s.ctx, 1)
		s.Require().NoError(err)
		s.True(view.Eligible)
		s.Nil(view.CooldownUntil)
	})
}

func (s *LeaderboardQueriesTestSuite) TestStats() {
	s.reader.EXPECT().Participants().Return([]*participant.Participant{
		claimer(1, "A", 100, "a.png", "b.png"),
		claimer(2, "B", 50),
		participant.Reconstruct(3, "C", nil, 0, nil),
	})
	s.catalog.EXPECT().CatalogSize().Return(7)
	s.inventory.EXPECT().Items().Return([]string{"a.png", "b.png", "c.png"})

	got, err := s.queries.Stats(s.ctx)
	s.Require().NoError(err)

	want := &queries.StatsView{
		Participants: 3,
		Claimers:     2,
		ItemsOwned:   3,
		TotalPoints:  150,
		CatalogSize:  7,
		AvailableNow: 3,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		s.T().Errorf("Stats mismatch (-want +got):\n%s", diff)
	}
}
