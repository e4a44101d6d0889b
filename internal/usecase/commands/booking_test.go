//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	dombooking "classbook/internal/domain/booking"
	"classbook/internal/domain/tier"
	"classbook/internal/infra"
	"classbook/internal/pkg/clock"
	"classbook/internal/pkg/config"
	"classbook/internal/usecase/commands"
	"classbook/tests/common/builder"
	commandsmock "classbook/tests/mock/commands"
	queriesmock "classbook/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var bookingNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

type BookingCommandsTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockRepo    *commandsmock.MockBookingRepository
	mockReader  *commandsmock.MockSessionReader
	mockFinder  *commandsmock.MockUserFinder
	mockQueries *queriesmock.MockBookingQueries
	clock       *clock.FakeClock
	commands    commands.BookingCommands

	userID    uuid.UUID
	sessionID uuid.UUID
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = commandsmock.NewMockBookingRepository(s.mockCtrl)
	s.mockReader = commandsmock.NewMockSessionReader(s.mockCtrl)
	s.mockFinder = commandsmock.NewMockUserFinder(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.clock = clock.NewFakeClock(bookingNow)
	s.commands = commands.NewBookingCommands(
		s.mockRepo, s.mockReader, s.mockFinder, s.mockQueries,
		nil, s.clock,
		config.BookingConfig{AttendanceGrace: 30 * time.Minute},
	)
	s.userID = uuid.New()
	s.sessionID = uuid.New()
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) snapshot(mutate ...func(*builder.SessionBuilder)) *commands.SessionSnapshot {
	b := builder.NewSessionBuilder()
	b.ID = s.sessionID
	b.StartTime = bookingNow.Add(24 * time.Hour)
	for _, m := range mutate {
		m(b)
	}
	return b.BuildSnapshot()
}

func (s *BookingCommandsTestSuite) expectActor(t *tier.Tier) {
	b := builder.NewUserBuilder()
	b.ID = s.userID
	b.Tier = t
	s.mockFinder.EXPECT().FindByID(gomock.Any(), s.userID).Return(b.BuildDomain(), nil)
}

func tierOf(t tier.Tier) *tier.Tier { return &t }

// ================================================================================
// Create
// ================================================================================

func (s *BookingCommandsTestSuite) TestCreateSucceeds() {
	s.mockReader.EXPECT().SnapshotByID(gomock.Any(), s.sessionID).Return(s.snapshot(), nil)
	s.expectActor(tierOf(tier.TierBasic))
	s.mockRepo.EXPECT().HasActiveBooking(gomock.Any(), s.userID, s.sessionID).Return(false, nil)

	monthStart := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	s.mockRepo.EXPECT().
		CountCreatedBetween(gomock.Any(), s.userID, monthStart, monthStart.AddDate(0, 1, 0)).
		Return(2, nil)

	var created *dombooking.Booking
	s.mockRepo.EXPECT().CreateIfCapacity(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, b *dombooking.Booking) error {
			created = b
			return nil
		})

	view := builder.NewBookingBuilder().BuildView()
	s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, gomock.Any()).Return(view, nil)

	got, err := s.commands.Create(context.Background(), s.userID, s.sessionID)

	s.Require().NoError(err)
	s.Equal(view, got)
	s.Require().NotNil(created)
	s.Equal(s.userID, created.UserID())
	s.Equal(s.sessionID, created.SessionID())
	s.Equal(dombooking.StatusConfirmed, created.Status())
	s.Equal(bookingNow, created.CreatedAt())
}

func (s *BookingCommandsTestSuite) TestCreateSessionNotFound() {
	s.mockReader.EXPECT().SnapshotByID(gomock.Any(), s.sessionID).
		Return(nil, infra.WrapRepoErr("session not found", pgx.ErrNoRows, infra.KindNotFound))

	_, err := s.commands.Create(context.Background(), s.userID, s.sessionID)

	s.ErrorIs(err, commands.ErrSessionNotFound)
}

func (s *BookingCommandsTestSuite) TestCreateRejectsNonScheduledSession() {
	snap := s.snapshot(func(b *builder.SessionBuilder) { b.Status = "cancelled" })
	s.mockReader.EXPECT().SnapshotByID(gomock.Any(), s.sessionID).Return(snap, nil)

	_, err := s.commands.Create(context.Background(), s.userID, s.sessionID)

	s.ErrorIs(err, commands.ErrSessionNotBookable)
}

func (s *BookingCommandsTestSuite) TestCreateRejectsStartedSession() {
	snap := s.snapshot(func(b *builder.SessionBuilder) { b.StartTime = bookingNow })
	s.mockReader.EXPECT().SnapshotByID(gomock.Any(), s.sessionID).Return(snap, nil)

	_, err := s.commands.Create(context.Background(), s.userID, s.sessionID)

	s.ErrorIs(err, commands.ErrBookingClosed)
}

func (s *BookingCommandsTestSuite) TestCreateTierGate() {
	cases := []struct {
		name     string
		required string
		held     *tier.Tier
		allowed  bool
	}{
		{name: "no tier denied even for basic", required: "basic", held: nil, allowed: false},
		{name: "lower tier denied", required: "performance", held: tierOf(tier.TierBasic), allowed: false},
		{name: "equal tier allowed", required: "performance", held: tierOf(tier.TierPerformance), allowed: true},
		{name: "higher tier allowed", required: "basic", held: tierOf(tier.TierChampion), allowed: true},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			snap := s.snapshot(func(b *builder.SessionBuilder) { b.TierLevel = tc.required })
			s.mockReader.EXPECT().SnapshotByID(gomock.Any(), s.sessionID).Return(snap, nil)
			s.expectActor(tc.held)

			if tc.allowed {
				// Let the attempt fail at the duplicate check to stop early.
				s.mockRepo.EXPECT().HasActiveBooking(gomock.Any(), s.userID, s.sessionID).Return(true, nil)
			}

			_, err := s.commands.Create(context.Background(), s.userID, s.sessionID)

			if tc.allowed {
				s.ErrorIs(err, commands.ErrDuplicateBooking)
			} else {
				s.ErrorIs(err, commands.ErrTierInsufficient)
			}
		})
	}
}

func (s *BookingCommandsTestSuite) TestCreateRejectsDuplicateBooking() {
	s.mockReader.EXPECT().SnapshotByID(gomock.Any(), s.sessionID).Return(s.snapshot(), nil)
	s.expectActor(tierOf(tier.TierBasic))
	s.mockRepo.EXPECT().HasActiveBooking(gomock.Any(), s.userID, s.sessionID).Return(true, nil)

	_, err := s.commands.Create(context.Background(), s.userID, s.sessionID)

	s.ErrorIs(err, commands.ErrDuplicateBooking)
}

func (s *BookingCommandsTestSuite) TestCreateEnforcesMonthlyLimit() {
	s.mockReader.EXPECT().SnapshotByID(gomock.Any(), s.sessionID).Return(s.snapshot(), nil)
	s.expectActor(tierOf(tier.TierBasic))
	s.mockRepo.EXPECT().HasActiveBooking(gomock.Any(), s.userID, s.sessionID).Return(false, nil)
	s.mockRepo.EXPECT().CountCreatedBetween(gomock.Any(), s.userID, gomock.Any(), gomock.Any()).
		Return(tier.TierBasic.MonthlyLimit(), nil)

	_, err := s.commands.Create(context.Background(), s.userID, s.sessionID)

	s.ErrorIs(err, commands.ErrMonthlyLimitReached)
}

func (s *BookingCommandsTestSuite) TestCreateChampionSkipsMonthlyCount() {
	s.mockReader.EXPECT().SnapshotByID(gomock.Any(), s.sessionID).Return(s.snapshot(), nil)
	s.expectActor(tierOf(tier.TierChampion))
	s.mockRepo.EXPECT().HasActiveBooking(gomock.Any(), s.userID, s.sessionID).Return(false, nil)
	// No CountCreatedBetween expectation: unlimited tiers never count.
	s.mockRepo.EXPECT().CreateIfCapacity(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, gomock.Any()).
		Return(builder.NewBookingBuilder().BuildView(), nil)

	_, err := s.commands.Create(context.Background(), s.userID, s.sessionID)

	s.NoError(err)
}

func (s *BookingCommandsTestSuite) TestCreateFullSession() {
	s.mockReader.EXPECT().SnapshotByID(gomock.Any(), s.sessionID).Return(s.snapshot(), nil)
	s.expectActor(tierOf(tier.TierBasic))
	s.mockRepo.EXPECT().HasActiveBooking(gomock.Any(), s.userID, s.sessionID).Return(false, nil)
	s.mockRepo.EXPECT().CountCreatedBetween(gomock.Any(), s.userID, gomock.Any(), gomock.Any()).Return(0, nil)
	s.mockRepo.EXPECT().CreateIfCapacity(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(infra.WrapRepoErr("session is full", nil, infra.KindConflict))

	_, err := s.commands.Create(context.Background(), s.userID, s.sessionID)

	s.ErrorIs(err, commands.ErrSessionFull)
}

// ================================================================================
// Cancel / ConfirmAttendance
// ================================================================================

func (s *BookingCommandsTestSuite) ownedBooking() *dombooking.Booking {
	b := builder.NewBookingBuilder()
	b.UserID = s.userID
	b.SessionID = s.sessionID
	return b.BuildDomain()
}

func (s *BookingCommandsTestSuite) TestCancelSucceeds() {
	entity := s.ownedBooking()
	s.mockRepo.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(entity, nil)
	s.mockReader.EXPECT().SnapshotByID(gomock.Any(), s.sessionID).Return(s.snapshot(), nil)
	s.mockRepo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), entity).Return(nil)

	err := s.commands.Cancel(context.Background(), s.userID, entity.ID())

	s.Require().NoError(err)
	s.Equal(dombooking.StatusCancelled, entity.Status())
}

func (s *BookingCommandsTestSuite) TestCancelAfterStart() {
	entity := s.ownedBooking()
	snap := s.snapshot(func(b *builder.SessionBuilder) { b.StartTime = bookingNow.Add(-time.Minute) })
	s.mockRepo.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(entity, nil)
	s.mockReader.EXPECT().SnapshotByID(gomock.Any(), s.sessionID).Return(snap, nil)

	err := s.commands.Cancel(context.Background(), s.userID, entity.ID())

	s.ErrorIs(err, commands.ErrCancelDeadlinePassed)
	s.Equal(dombooking.StatusConfirmed, entity.Status())
}

func (s *BookingCommandsTestSuite) TestCancelHidesForeignBookings() {
	entity := s.ownedBooking()
	s.mockRepo.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(entity, nil)

	err := s.commands.Cancel(context.Background(), uuid.New(), entity.ID())

	s.ErrorIs(err, commands.ErrBookingNotFound)
}

func (s *BookingCommandsTestSuite) TestCancelLostRaceIsInvalidTransition() {
	entity := s.ownedBooking()
	s.mockRepo.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(entity, nil)
	s.mockReader.EXPECT().SnapshotByID(gomock.Any(), s.sessionID).Return(s.snapshot(), nil)
	s.mockRepo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), entity).
		Return(infra.WrapRepoErr("booking is no longer confirmed", nil, infra.KindConflict))

	err := s.commands.Cancel(context.Background(), s.userID, entity.ID())

	s.ErrorIs(err, commands.ErrInvalidTransition)
}

func (s *BookingCommandsTestSuite) TestConfirmAttendanceDuringClass() {
	entity := s.ownedBooking()
	snap := s.snapshot(func(b *builder.SessionBuilder) { b.StartTime = bookingNow.Add(-10 * time.Minute) })
	s.mockRepo.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(entity, nil)
	s.mockReader.EXPECT().SnapshotByID(gomock.Any(), s.sessionID).Return(snap, nil)
	s.mockRepo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), entity).Return(nil)

	err := s.commands.ConfirmAttendance(context.Background(), s.userID, entity.ID())

	s.Require().NoError(err)
	s.Equal(dombooking.StatusAttended, entity.Status())
}

func (s *BookingCommandsTestSuite) TestConfirmAttendanceBeforeClass() {
	entity := s.ownedBooking()
	s.mockRepo.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(entity, nil)
	s.mockReader.EXPECT().SnapshotByID(gomock.Any(), s.sessionID).Return(s.snapshot(), nil)

	err := s.commands.ConfirmAttendance(context.Background(), s.userID, entity.ID())

	s.ErrorIs(err, commands.ErrOutsideAttendanceWindow)
}

func (s *BookingCommandsTestSuite) TestConfirmAttendanceOnCancelledBooking() {
	b := builder.NewBookingBuilder()
	b.UserID = s.userID
	b.SessionID = s.sessionID
	b.Status = dombooking.StatusCancelled
	entity := b.BuildDomain()

	snap := s.snapshot(func(sb *builder.SessionBuilder) { sb.StartTime = bookingNow.Add(-10 * time.Minute) })
	s.mockRepo.EXPECT().FindByID(gomock.Any(), entity.ID()).Return(entity, nil)
	s.mockReader.EXPECT().SnapshotByID(gomock.Any(), s.sessionID).Return(snap, nil)

	err := s.commands.ConfirmAttendance(context.Background(), s.userID, entity.ID())

	s.ErrorIs(err, commands.ErrInvalidTransition)
}
