//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"classbook/internal/domain/schedule"
	"classbook/internal/pkg/clock"
	"classbook/internal/pkg/config"
	"classbook/internal/usecase/commands"
	"classbook/tests/common/builder"
	commandsmock "classbook/tests/mock/commands"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var dispatchNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

type ReminderCommandsTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockReader *commandsmock.MockReminderReader
	mockMarker *commandsmock.MockReminderMarker
	mockMailer *commandsmock.MockMailer
	clock      *clock.FakeClock
	commands   commands.ReminderCommands
}

func (s *ReminderCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockReader = commandsmock.NewMockReminderReader(s.mockCtrl)
	s.mockMarker = commandsmock.NewMockReminderMarker(s.mockCtrl)
	s.mockMailer = commandsmock.NewMockMailer(s.mockCtrl)
	s.clock = clock.NewFakeClock(dispatchNow)
	s.commands = commands.NewReminderCommands(
		s.mockReader, s.mockMarker, s.mockMailer, s.clock,
		config.ReminderConfig{Lookahead: 26 * time.Hour},
	)
}

func (s *ReminderCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReminderCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReminderCommandsTestSuite))
}

func (s *ReminderCommandsTestSuite) candidateStartingIn(d time.Duration) *builder.BookingBuilder {
	b := builder.NewBookingBuilder()
	b.StartTime = dispatchNow.Add(d)
	return b
}

func (s *ReminderCommandsTestSuite) expectCandidates(cs ...*commands.ReminderCandidate) {
	s.mockReader.EXPECT().
		UpcomingCandidates(gomock.Any(), dispatchNow, dispatchNow.Add(26*time.Hour)).
		Return(cs, nil)
}

func (s *ReminderCommandsTestSuite) TestSendsAndMarksADueReminder() {
	candidate := s.candidateStartingIn(24 * time.Hour).BuildReminderCandidate()
	s.expectCandidates(candidate)

	s.mockMailer.EXPECT().Configured().Return(true)
	var sentEmail commands.OutboundEmail
	s.mockMailer.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, email commands.OutboundEmail) error {
			sentEmail = email
			return nil
		})
	s.mockMarker.EXPECT().
		MarkReminderSent(gomock.Any(), candidate.BookingID, schedule.Reminder24h, dispatchNow).
		Return(nil)

	result, err := s.commands.Dispatch(context.Background(), false)

	s.Require().NoError(err)
	s.Equal(1, result.Checked)
	s.Equal(1, result.Queued)
	s.Equal(1, result.Sent)
	s.Equal(0, result.Failed)
	s.Require().Len(result.Items, 1)
	s.Equal(commands.DispatchStatusSent, result.Items[0].Status)
	s.Equal("24h", result.Items[0].Kind)

	s.Equal(*candidate.Email, sentEmail.To)
	s.Contains(sentEmail.Subject, "tomorrow")
	s.Contains(sentEmail.Text, candidate.FirstName)
	s.Contains(sentEmail.Text, candidate.VenueName)
}

func (s *ReminderCommandsTestSuite) TestOneHourReminderSubject() {
	candidate := s.candidateStartingIn(time.Hour).BuildReminderCandidate()
	s.expectCandidates(candidate)

	s.mockMailer.EXPECT().Configured().Return(true)
	s.mockMailer.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, email commands.OutboundEmail) error {
			s.Contains(email.Subject, "Starting soon")
			return nil
		})
	s.mockMarker.EXPECT().
		MarkReminderSent(gomock.Any(), candidate.BookingID, schedule.Reminder1h, dispatchNow).
		Return(nil)

	result, err := s.commands.Dispatch(context.Background(), false)

	s.Require().NoError(err)
	s.Equal(1, result.Sent)
}

func (s *ReminderCommandsTestSuite) TestDryRunSendsNothing() {
	candidate := s.candidateStartingIn(24 * time.Hour).BuildReminderCandidate()
	s.expectCandidates(candidate)

	result, err := s.commands.Dispatch(context.Background(), true)

	s.Require().NoError(err)
	s.True(result.DryRun)
	s.Equal(1, result.Queued)
	s.Equal(0, result.Sent)
	s.Equal(0, result.Failed)
	s.Require().Len(result.Items, 1)
	s.Equal(commands.DispatchStatusDryRun, result.Items[0].Status)
}

func (s *ReminderCommandsTestSuite) TestSkipsCandidatesOutsideTheWindows() {
	s.expectCandidates(
		s.candidateStartingIn(12*time.Hour).BuildReminderCandidate(),
		s.candidateStartingIn(3*time.Hour).BuildReminderCandidate(),
	)

	result, err := s.commands.Dispatch(context.Background(), false)

	s.Require().NoError(err)
	s.Equal(2, result.Checked)
	s.Equal(0, result.Queued)
	s.Empty(result.Items)
}

func (s *ReminderCommandsTestSuite) TestSkipsAlreadySentReminders() {
	b := s.candidateStartingIn(24 * time.Hour)
	sent := dispatchNow.Add(-time.Hour)
	b.Sent24hAt = &sent
	s.expectCandidates(b.BuildReminderCandidate())

	result, err := s.commands.Dispatch(context.Background(), false)

	s.Require().NoError(err)
	s.Equal(0, result.Queued)
}

func (s *ReminderCommandsTestSuite) TestSkipsCandidatesWithoutEmail() {
	candidate := s.candidateStartingIn(24 * time.Hour).BuildReminderCandidate()
	candidate.Email = nil
	s.expectCandidates(candidate)

	result, err := s.commands.Dispatch(context.Background(), false)

	s.Require().NoError(err)
	s.Equal(1, result.Checked)
	s.Equal(0, result.Queued)
}

func (s *ReminderCommandsTestSuite) TestUnconfiguredMailerReportsFailure() {
	candidate := s.candidateStartingIn(24 * time.Hour).BuildReminderCandidate()
	s.expectCandidates(candidate)
	s.mockMailer.EXPECT().Configured().Return(false)

	result, err := s.commands.Dispatch(context.Background(), false)

	s.Require().NoError(err)
	s.Equal(1, result.Failed)
	s.Require().Len(result.Items, 1)
	s.Equal(commands.DispatchStatusFailed, result.Items[0].Status)
	s.Equal("mailer is not configured", result.Items[0].Error)
}

func (s *ReminderCommandsTestSuite) TestSendFailureDoesNotMark() {
	candidate := s.candidateStartingIn(24 * time.Hour).BuildReminderCandidate()
	s.expectCandidates(candidate)

	s.mockMailer.EXPECT().Configured().Return(true)
	s.mockMailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("smtp timeout"))

	result, err := s.commands.Dispatch(context.Background(), false)

	s.Require().NoError(err)
	s.Equal(1, result.Failed)
	s.Equal(0, result.Sent)
	s.Require().Len(result.Items, 1)
	s.Equal("smtp timeout", result.Items[0].Error)
}

func (s *ReminderCommandsTestSuite) TestMarkFailureStillCountsAsSent() {
	candidate := s.candidateStartingIn(24 * time.Hour).BuildReminderCandidate()
	s.expectCandidates(candidate)

	s.mockMailer.EXPECT().Configured().Return(true)
	s.mockMailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
	s.mockMarker.EXPECT().
		MarkReminderSent(gomock.Any(), candidate.BookingID, schedule.Reminder24h, dispatchNow).
		Return(errors.New("connection reset"))

	result, err := s.commands.Dispatch(context.Background(), false)

	s.Require().NoError(err)
	s.Equal(1, result.Sent)
	s.Equal(0, result.Failed)
}

func (s *ReminderCommandsTestSuite) TestReaderFailurePropagates() {
	s.mockReader.EXPECT().
		UpcomingCandidates(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	_, err := s.commands.Dispatch(context.Background(), false)

	s.ErrorIs(err, commands.ErrDatabaseOperationFailed)
}
