package mailer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSender struct{ mock.Mock }

func (m *mockSender) Send(ctx context.Context, to, subject, text, html string) error {
	return m.Called(to, subject, text, html).Error(0)
}

type recordingPublisher struct{ jobs []any }

func (p *recordingPublisher) PublishJSON(_ context.Context, body any) error {
	p.jobs = append(p.jobs, body)
	return nil
}

func TestQueueNotifier_SendWelcome(t *testing.T) {
	pub := &recordingPublisher{}
	n := NewQueueNotifier(pub, "Mentor Hub", "http://dash")

	require.NoError(t, n.SendWelcome(context.Background(), "a@x.com", "Ada", true))
	require.Len(t, pub.jobs, 1)

	job := pub.jobs[0].(EmailJob)
	require.Equal(t, "a@x.com", job.To)
	require.Equal(t, "welcome", job.Template)
	require.Equal(t, true, job.Data["IsMentor"])
}

func TestDeliver_RendersTemplate(t *testing.T) {
	s := new(mockSender)
	s.On("Send", "a@x.com", "Welcome aboard", mock.MatchedBy(func(text string) bool {
		return text != ""
	}), mock.AnythingOfType("string")).Return(nil)

	err := Deliver(context.Background(), s, EmailJob{To: "a@x.com", Template: "welcome", Data: map[string]any{"Name": "Ada"}})
	require.NoError(t, err)
	s.AssertExpectations(t)
}

func TestDeliver_BadJobs(t *testing.T) {
	s := new(mockSender)

	err := Deliver(context.Background(), s, EmailJob{Template: "welcome"})
	require.ErrorIs(t, err, ErrBadJob)

	err = Deliver(context.Background(), s, EmailJob{To: "a@x.com", Template: "missing"})
	require.ErrorIs(t, err, ErrBadJob)

	err = Deliver(context.Background(), s, EmailJob{To: "a@x.com"})
	require.ErrorIs(t, err, ErrBadJob)

	s.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDeliver_SendErrorIsRetryable(t *testing.T) {
	s := new(mockSender)
	s.On("Send", "a@x.com", "hi", "body", "").Return(errors.New("mailgun down"))

	err := Deliver(context.Background(), s, EmailJob{To: "a@x.com", Subject: "hi", Text: "body"})
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrBadJob)
}
