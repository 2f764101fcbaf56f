package notification

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/authcore/internal/testutil"
)

type mockSender struct {
	mock.Mock
}

func (m *mockSender) SendEmail(ctx context.Context, msg Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func TestMailer_SendConfirmationCode(t *testing.T) {
	sender := new(mockSender)
	sender.On("SendEmail", mock.Anything, mock.MatchedBy(func(msg Message) bool {
		return msg.To == "a@x.com" &&
			msg.Tag == tagConfirmation &&
			msg.Subject == "Confirm your email" &&
			assert.Contains(t, msg.BodyHTML, "123456")
	})).Return(nil).Once()

	m := NewMailer(sender, testutil.MakeNoopLogger())
	require.NoError(t, m.SendConfirmationCode(context.Background(), "a@x.com", "123456"))

	sender.AssertExpectations(t)
}

func TestMailer_SendResetLink(t *testing.T) {
	url := "http://localhost:3000/reset-password/abc123"

	sender := new(mockSender)
	sender.On("SendEmail", mock.Anything, mock.MatchedBy(func(msg Message) bool {
		return msg.Tag == tagResetLink && assert.Contains(t, msg.BodyHTML, `href="`+url+`"`)
	})).Return(nil).Once()

	m := NewMailer(sender, testutil.MakeNoopLogger())
	require.NoError(t, m.SendResetLink(context.Background(), "a@x.com", url))

	sender.AssertExpectations(t)
}

func TestMailer_EscapesTemplateData(t *testing.T) {
	sender := new(mockSender)
	sender.On("SendEmail", mock.Anything, mock.MatchedBy(func(msg Message) bool {
		return !strings.Contains(msg.BodyHTML, "<script>") && strings.Contains(msg.BodyHTML, "&lt;script&gt;")
	})).Return(nil).Once()

	m := NewMailer(sender, testutil.MakeNoopLogger())
	require.NoError(t, m.SendConfirmationCode(context.Background(), "a@x.com", "<script>"))
}

func TestMailer_SendFailure(t *testing.T) {
	sendErr := errors.New("smtp down")
	sender := new(mockSender)
	sender.On("SendEmail", mock.Anything, mock.Anything).Return(sendErr).Once()

	m := NewMailer(sender, testutil.MakeNoopLogger())
	err := m.SendConfirmationCode(context.Background(), "a@x.com", "123456")

	require.ErrorIs(t, err, sendErr)
	assert.Contains(t, err.Error(), "failed to send confirm-email email")
}
