package email

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSES struct {
	input *ses.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &ses.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewMailer(t *testing.T) {
	tests := []struct {
		name    string
		config  MailerConfig
		wantSES bool
		wantErr bool
	}{
		{name: "noop", config: MailerConfig{Provider: "noop"}},
		{name: "empty provider", config: MailerConfig{}},
		{name: "unknown provider", config: MailerConfig{Provider: "carrier-pigeon"}},
		{
			name: "ses",
			config: MailerConfig{
				Provider:    "ses",
				FromAddress: "cfp@example.com",
				SES:         SESConfig{Region: "us-east-1", AccessKeyID: "id", SecretAccessKey: "secret"},
			},
			wantSES: true,
		},
		{
			name:    "ses without region",
			config:  MailerConfig{Provider: "ses", FromAddress: "cfp@example.com"},
			wantErr: true,
		},
		{
			name:    "ses without sender",
			config:  MailerConfig{Provider: "ses", SES: SESConfig{Region: "us-east-1"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMailer(tt.config, quietLogger())
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			_, isSES := m.(*sesMailer)
			assert.Equal(t, tt.wantSES, isSES)
		})
	}
}

func TestSESMailer_Send(t *testing.T) {
	client := &fakeSES{}
	m := &sesMailer{client: client, fromAddress: "cfp@example.com", fromName: "CFP Team", logger: quietLogger()}

	require.NoError(t, m.Send(context.Background(), "jane@example.com", "Hello", "<p>hi</p>", ""))

	require.NotNil(t, client.input)
	assert.Equal(t, "CFP Team <cfp@example.com>", aws.ToString(client.input.Source))
	assert.Equal(t, []string{"jane@example.com"}, client.input.Destination.ToAddresses)
	assert.Equal(t, "Hello", aws.ToString(client.input.Message.Subject.Data))
	require.NotNil(t, client.input.Message.Body.Html)
	assert.Nil(t, client.input.Message.Body.Text)
}

func TestSESMailer_SendError(t *testing.T) {
	client := &fakeSES{err: errors.New("throttled")}
	m := &sesMailer{client: client, fromAddress: "cfp@example.com", logger: quietLogger()}

	err := m.Send(context.Background(), "jane@example.com", "Hello", "", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "throttled")
	assert.Equal(t, "cfp@example.com", aws.ToString(client.input.Source))
}

func TestNoopMailer_Send(t *testing.T) {
	m, err := NewMailer(MailerConfig{Provider: "noop"}, nil)
	require.NoError(t, err)
	require.NoError(t, m.Send(context.Background(), "a@b.co", "s", "h", "t"))
}
