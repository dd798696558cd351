package mailer_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/Nik0lakt/cafeteria-project/internal/clients/mailer"
	"github.com/Nik0lakt/cafeteria-project/pkg/config"
)

type recorder struct {
	sent []*gomail.Message
	err  error
}

func (r *recorder) DialAndSend(m ...*gomail.Message) error {
	r.sent = append(r.sent, m...)
	return r.err
}

func TestClient_SendMessage(t *testing.T) {
	t.Parallel()

	cfg := config.Mailer{From: "canteen@example.com", FromName: "Столовая"}

	for _, tt := range []struct {
		name        string
		body        string
		contentType string
		want        string
	}{
		{name: "explicit plain", body: "<b>not parsed</b>", contentType: "text/plain", want: "text/plain"},
		{name: "detected html", body: "<p>Чек</p>", want: "text/html"},
		{name: "detected plain", body: "Чек", want: "text/plain"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := &recorder{}
			c := mailer.NewWithSender(cfg, rec)

			err := c.SendMessage(context.Background(), "Receipt", tt.body, []string{"anna@example.com"}, tt.contentType)
			require.NoError(t, err)
			require.Len(t, rec.sent, 1)

			m := rec.sent[0]
			require.Equal(t, []string{"anna@example.com"}, m.GetHeader("To"))
			require.Equal(t, []string{"Receipt"}, m.GetHeader("Subject"))

			var buf bytes.Buffer
			_, err = m.WriteTo(&buf)
			require.NoError(t, err)
			require.Contains(t, buf.String(), "Content-Type: "+tt.want)
		})
	}
}

func TestClient_SendMessage_Error(t *testing.T) {
	t.Parallel()

	c := mailer.NewWithSender(config.Mailer{}, &recorder{err: errors.New("smtp down")})

	err := c.SendMessage(context.Background(), "s", "m", []string{"a@example.com"}, "")
	require.ErrorContains(t, err, "smtp down")
}
