package smtp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSmtp(t *testing.T) {
	t.Run("not configured drops mail", func(t *testing.T) {
		require.NoError(t, Connect("", "", "", "", "", false))
		require.False(t, Instance.Configured())
		require.NoError(t, Instance.SendEMail("jan@example.com", "hello", "text"))
	})
	t.Run("sender defaults to the user", func(t *testing.T) {
		require.NoError(t, Connect("robot@example.com", "secret", "mail.example.com", "587", "", true))
		require.True(t, Instance.Configured())
		require.Equal(t, "robot@example.com", Instance.(*impl).from)
	})
	t.Run("message headers", func(t *testing.T) {
		msg := buildMessage("robot@example.com", "jan@example.com", "Account activated", "Welcome")
		require.True(t, strings.HasPrefix(msg, "From: robot@example.com\r\n"))
		require.Contains(t, msg, "Subject: Academic records - Account activated\r\n")
		require.True(t, strings.HasSuffix(msg, "\r\n\r\nWelcome\r\n"))
	})
}
