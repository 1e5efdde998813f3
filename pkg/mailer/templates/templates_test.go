package templates

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderWelcome(t *testing.T) {
	subject, text, html, err := Render(Welcome, map[string]any{
		"Name":         "Ada",
		"IsMentor":     true,
		"DashboardURL": "http://localhost:3000/user",
	})
	require.NoError(t, err)
	require.Equal(t, "Welcome aboard", subject)
	require.Contains(t, text, "Welcome to Mentor Hub, Ada!")
	require.Contains(t, text, "mentor account")
	require.Contains(t, html, `href="http://localhost:3000/user"`)
}

func TestRenderUnknown(t *testing.T) {
	_, _, _, err := Render("nope", nil)
	require.Error(t, err)
}
