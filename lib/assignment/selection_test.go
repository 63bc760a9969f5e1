package assignment

import (
	"testing"

	"github.com/stretchr/testify/require"
	requestapimodels "hr-requests-backend/models/api/request"
)

func TestSelection(t *testing.T) {
	alice := requestapimodels.AssignedUserData{UserCode: "A01", UserName: "Alice"}
	bob := requestapimodels.AssignedUserData{UserCode: "B02", UserName: "Bob"}

	t.Run("add deduplicates by user code", func(t *testing.T) {
		s := NewSelection()
		s.Add(alice)
		s.Add(alice)
		s.Add(bob)
		require.Equal(t, 2, s.Len())
		users := s.Users()
		require.Equal(t, "A01", users[0].UserCode)
		require.Equal(t, "B02", users[1].UserCode)
	})

	t.Run("toggle flips the checkbox", func(t *testing.T) {
		s := NewSelection()
		s.Toggle(alice)
		require.False(t, s.IsEmpty())
		s.Toggle(alice)
		require.True(t, s.IsEmpty())
	})

	t.Run("toggle keeps insertion order of the rest", func(t *testing.T) {
		s := NewSelection()
		s.Toggle(alice)
		s.Toggle(bob)
		s.Toggle(alice)
		users := s.Users()
		require.Len(t, users, 1)
		require.Equal(t, "B02", users[0].UserCode)
	})

	t.Run("blank user code is ignored", func(t *testing.T) {
		s := NewSelection()
		s.Add(requestapimodels.AssignedUserData{})
		require.True(t, s.IsEmpty())
	})
}
