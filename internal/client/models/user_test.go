package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserFavoritesSetSemantics(t *testing.T) {
	u := &User{Username: "sam"}
	s := story("s1")

	require.False(t, u.IsFavorite("s1"))

	u.AddFavoriteLocal(s)
	require.True(t, u.IsFavorite("s1"))
	require.Len(t, u.Favorites, 1)

	// a second add must not duplicate the entry
	u.AddFavoriteLocal(s)
	require.Len(t, u.Favorites, 1)

	u.RemoveFavoriteLocal("s1")
	require.False(t, u.IsFavorite("s1"))
	require.Empty(t, u.Favorites)
}

func TestUserAddThenRemoveRestoresFavorites(t *testing.T) {
	u := &User{Username: "sam", Favorites: []Story{story("s1"), story("s2")}}

	u.AddFavoriteLocal(story("s3"))
	u.RemoveFavoriteLocal("s3")

	require.Len(t, u.Favorites, 2)
	require.True(t, u.IsFavorite("s1"))
	require.True(t, u.IsFavorite("s2"))
}

func TestUserOwnStories(t *testing.T) {
	u := &User{Username: "sam"}

	u.PrependOwnStory(story("s1"))
	u.PrependOwnStory(story("s2"))
	require.Equal(t, "s2", u.OwnStories[0].StoryID)
	require.True(t, u.Owns("s1"))

	u.PrependOwnStory(story("s2"))
	require.Len(t, u.OwnStories, 2)

	u.RemoveOwnStory("s1")
	require.False(t, u.Owns("s1"))
	require.Len(t, u.OwnStories, 1)
}
