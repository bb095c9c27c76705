package models

// User represents the signed-in principal: identity fields, the session
// token required on mutating API calls, and two local mirrors of server-side
// collections: the user's own stories and favorites.
//
// A User exists only while a session does. It is built from a signup, login,
// or session-restore response and discarded on logout; only the token
// outlives it, in the session store.
type User struct {
	Username  string
	Name      string
	CreatedAt string
	Token     string

	// Favorites is keyed by StoryID with set semantics: the local helpers
	// never insert a second entry for the same story.
	Favorites []Story

	// OwnStories holds stories authored by this user, newest first for
	// entries added during the session.
	OwnStories []Story
}

// IsFavorite reports whether a story with the given id is in Favorites.
func (u *User) IsFavorite(storyID string) bool {
	for _, s := range u.Favorites {
		if s.StoryID == storyID {
			return true
		}
	}
	return false
}

// AddFavoriteLocal records s in Favorites unless it is already present.
func (u *User) AddFavoriteLocal(s Story) {
	if u.IsFavorite(s.StoryID) {
		return
	}
	u.Favorites = append(u.Favorites, s)
}

// RemoveFavoriteLocal drops the story with the given id from Favorites.
func (u *User) RemoveFavoriteLocal(storyID string) {
	out := u.Favorites[:0]
	for _, s := range u.Favorites {
		if s.StoryID != storyID {
			out = append(out, s)
		}
	}
	u.Favorites = out
}

// PrependOwnStory inserts s at the front of OwnStories unless a story with
// the same id is already there.
func (u *User) PrependOwnStory(s Story) {
	for _, own := range u.OwnStories {
		if own.StoryID == s.StoryID {
			return
		}
	}
	u.OwnStories = append([]Story{s}, u.OwnStories...)
}

// RemoveOwnStory drops the story with the given id from OwnStories.
func (u *User) RemoveOwnStory(storyID string) {
	out := u.OwnStories[:0]
	for _, s := range u.OwnStories {
		if s.StoryID != storyID {
			out = append(out, s)
		}
	}
	u.OwnStories = out
}

// Owns reports whether the story with the given id is in OwnStories.
func (u *User) Owns(storyID string) bool {
	for _, s := range u.OwnStories {
		if s.StoryID == storyID {
			return true
		}
	}
	return false
}
