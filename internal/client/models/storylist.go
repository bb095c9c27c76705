package models

// StoryList is the ordered collection of stories the client currently knows
// about. Entries added locally go to the front; the initial order is whatever
// the server returned. A given StoryID appears at most once.
//
// A StoryList is replaced wholesale on each full fetch; the mutating helpers
// below exist so the service layer can keep it in step with the server after
// create/delete calls without refetching.
type StoryList struct {
	Stories []Story
}

// NewStoryList builds a StoryList from server-ordered stories, dropping any
// duplicate StoryIDs after their first occurrence.
func NewStoryList(stories []Story) *StoryList {
	l := &StoryList{Stories: make([]Story, 0, len(stories))}
	seen := make(map[string]struct{}, len(stories))
	for _, s := range stories {
		if _, ok := seen[s.StoryID]; ok {
			continue
		}
		seen[s.StoryID] = struct{}{}
		l.Stories = append(l.Stories, s)
	}
	return l
}

// Len returns the number of stories in the list.
func (l *StoryList) Len() int {
	return len(l.Stories)
}

// ByID returns the story with the given id, if present.
func (l *StoryList) ByID(id string) (Story, bool) {
	for _, s := range l.Stories {
		if s.StoryID == id {
			return s, true
		}
	}
	return Story{}, false
}

// Contains reports whether a story with the given id is in the list.
func (l *StoryList) Contains(id string) bool {
	_, ok := l.ByID(id)
	return ok
}

// Prepend inserts s at the front of the list. If a story with the same
// StoryID is already present the list is left unchanged, preserving the
// uniqueness invariant.
func (l *StoryList) Prepend(s Story) {
	if _, ok := l.ByID(s.StoryID); ok {
		return
	}
	l.Stories = append([]Story{s}, l.Stories...)
}

// RemoveByID removes the story with the given id. It reports whether an
// entry was removed.
func (l *StoryList) RemoveByID(id string) bool {
	for i, s := range l.Stories {
		if s.StoryID == id {
			l.Stories = append(l.Stories[:i], l.Stories[i+1:]...)
			return true
		}
	}
	return false
}
