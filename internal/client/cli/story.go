package cli

import (
	"context"
	"fmt"
	"os"

	"hacksnooze/internal/client/api"
	"hacksnooze/internal/client/models"
	"hacksnooze/internal/output"
)

// ListStories refetches the full story collection and renders it. Signed-in
// users see a favorite column.
func (a *App) ListStories(ctx context.Context) error {
	list, err := a.stories.FetchAll(ctx)
	if err != nil {
		return err
	}
	a.renderStories(list.Stories)
	return nil
}

func (a *App) renderStories(stories []models.Story) {
	u := a.session.User()
	rows := make([]output.StoryRow, 0, len(stories))
	for _, s := range stories {
		row := output.StoryRow{Story: s}
		if u != nil {
			row.Favorite = u.IsFavorite(s.StoryID)
		}
		rows = append(rows, row)
	}
	output.RenderStories(a.printer.Out(), rows, u != nil)
}

// Submit prompts for a story draft and creates it. The new story appears at
// the front of the list and of the user's own stories.
func (a *App) Submit(ctx context.Context) error {
	u, err := a.currentUser()
	if err != nil {
		return err
	}

	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}
	author, err := getSimpleText(a.reader, "Author", os.Stdout)
	if err != nil {
		return err
	}
	rawURL, err := getSimpleText(a.reader, "URL", os.Stdout)
	if err != nil {
		return err
	}

	story, err := a.stories.Create(ctx, u, api.StoryDraft{Title: title, Author: author, URL: rawURL})
	if err != nil {
		return err
	}
	a.printer.Successf("Story %s submitted.", story.StoryID)
	return nil
}

// Delete removes a story by id. Authorship is enforced by the server; when
// the target is visibly someone else's the user gets a heads-up first, but
// the request is still sent.
func (a *App) Delete(ctx context.Context, storyID string) error {
	u, err := a.currentUser()
	if err != nil {
		return err
	}

	if list := a.stories.List(); list != nil {
		if s, ok := list.ByID(storyID); ok && s.Username != u.Username {
			a.printer.Warnf("Story %s was posted by %s; the server will likely refuse.", storyID, s.Username)
		}
	}

	if err := a.stories.Remove(ctx, u, storyID); err != nil {
		return err
	}
	a.printer.Successf("Story %s deleted.", storyID)
	return nil
}

// lookupStory finds a story by id in the fetched list, then among the user's
// own collections, so favorites work even for entries no longer on the
// front page.
func (a *App) lookupStory(u *models.User, storyID string) (models.Story, error) {
	if list := a.stories.List(); list != nil {
		if s, ok := list.ByID(storyID); ok {
			return s, nil
		}
	}
	for _, s := range u.Favorites {
		if s.StoryID == storyID {
			return s, nil
		}
	}
	for _, s := range u.OwnStories {
		if s.StoryID == storyID {
			return s, nil
		}
	}
	return models.Story{}, fmt.Errorf("no story with id %q; try 'list' first", storyID)
}
