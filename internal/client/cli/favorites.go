package cli

import (
	"context"
)

// Favorite toggles the favorite marking on a story, like the star in a
// browser UI: favoriting a favorited story unfavorites it.
func (a *App) Favorite(ctx context.Context, storyID string) error {
	u, err := a.currentUser()
	if err != nil {
		return err
	}
	story, err := a.lookupStory(u, storyID)
	if err != nil {
		return err
	}

	nowFav, err := a.stories.ToggleFavorite(ctx, u, story)
	if err != nil {
		return err
	}
	if nowFav {
		a.printer.Successf("Added %s to favorites.", storyID)
	} else {
		a.printer.Printf("Removed %s from favorites.", storyID)
	}
	return nil
}

// Unfavorite clears the favorite marking on a story. Unfavoriting a story
// that is not a favorite is a no-op server-side.
func (a *App) Unfavorite(ctx context.Context, storyID string) error {
	u, err := a.currentUser()
	if err != nil {
		return err
	}
	story, err := a.lookupStory(u, storyID)
	if err != nil {
		return err
	}

	if err := a.stories.RemoveFavorite(ctx, u, story); err != nil {
		return err
	}
	a.printer.Printf("Removed %s from favorites.", storyID)
	return nil
}

// Favorites shows the user's favorite stories.
func (a *App) Favorites(ctx context.Context) error {
	u, err := a.currentUser()
	if err != nil {
		return err
	}
	if len(u.Favorites) == 0 {
		a.printer.Printf("No favorites yet!")
		return nil
	}
	a.renderStories(u.Favorites)
	return nil
}

// MyStories shows the stories posted by the current user.
func (a *App) MyStories(ctx context.Context) error {
	u, err := a.currentUser()
	if err != nil {
		return err
	}
	if len(u.OwnStories) == 0 {
		a.printer.Printf("No stories posted yet!")
		return nil
	}
	a.renderStories(u.OwnStories)
	return nil
}
