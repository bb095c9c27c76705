package services

import (
	"context"

	"hacksnooze/internal/client/api"
	"hacksnooze/internal/client/models"
	"hacksnooze/internal/logging"
)

// StoryService is the synchronization facade over the story collections.
//
// The global list, the user's own stories, and the user's favorites mirror
// the same server-side state; every mutating operation here issues exactly
// one API call and, only on success, applies the matching local updates to
// all collections at once. Callers never touch the collections directly, so
// they cannot drift apart. On failure nothing local changes and the error is
// relayed unchanged.
type StoryService interface {
	// FetchAll replaces the current list with the server's full collection.
	FetchAll(ctx context.Context) (*models.StoryList, error)
	// List returns the most recently fetched list, or nil before any fetch.
	List() *models.StoryList
	Create(ctx context.Context, user *models.User, draft api.StoryDraft) (models.Story, error)
	Remove(ctx context.Context, user *models.User, storyID string) error
	AddFavorite(ctx context.Context, user *models.User, story models.Story) error
	RemoveFavorite(ctx context.Context, user *models.User, story models.Story) error
	ToggleFavorite(ctx context.Context, user *models.User, story models.Story) (bool, error)
}

type storyService struct {
	client api.Client
	log    logging.Logger
	list   *models.StoryList
}

// NewStoryService constructs a StoryService bound to the given API client.
func NewStoryService(client api.Client, log logging.Logger) StoryService {
	return &storyService{client: client, log: log}
}

func (s *storyService) FetchAll(ctx context.Context) (*models.StoryList, error) {
	stories, err := s.client.ListStories(ctx)
	if err != nil {
		return nil, err
	}
	s.list = models.NewStoryList(stories)
	s.log.Debug(ctx, "fetched stories", "count", s.list.Len())
	return s.list, nil
}

func (s *storyService) List() *models.StoryList {
	return s.list
}

// Create submits the draft and, on success, puts the new story at the front
// of the list and of user.OwnStories.
func (s *storyService) Create(ctx context.Context, user *models.User, draft api.StoryDraft) (models.Story, error) {
	if user == nil || user.Token == "" {
		return models.Story{}, ErrNoSession
	}

	story, err := s.client.CreateStory(ctx, user.Token, draft)
	if err != nil {
		return models.Story{}, err
	}

	if s.list != nil {
		s.list.Prepend(story)
	}
	user.PrependOwnStory(story)
	s.log.Info(ctx, "story created", "storyId", story.StoryID, "title", story.Title)
	return story, nil
}

// Remove deletes the story server-side and then filters it out of the list,
// OwnStories, and Favorites; the story may legitimately appear in any
// subset of the three.
func (s *storyService) Remove(ctx context.Context, user *models.User, storyID string) error {
	if user == nil || user.Token == "" {
		return ErrNoSession
	}

	if err := s.client.DeleteStory(ctx, user.Token, storyID); err != nil {
		return err
	}

	if s.list != nil {
		s.list.RemoveByID(storyID)
	}
	user.RemoveOwnStory(storyID)
	user.RemoveFavoriteLocal(storyID)
	s.log.Info(ctx, "story removed", "storyId", storyID)
	return nil
}

func (s *storyService) AddFavorite(ctx context.Context, user *models.User, story models.Story) error {
	if user == nil || user.Token == "" {
		return ErrNoSession
	}

	if err := s.client.AddFavorite(ctx, user.Token, user.Username, story.StoryID); err != nil {
		return err
	}
	user.AddFavoriteLocal(story)
	return nil
}

func (s *storyService) RemoveFavorite(ctx context.Context, user *models.User, story models.Story) error {
	if user == nil || user.Token == "" {
		return ErrNoSession
	}

	if err := s.client.RemoveFavorite(ctx, user.Token, user.Username, story.StoryID); err != nil {
		return err
	}
	user.RemoveFavoriteLocal(story.StoryID)
	return nil
}

// ToggleFavorite flips the favorite marking and reports the new state.
func (s *storyService) ToggleFavorite(ctx context.Context, user *models.User, story models.Story) (bool, error) {
	if user == nil {
		return false, ErrNoSession
	}
	if user.IsFavorite(story.StoryID) {
		if err := s.RemoveFavorite(ctx, user, story); err != nil {
			return true, err
		}
		return false, nil
	}
	if err := s.AddFavorite(ctx, user, story); err != nil {
		return false, err
	}
	return true, nil
}
