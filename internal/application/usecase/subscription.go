package usecase

import (
	"fmt"
	"slices"
	"strings"

	"github.com/tesso57/podplay/internal/domain/subscription"
)

// SubscriptionRepository abstracts persistence for podcast subscriptions.
type SubscriptionRepository interface {
	List() ([]string, error)
	Add(url string) error
	Remove(index int) error
}

// SubscriptionService provides subscription-related operations.
type SubscriptionService struct {
	Repo SubscriptionRepository
}

// NewSubscriptionService constructs a SubscriptionService.
func NewSubscriptionService(repo SubscriptionRepository) SubscriptionService {
	return SubscriptionService{Repo: repo}
}

// List returns all subscribed feed URLs.
func (s SubscriptionService) List() ([]string, error) {
	return s.Repo.List()
}

// IsSubscribed reports whether feedURL is already subscribed.
func (s SubscriptionService) IsSubscribed(feedURL string) (bool, error) {
	feeds, err := s.Repo.List()
	if err != nil {
		return false, err
	}
	return slices.Contains(feeds, strings.TrimSpace(feedURL)), nil
}

// Add registers a new feed URL and returns the updated list.
func (s SubscriptionService) Add(feedURL string) ([]string, error) {
	trimmed, err := subscription.NormalizeURL(feedURL)
	if err != nil {
		return nil, err
	}
	subscribed, err := s.IsSubscribed(trimmed)
	if err != nil {
		return nil, err
	}
	if subscribed {
		return nil, fmt.Errorf("already subscribed: %s", trimmed)
	}
	if err := s.Repo.Add(trimmed); err != nil {
		return nil, err
	}
	return s.Repo.List()
}

// Remove deletes a feed by index and returns the updated list.
func (s SubscriptionService) Remove(index int) ([]string, error) {
	if err := s.Repo.Remove(index); err != nil {
		return nil, err
	}
	return s.Repo.List()
}
