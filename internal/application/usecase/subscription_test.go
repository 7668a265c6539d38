package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubSubscriptionRepo struct {
	mock.Mock
	feeds []string
}

func (s *stubSubscriptionRepo) List() ([]string, error) {
	if len(s.ExpectedCalls) > 0 {
		args := s.Called()
		feeds, _ := args.Get(0).([]string)
		return feeds, args.Error(1)
	}
	out := make([]string, len(s.feeds))
	copy(out, s.feeds)
	return out, nil
}

func (s *stubSubscriptionRepo) Add(url string) error {
	if len(s.ExpectedCalls) > 0 {
		args := s.Called(url)
		return args.Error(0)
	}
	s.feeds = append(s.feeds, url)
	return nil
}

func (s *stubSubscriptionRepo) Remove(index int) error {
	if len(s.ExpectedCalls) > 0 {
		args := s.Called(index)
		return args.Error(0)
	}
	if index < 0 || index >= len(s.feeds) {
		return nil
	}
	s.feeds = append(s.feeds[:index], s.feeds[index+1:]...)
	return nil
}

func TestSubscriptionAddTrimsWhitespace(t *testing.T) {
	repo := &stubSubscriptionRepo{}
	svc := NewSubscriptionService(repo)

	_, err := svc.Add("  https://changelog.com/gotime/feed\t")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if len(repo.feeds) != 1 || repo.feeds[0] != "https://changelog.com/gotime/feed" {
		t.Fatalf("Expected trimmed url in repo feeds, got %#v", repo.feeds)
	}
}

func TestSubscriptionAddRejectsEmpty(t *testing.T) {
	repo := &stubSubscriptionRepo{}
	svc := NewSubscriptionService(repo)

	if _, err := svc.Add(" \t\n"); err == nil {
		t.Fatal("Expected error for empty url")
	}
}

func TestSubscriptionAddRejectsWhitespaceInside(t *testing.T) {
	repo := &stubSubscriptionRepo{}
	svc := NewSubscriptionService(repo)

	if _, err := svc.Add("https://example.com/rss another"); err == nil {
		t.Fatal("Expected error for whitespace in url")
	}
}

func TestSubscriptionAddRejectsNonHTTP(t *testing.T) {
	svc := NewSubscriptionService(&stubSubscriptionRepo{})

	for _, raw := range []string{"ftp://example.com/feed", "example.com/feed", "https://"} {
		_, err := svc.Add(raw)
		assert.Error(t, err, raw)
	}
}

func TestSubscriptionAddRejectsDuplicate(t *testing.T) {
	repo := &stubSubscriptionRepo{feeds: []string{"https://cupogo.dev/feed"}}
	svc := NewSubscriptionService(repo)

	_, err := svc.Add("https://cupogo.dev/feed")
	require.Error(t, err)
	assert.Len(t, repo.feeds, 1)
}

func TestSubscriptionIsSubscribed(t *testing.T) {
	svc := NewSubscriptionService(&stubSubscriptionRepo{feeds: []string{"https://cupogo.dev/feed"}})

	ok, err := svc.IsSubscribed(" https://cupogo.dev/feed ")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.IsSubscribed("https://changelog.com/gotime/feed")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSubscriptionRemove(t *testing.T) {
	repo := &stubSubscriptionRepo{feeds: []string{"https://a.example/feed", "https://b.example/feed"}}
	svc := NewSubscriptionService(repo)

	feeds, err := svc.Remove(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://b.example/feed"}, feeds)
}

func TestSubscriptionRepoErrorsPropagate(t *testing.T) {
	boom := errors.New("disk full")
	repo := &stubSubscriptionRepo{}
	repo.On("List").Return([]string{}, nil)
	repo.On("Add", "https://cupogo.dev/feed").Return(boom)
	repo.On("Remove", 3).Return(boom)
	svc := NewSubscriptionService(repo)

	_, err := svc.Add("https://cupogo.dev/feed")
	assert.ErrorIs(t, err, boom)

	_, err = svc.Remove(3)
	assert.ErrorIs(t, err, boom)

	repo.AssertExpectations(t)
}
