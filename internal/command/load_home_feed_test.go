package command

import (
	"errors"
	"testing"

	"github.com/jbeshir/newspulse/internal/datasources/mocks"
	"github.com/jbeshir/newspulse/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLoadHomeFeed_Execute(t *testing.T) {
	breaking := []domain.Article{{ID: "b1", Title: "Breaking"}}
	latest := []domain.Article{{ID: "l1", Title: "Latest"}, {ID: "l2", Title: "Later"}}

	cases := []struct {
		name        string
		category    string
		breaking    []domain.Article
		breakingErr error
		latest      []domain.Article
		latestErr   error
		expected    domain.HomeFeed
		wantErr     bool
	}{
		{
			name:     "all_categories",
			breaking: breaking,
			latest:   latest,
			expected: domain.HomeFeed{Breaking: breaking, Latest: latest},
		},
		{
			name:     "with_category",
			category: "sports",
			breaking: breaking,
			latest:   latest,
			expected: domain.HomeFeed{Category: "sports", Breaking: breaking, Latest: latest},
		},
		{
			name:        "breaking_failure_degrades",
			breakingErr: errors.New("rate limited"),
			latest:      latest,
			expected:    domain.HomeFeed{Breaking: []domain.Article{}, Latest: latest},
		},
		{
			name:     "nil_results_become_empty",
			expected: domain.HomeFeed{Breaking: []domain.Article{}, Latest: []domain.Article{}},
		},
		{
			name:      "latest_failure_fails",
			breaking:  breaking,
			latestErr: errors.New("upstream down"),
			wantErr:   true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			headlines := mocks.NewMockTopHeadlinesFetcher(t)
			byCategory := mocks.NewMockCategoryArticlesFetcher(t)

			headlines.EXPECT().
				FetchTopHeadlines(mock.Anything, "af", "en", 5).
				Return(tc.breaking, tc.breakingErr).
				Maybe()
			byCategory.EXPECT().
				FetchByCategory(mock.Anything, tc.category, "af", "en", 10).
				Return(tc.latest, tc.latestErr)

			sut := NewLoadHomeFeed(headlines, byCategory, testFeedOptions())

			result, err := sut.Execute(testContext(t), LoadHomeFeedRequest{Category: tc.category})
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}
