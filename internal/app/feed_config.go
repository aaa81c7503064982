package app

import "github.com/jbeshir/newspulse/internal/domain"

const (
	defaultFeedCountry      = "af"
	defaultFeedLanguage     = "en"
	defaultBreakingPageSize = 5
	defaultLatestPageSize   = 10
)

// FeedOptionsFromEnv returns the feed request shaping, with FEED_COUNTRY and FEED_LANGUAGE
// overriding the defaults when set.
func FeedOptionsFromEnv() domain.FeedOptions {
	return domain.FeedOptions{
		Country:          GetEnvAsStringOrDefault("FEED_COUNTRY", defaultFeedCountry),
		Language:         GetEnvAsStringOrDefault("FEED_LANGUAGE", defaultFeedLanguage),
		BreakingPageSize: defaultBreakingPageSize,
		LatestPageSize:   defaultLatestPageSize,
	}
}
