package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jbeshir/newspulse/internal/bookmarks"
	"github.com/jbeshir/newspulse/internal/command"
	"github.com/jbeshir/newspulse/internal/datasources"
	"github.com/jbeshir/newspulse/internal/domain"
	"github.com/jbeshir/newspulse/internal/transport/web/controller"
)

func MakeRouter(
	articles datasources.ArticleSource,
	bookmarkStore *bookmarks.Store,
	feedOptions domain.FeedOptions,
	rssFeedBaseURL, rssFeedAuthorName, rssFeedAuthorEmail string,
	articleCacheMaxAge time.Duration,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(corsMiddleware)

	listBookmarked := &command.ListBookmarkedArticles{
		Bookmarks: bookmarkStore,
		Fetcher:   articles,
	}
	listArticles := &command.ListArticles{
		Headlines:  articles,
		ByCategory: articles,
		Options:    feedOptions,
	}

	r.Handle("/v1/feed", controller.HomeFeedGet{
		Loader:      command.NewLoadHomeFeed(articles, articles, feedOptions),
		CacheMaxAge: articleCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/headlines", controller.ArticlesList{
		Lister:          listArticles,
		DefaultPageSize: feedOptions.BreakingPageSize,
		HeadlinesOnly:   true,
		CacheMaxAge:     articleCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/articles", controller.ArticlesList{
		Lister:          listArticles,
		DefaultPageSize: feedOptions.LatestPageSize,
		CacheMaxAge:     articleCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/articles/{article_id}", controller.ArticleGet{
		Getter: &command.GetArticleDetail{
			Fetcher:   articles,
			Bookmarks: bookmarkStore,
		},
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/articles/{article_id}/bookmark/{bookmarked}", controller.ArticleBookmarkSet{
		Setter: &command.SetBookmark{
			Fetcher:   articles,
			Bookmarks: bookmarkStore,
		},
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/articles/{article_id}/bookmark_toggle", controller.ArticleBookmarkToggle{
		Toggler: &command.ToggleBookmark{
			Fetcher:   articles,
			Bookmarks: bookmarkStore,
		},
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/bookmarks", controller.BookmarksList{
		Lister: listBookmarked,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/bookmarks/ids", controller.BookmarkIDsList{
		Lister: bookmarkStore,
	}).Methods(http.MethodGet, http.MethodOptions)

	rssFeeds := []controller.BookmarksRSS{
		{
			FeedHostname:    rssFeedBaseURL,
			FeedPath:        "/rss/bookmarks",
			FeedAuthorName:  rssFeedAuthorName,
			FeedAuthorEmail: rssFeedAuthorEmail,
			Lister:          listBookmarked,
		},
	}

	for _, feed := range rssFeeds {
		r.Handle(feed.FeedPath, feed).Methods(http.MethodGet, http.MethodOptions)
	}

	return r, nil
}
