package app

import (
	"context"
	"fmt"

	"github.com/jbeshir/newspulse/internal/bookmarks"
	"github.com/jbeshir/newspulse/internal/datasources"
	"github.com/jbeshir/newspulse/internal/datasources/file"
	"github.com/jbeshir/newspulse/internal/datasources/memory"
	"github.com/jbeshir/newspulse/internal/datasources/mysql"
	"github.com/jbeshir/newspulse/internal/datasources/newsdata"
	"github.com/jbeshir/newspulse/internal/transport/web/router"
	"github.com/jbeshir/newspulse/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	kv, err := setupKeyValueStore(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up bookmark storage: %w", err)
	}

	articles := newsdata.NewClient(
		GetEnvAsStringOrDefault("NEWSDATA_BASE_URL", newsdata.DefaultBaseURL),
		MustGetEnvAsString(ctx, "NEWSDATA_API_KEY"),
	)

	httpRouter, err := router.MakeRouter(
		articles,
		bookmarks.New(kv),
		FeedOptionsFromEnv(),
		MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
		MustGetEnvAsDuration(ctx, "ARTICLE_CACHE_MAX_AGE"),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
			Router:            httpRouter,
		},
	}, nil
}

func setupKeyValueStore(ctx context.Context) (datasources.KeyValueStore, error) {
	switch driver := MustGetEnvAsString(ctx, "BOOKMARK_STORAGE_DRIVER"); driver {
	case "memory":
		return memory.NewKeyValueStore(), nil
	case "file":
		return file.NewKeyValueStore(MustGetEnvAsString(ctx, "BOOKMARK_STORAGE_PATH")), nil
	case "mysql":
		db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
		if err != nil {
			return nil, fmt.Errorf("connecting to MySQL: %w", err)
		}
		if err := mysql.Migrate(ctx, db); err != nil {
			return nil, fmt.Errorf("migrating MySQL: %w", err)
		}
		return mysql.NewKeyValueStore(db), nil
	default:
		return nil, fmt.Errorf("unknown bookmark storage driver [%s]", driver)
	}
}
