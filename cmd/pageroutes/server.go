package main

import (
	"context"
	"fmt"
	"html"
	"io"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackielii/pageroutes"
	"github.com/jackielii/pageroutes/chirouter"
	"github.com/jackielii/pageroutes/internal/config"
)

func buildTable(site fs.FS, cfg *config.Config) (*pageroutes.Table, error) {
	conv := cfg.Pages.Convention()
	mods, err := pageroutes.Discover(site, conv)
	if err != nil {
		return nil, err
	}
	home := homeComponent(site, conv)
	if cfg.Pages.IsLenient() {
		return pageroutes.Build(home, mods, pageroutes.WithConvention(conv)), nil
	}
	return pageroutes.New(home, mods, pageroutes.WithConvention(conv))
}

func newHandler(table *pageroutes.Table, cfg *config.Config, logger *slog.Logger) (http.Handler, error) {
	pages := pageroutes.NewPages(
		pageroutes.WithHistory(cfg.Pages.HistoryMode()),
		pageroutes.WithLogger(logger),
		pageroutes.WithLayout(layout),
		pageroutes.WithMiddlewares(pageroutes.LogRequests(logger)),
	)
	switch cfg.Server.Router {
	case "chi":
		r := chi.NewRouter()
		r.Use(middleware.Recoverer)
		cr := chirouter.NewChiRouter(r)
		if err := pages.Mount(cr, table); err != nil {
			return nil, err
		}
		return cr, nil
	default:
		mux := http.NewServeMux()
		if err := pages.Mount(pageroutes.NewRouter(mux), table); err != nil {
			return nil, err
		}
		return mux, nil
	}
}

// homeComponent uses Home<suffix> next to the pages directory if the site
// has one, and a generated index of all routes otherwise.
func homeComponent(site fs.FS, conv pageroutes.Convention) templ.Component {
	name := pageroutes.HomeName + conv.Suffix
	if _, err := fs.Stat(site, name); err == nil {
		return pageroutes.Template(site, name)
	}
	return templ.ComponentFunc(index)
}

func index(ctx context.Context, w io.Writer) error {
	table, ok := pageroutes.TableFrom(ctx)
	if !ok {
		return fmt.Errorf("index: route table not in context")
	}
	if _, err := io.WriteString(w, "<h1>Pages</h1>\n<ul>\n"); err != nil {
		return err
	}
	for r := range table.All() {
		if r.Name == pageroutes.HomeName {
			continue
		}
		href, err := pageroutes.URLFor(ctx, r.Name)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "<li><a href=\"%s\">%s</a></li>\n",
			html.EscapeString(href), html.EscapeString(r.Name)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</ul>\n")
	return err
}

func layout(route pageroutes.RouteDescriptor, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, "<!doctype html>\n<html>\n<head><title>%s</title>\n"+
			"<script src=\"https://unpkg.com/htmx.org@2.0.4\"></script></head>\n<body hx-boost=\"true\">\n",
			html.EscapeString(route.Name)); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n</body>\n</html>\n")
		return err
	})
}
