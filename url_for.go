package pageroutes

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackielii/ctxkey"
)

type mountContext struct {
	table   *Table
	history History
}

var (
	mountCtx = ctxkey.New[*mountContext]("pageroutes.mountContext", nil)
	routeCtx = ctxkey.New[*RouteDescriptor]("pageroutes.route", nil)
)

// URLFor returns the href of the named route in the table the current
// request was mounted from.
func URLFor(ctx context.Context, name string) (string, error) {
	mc := mountCtx.Value(ctx)
	if mc == nil {
		return "", errors.New("urlfor: route table not found in context")
	}
	r, ok := mc.table.Lookup(name)
	if !ok {
		return "", fmt.Errorf("urlfor: no route named %q", name)
	}
	return mc.history.Href(r.Path), nil
}

// TableFrom returns the table the current request was mounted from.
func TableFrom(ctx context.Context) (*Table, bool) {
	mc := mountCtx.Value(ctx)
	if mc == nil {
		return nil, false
	}
	return mc.table, true
}

// CurrentRoute returns the descriptor handling the current request.
func CurrentRoute(ctx context.Context) (RouteDescriptor, bool) {
	r := routeCtx.Value(ctx)
	if r == nil {
		return RouteDescriptor{}, false
	}
	return *r, true
}

// Link is a navigable entry of RouteData.
type Link struct {
	Name   string
	Href   string
	Active bool
}

// RouteData is passed to html/template pages discovered by Discover.
type RouteData struct {
	Name  string
	Path  string
	Links []Link
}

func routeData(ctx context.Context) RouteData {
	var d RouteData
	cur, ok := CurrentRoute(ctx)
	if ok {
		d.Name, d.Path = cur.Name, cur.Path
	}
	mc := mountCtx.Value(ctx)
	if mc == nil {
		return d
	}
	for r := range mc.table.All() {
		d.Links = append(d.Links, Link{
			Name:   r.Name,
			Href:   mc.history.Href(r.Path),
			Active: ok && r.Path == cur.Path,
		})
	}
	return d
}
