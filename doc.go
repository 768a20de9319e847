// Package pageroutes builds the route table of a page-based web application
// from a directory convention and mounts it on an [http.ServeMux] or chi router.
//
// Every page module whose key matches the convention (by default
// "./pages/<Name>.html") becomes a route at "/<Name>". A fixed Home route at
// "/" is always first:
//
//	mods, err := pageroutes.Discover(pagesFS, pageroutes.DefaultConvention)
//	table, err := pageroutes.New(home(), mods)
//	err = pageroutes.NewPages().Mount(pageroutes.NewRouter(mux), table)
package pageroutes
