// Package rest binds the HTTP adapter to a single base URL.
//
// Parameters are appended to the bound URL as a query string; bodies are sent
// verbatim. Generic functions decode JSON responses, methods return text:
//
//	c, err := rest.New("https://api.example.com/items", httpclient.Config{})
//
//	item, err := rest.Get[Item](ctx, c, form.NewData().Set("id", 5))
//	created, err := rest.Post[Item](ctx, c, `{"name":"x"}`, nil)
//	status := c.Head(ctx)
//
// Each raw key/value entry point has a query-model twin (GetModel,
// PostModel, UploadModel) taking any form.Model.
package rest
