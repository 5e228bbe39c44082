// Package form encodes request parameters into URL query strings and
// form-urlencoded bodies.
//
// Parameters come from one of two sources. An explicit ordered collection
// (Data) is encoded with EncodeFromMap. A query model, any type implementing
// Model, projects itself into a Data and is encoded with EncodeFromModel.
// Both share one encoder and write pairs in insertion order:
//
//	q, err := form.EncodeFromMap(form.NewData().Set("id", 5).Set("name", nil), form.DefaultOptions())
//	// q == "id=5"
//
//	url := form.AppendQuery("http://x/api", q)
//	// url == "http://x/api?id=5"
//
// Values are converted to text with ToText and escaped with Escape, which keeps
// only the RFC 3986 unreserved characters.
package form
