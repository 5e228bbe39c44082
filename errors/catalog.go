package errors

import (
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"
)

// MarkerCode precedes an embedded error code at the tail of a message, as in
// "upstream rejected request error code:InvalidToken".
const MarkerCode = "error code:"

// ErrUnresolvable is returned when an error cannot be re-keyed into a catalog.
var ErrUnresolvable = stderrors.New("errors: code not resolvable")

// Entry is one member of an error catalog.
type Entry struct {
	// Name identifies the member within its catalog (e.g. "InvalidToken").
	Name string
	// Code is the numeric error code.
	Code int
	// Display is the human-readable text.
	Display string
}

// String returns the member name.
func (e Entry) String() string { return e.Name }

// Catalog is a named, enumerated set of known error conditions.
type Catalog struct {
	name   string
	order  []Entry
	byName map[string]Entry
	byCode map[int]Entry
}

// NewCatalog creates a catalog. A later entry with an existing name replaces
// the earlier one.
func NewCatalog(name string, entries ...Entry) *Catalog {
	c := &Catalog{
		name:   name,
		byName: make(map[string]Entry, len(entries)),
		byCode: make(map[int]Entry, len(entries)),
	}
	for _, e := range entries {
		if old, ok := c.byName[e.Name]; ok {
			delete(c.byCode, old.Code)
			for i := range c.order {
				if c.order[i].Name == e.Name {
					c.order[i] = e
				}
			}
		} else {
			c.order = append(c.order, e)
		}
		c.byName[e.Name] = e
		c.byCode[e.Code] = e
	}
	return c
}

// Name returns the catalog name.
func (c *Catalog) Name() string { return c.name }

// Entries returns the members in declaration order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.order))
	copy(out, c.order)
	return out
}

// Lookup finds a member by name.
func (c *Catalog) Lookup(name string) (Entry, bool) {
	e, ok := c.byName[name]
	return e, ok
}

// LookupCode finds a member by numeric code.
func (c *Catalog) LookupCode(code int) (Entry, bool) {
	e, ok := c.byCode[code]
	return e, ok
}

// Resolve returns the code and display text this catalog assigns to member.
// Members unknown to the catalog resolve to their own values.
func (c *Catalog) Resolve(member Entry) (int, string) {
	if e, ok := c.byName[member.Name]; ok {
		return e.Code, e.Display
	}
	return member.Code, member.Display
}

// resolveToken looks up a member by name first, then by numeric code.
func (c *Catalog) resolveToken(token string) (Entry, bool) {
	if e, ok := c.Lookup(token); ok {
		return e, true
	}
	if n, err := strconv.Atoi(token); err == nil {
		return c.LookupCode(n)
	}
	return Entry{}, false
}

// Rekey re-resolves the error against target and overwrites its code and
// entry. The carried catalog entry is used when present; otherwise the member
// is parsed from the text after the last MarkerCode in the message.
func (e *ServiceError) Rekey(target *Catalog) (*ServiceError, error) {
	if e.Entry != nil {
		if entry, ok := target.Lookup(e.Entry.Name); ok {
			e.apply(entry)
			return e, nil
		}
	}

	idx := strings.LastIndex(e.Message, MarkerCode)
	if idx < 0 {
		return e, fmt.Errorf("%w: no %q marker in %q", ErrUnresolvable, MarkerCode, e.Message)
	}
	token := strings.TrimSpace(e.Message[idx+len(MarkerCode):])
	entry, ok := target.resolveToken(token)
	if !ok {
		return e, fmt.Errorf("%w: %q is not a member of %s", ErrUnresolvable, token, target.Name())
	}
	e.apply(entry)
	return e, nil
}

func (e *ServiceError) apply(entry Entry) {
	e.Code = entry.Code
	e.Entry = &entry
}
