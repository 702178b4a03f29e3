package core

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
)

// Pager iterates over a paginated list result. Webex splits long result
// sets into pages linked by RFC 5988 Link headers with rel="next"; the
// pager fetches pages lazily as iteration crosses page boundaries.
//
// Pager follows the scanner idiom:
//
//	pager := api.List(opts)
//	for pager.Next(ctx) {
//	    item := pager.Item()
//	}
//	if err := pager.Err(); err != nil { ... }
//
// A Pager is not safe for concurrent use.
type Pager[T any] struct {
	session *Session
	nextURL string
	params  url.Values
	key     string

	items []json.RawMessage
	index int
	item  T
	err   error
	done  bool
}

// NewPager creates a pager over the list endpoint at url. params apply to
// the first page only; subsequent pages follow the server-provided next
// link verbatim. The page envelope is the standard "items" array.
func NewPager[T any](s *Session, url string, params url.Values) *Pager[T] {
	return NewKeyedPager[T](s, url, params, "items")
}

// NewKeyedPager is NewPager for endpoints whose list envelope uses a key
// other than "items", as the telephony config endpoints do ("callParks",
// "trunks", "routeGroups", ...).
func NewKeyedPager[T any](s *Session, url string, params url.Values, key string) *Pager[T] {
	return &Pager[T]{
		session: s,
		nextURL: url,
		params:  params,
		key:     key,
	}
}

// Next advances to the next item, fetching the next page when the current
// one is exhausted. It returns false when iteration ends, either because
// all items were consumed or because a fetch or decode failed; check Err
// to distinguish.
func (p *Pager[T]) Next(ctx context.Context) bool {
	if p.err != nil {
		return false
	}

	for p.index >= len(p.items) {
		if p.done || p.nextURL == "" {
			return false
		}
		if !p.fetch(ctx) {
			return false
		}
	}

	var item T
	if err := json.Unmarshal(p.items[p.index], &item); err != nil {
		p.err = newDecodeError(err)
		return false
	}
	p.item = item
	p.index++
	return true
}

// Item returns the item produced by the last successful call to Next.
func (p *Pager[T]) Item() T {
	return p.item
}

// Err returns the first error encountered during iteration, or nil.
func (p *Pager[T]) Err() error {
	return p.err
}

// All collects every remaining item into a slice.
func (p *Pager[T]) All(ctx context.Context) ([]T, error) {
	var items []T
	for p.Next(ctx) {
		items = append(items, p.Item())
	}
	if p.err != nil {
		return nil, p.err
	}
	return items, nil
}

// fetch retrieves the next page and resets the in-page cursor.
func (p *Pager[T]) fetch(ctx context.Context) bool {
	resp, err := p.session.do(ctx, "GET", p.nextURL, p.params, nil)
	if err != nil {
		p.err = err
		return false
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(resp.body, &envelope); err != nil {
		p.err = newDecodeError(err)
		return false
	}
	var items []json.RawMessage
	if raw, ok := envelope[p.key]; ok {
		if err := json.Unmarshal(raw, &items); err != nil {
			p.err = newDecodeError(err)
			return false
		}
	}

	p.items = items
	p.index = 0
	p.params = nil // the next link already carries its query
	p.nextURL = nextLink(resp.header.Values("Link"))
	if p.nextURL == "" {
		p.done = true
	}
	return true
}

// nextLink extracts the rel="next" target from Link header values. Values
// may hold several comma-separated links, each with parameters in any
// order; the URL of the first link carrying rel=next wins.
func nextLink(values []string) string {
	for _, value := range values {
		for _, link := range splitLinks(value) {
			target, params, ok := strings.Cut(link, ">")
			if !ok {
				continue
			}
			target = strings.TrimSpace(target)
			if !strings.HasPrefix(target, "<") {
				continue
			}
			if linkRel(params) == "next" {
				return strings.TrimPrefix(target, "<")
			}
		}
	}
	return ""
}

// splitLinks splits a Link header value on commas outside <...> brackets.
func splitLinks(value string) []string {
	var links []string
	depth := 0
	start := 0
	for i, r := range value {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				links = append(links, value[start:i])
				start = i + 1
			}
		}
	}
	return append(links, value[start:])
}

// linkRel returns the rel parameter of a link, unquoted and lowercased.
func linkRel(params string) string {
	for _, param := range strings.Split(params, ";") {
		key, val, ok := strings.Cut(strings.TrimSpace(param), "=")
		if !ok {
			continue
		}
		if !strings.EqualFold(strings.TrimSpace(key), "rel") {
			continue
		}
		val = strings.Trim(strings.TrimSpace(val), `"`)
		return strings.ToLower(val)
	}
	return ""
}
