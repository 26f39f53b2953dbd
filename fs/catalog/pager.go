package catalog

import (
	"context"
	"fmt"

	"github.com/photocat/photocat/fs"
)

// Pager walks a paginated listing one page at a time.
//
// A failed Next doesn't advance, so calling it again retries the same
// page. Reset starts the listing again from the first page.
type Pager struct {
	lister fs.Lister
	req    fs.ListRequest
	cursor string
	done   bool
	calls  int
}

// NewPager returns a Pager for the listing described by req. Any
// cursor in req is where the listing starts.
func NewPager(lister fs.Lister, req fs.ListRequest) *Pager {
	return &Pager{lister: lister, req: req, cursor: req.Cursor}
}

// Done is true once the last page has been returned
func (p *Pager) Done() bool {
	return p.done
}

// Calls returns the number of listing calls made
func (p *Pager) Calls() int {
	return p.calls
}

// Reset rewinds the pager to the first page
func (p *Pager) Reset() {
	p.cursor = p.req.Cursor
	p.done = false
}

// Next returns the next page of assets. It returns nil with no error
// once Done.
func (p *Pager) Next(ctx context.Context) ([]fs.Asset, error) {
	if p.done {
		return nil, nil
	}
	req := p.req
	req.Cursor = p.cursor
	p.calls++
	page, err := p.lister.List(ctx, req)
	if err != nil {
		return nil, err
	}
	if page.NextCursor != "" && page.NextCursor == p.cursor {
		return nil, fmt.Errorf("listing %s: store returned the same cursor %q again", req.Type, page.NextCursor)
	}
	if page.NextCursor == "" {
		p.done = true
	} else {
		fs.Debugf(req.Type, "received %d results, going back for more", len(page.Assets))
	}
	p.cursor = page.NextCursor
	return page.Assets, nil
}

// All reads the remaining pages and returns their assets in page
// order
func (p *Pager) All(ctx context.Context) (assets []fs.Asset, err error) {
	for !p.Done() {
		page, err := p.Next(ctx)
		if err != nil {
			return assets, err
		}
		assets = append(assets, page...)
	}
	return assets, nil
}
