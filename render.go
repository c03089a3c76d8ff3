package main

import (
	"io"
	"log"
	"slices"

	"braces.dev/errtrace"
	"go.abhg.dev/prettycode/internal/directive"
	"go.abhg.dev/prettycode/internal/plugin"
	"go.abhg.dev/prettycode/internal/wikitext"
)

// Renderer renders the insertions of wiki pages
// with the handlers of a plugin,
// the way the host's export pipeline does.
type Renderer struct {
	// Keys are the insertion keys to render.
	Keys []plugin.InsertionKey

	// ExportType is passed to the handlers.
	ExportType string

	// Options are added to the appendices of every insertion.
	Options []directive.Assignment

	// Log receives debug messages.
	Log *log.Logger
}

// Render renders a single export task over the given pages.
// The result holds one entry per page.
func (r *Renderer) Render(pages []string) ([]string, error) {
	var extra []string
	for _, o := range r.Options {
		extra = append(extra, o.String())
	}

	var keys []plugin.InsertionKey
	for _, k := range r.Keys {
		if !slices.Contains(k.ExportTypes, r.ExportType) {
			r.logger().Printf("skipping %q: does not support %v", k.Key, r.ExportType)
			continue
		}
		keys = append(keys, k)
	}

	for _, k := range keys {
		k.Handler.TaskStart(r.ExportType)
	}
	defer func() {
		for _, k := range keys {
			k.Handler.TaskEnd()
		}
	}()

	out := make([]string, len(pages))
	for i, page := range pages {
		for _, k := range keys {
			var err error
			page, err = wikitext.Replace(page, k.Key, func(in wikitext.Insertion) (string, error) {
				in.Appendices = append(slices.Clip(in.Appendices), extra...)
				return k.Handler.CreateContent(r.ExportType, in)
			})
			if err != nil {
				return nil, errtrace.Wrap(err)
			}
		}
		out[i] = page
	}
	return out, nil
}

func (r *Renderer) logger() *log.Logger {
	if r.Log != nil {
		return r.Log
	}
	return log.New(io.Discard, "", 0)
}
