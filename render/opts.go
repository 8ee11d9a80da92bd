package render

import "github.com/sass-format/go-sass/format"

type renderOpts struct {
	style format.Style
}

type RenderOption func(*renderOpts)

// Style selects the CSS layout of the output.
func Style(s format.Style) RenderOption {
	return func(o *renderOpts) { o.style = s }
}
