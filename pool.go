package prettyprint

import "sync"

// Renderers are recycled so per-line formatting in FormatStream does not
// reallocate its output buffer on every line.

const maxPooledBufCap = 64 * 1024

var rendererPool = sync.Pool{
	New: func() any {
		return &renderer{}
	},
}

func acquireRenderer(opts *Options) *renderer {
	r := rendererPool.Get().(*renderer)
	r.width = opts.Width
	if r.width <= 0 {
		r.width = defaultWidth
	}
	r.indent = opts.Indent
	if r.indent == "" {
		r.indent = defaultIndent
	}
	return r
}

func releaseRenderer(r *renderer) {
	if r == nil {
		return
	}
	r.width = 0
	r.indent = ""
	if cap(r.out.buf) > maxPooledBufCap {
		r.out.buf = nil
		r.out.lastNL = 0
	} else {
		r.out.reset()
	}
	rendererPool.Put(r)
}
