package render

import "github.com/example/sketchpad/internal/geom"

// subpath is one flattened run of the current path.
type subpath struct {
	pts    []geom.Point
	closed bool
}

// path records the shape.Surface path commands as polylines. Curves and arcs
// are flattened when they are added.
type path struct {
	subs []subpath
}

func (p *path) reset() { p.subs = p.subs[:0] }

func (p *path) current() *subpath {
	if len(p.subs) == 0 {
		return nil
	}
	return &p.subs[len(p.subs)-1]
}

func (p *path) last() (geom.Point, bool) {
	cur := p.current()
	if cur == nil || len(cur.pts) == 0 {
		return geom.Point{}, false
	}
	return cur.pts[len(cur.pts)-1], true
}

func (p *path) moveTo(pt geom.Point) {
	p.subs = append(p.subs, subpath{pts: []geom.Point{pt}})
}

// lineTo extends the current subpath, starting a new one at pt when there is
// no current point.
func (p *path) lineTo(pt geom.Point) {
	cur := p.current()
	if cur == nil || cur.closed {
		p.moveTo(pt)
		return
	}
	cur.pts = append(cur.pts, pt)
}

func (p *path) quadTo(ctrl, pt geom.Point) {
	from, ok := p.last()
	if !ok {
		p.moveTo(ctrl)
		from = ctrl
	}
	for _, q := range geom.FlattenQuad(from, ctrl, pt) {
		p.lineTo(q)
	}
}

func (p *path) cubeTo(c1, c2, pt geom.Point) {
	from, ok := p.last()
	if !ok {
		p.moveTo(c1)
		from = c1
	}
	for _, q := range geom.FlattenCubic(from, c1, c2, pt) {
		p.lineTo(q)
	}
}

// arc joins the current point to the arc's first point with a straight line,
// the way a 2D canvas context does.
func (p *path) arc(center geom.Point, radius, start, sweep float64) {
	pts := geom.FlattenArc(center, radius, start, sweep)
	if _, ok := p.last(); !ok {
		p.moveTo(pts[0])
		pts = pts[1:]
	}
	for _, q := range pts {
		p.lineTo(q)
	}
}

func (p *path) rect(x, y, w, h float64) {
	p.moveTo(geom.Pt(x, y))
	p.lineTo(geom.Pt(x+w, y))
	p.lineTo(geom.Pt(x+w, y+h))
	p.lineTo(geom.Pt(x, y+h))
	p.close()
}

// close marks the current subpath closed. Later segments start a new
// subpath at the closed one's first point.
func (p *path) close() {
	cur := p.current()
	if cur == nil || cur.closed {
		return
	}
	cur.closed = true
	p.subs = append(p.subs, subpath{pts: []geom.Point{cur.pts[0]}})
}

// polylines returns the non-degenerate subpaths.
func (p *path) polylines() []subpath {
	out := make([]subpath, 0, len(p.subs))
	for _, s := range p.subs {
		if len(s.pts) > 1 {
			out = append(out, s)
		}
	}
	return out
}
