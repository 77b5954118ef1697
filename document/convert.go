package document

type OffsetClampMode uint8

const (
	OffsetError OffsetClampMode = iota
	OffsetClamp
)

type ConvertPolicy struct {
	ClampMode OffsetClampMode
}

// PointFromDisplayOffset resolves a display offset in paragraph para.
func (d *Document) PointFromDisplayOffset(para, off int, p ConvertPolicy) (Point, bool) {
	switch p.ClampMode {
	case OffsetError:
		if para < 0 || para >= len(d.paras) {
			return Point{}, false
		}
		if off < 0 || off > d.paras[para].DisplayLen() {
			return Point{}, false
		}
	case OffsetClamp:
		if len(d.paras) == 0 {
			return Point{}, true
		}
		para = clampInt(para, 0, len(d.paras)-1)
	default:
		return Point{}, false
	}
	return d.locate(para, off), true
}

// DisplayOffsetFromPoint returns the paragraph and display offset of pt.
func (d *Document) DisplayOffsetFromPoint(pt Point, p ConvertPolicy) (para, off int, ok bool) {
	switch p.ClampMode {
	case OffsetError:
		if d.clampPoint(pt) != pt {
			return 0, 0, false
		}
	case OffsetClamp:
	default:
		return 0, 0, false
	}
	para, off = d.displayPos(pt)
	return para, off, true
}
