package paint

// NinePatchInfo describes a nine-region scalable blit as two aligned
// grids of boundary lines: four vertical and four horizontal lines each
// in source (bitmap) and destination (device) space. Region (i, j)
// maps source cell [SrcX[i], SrcX[i+1]] x [SrcY[j], SrcY[j+1]] onto the
// matching destination cell. Corner regions copy 1:1 in shape, edges
// stretch along one axis, the center stretches along both.
//
// Invariant after normalization: every boundary sequence is
// non-decreasing, so no region has negative size.
type NinePatchInfo struct {
	SrcX, SrcY [4]float64
	DstX, DstY [4]float64
}

// MakeNinePatch builds the grid for drawing a bitmap's nine-patch into
// dst. center is the stretchable region in bitmap pixel coordinates;
// the borders around it keep their pixel size in the destination.
// Destinations too small for the fixed borders are corrected by
// collapsing the crossed inner boundaries to their midpoint.
func MakeNinePatch(bm *Bitmap, center Rect, dst Rect) NinePatchInfo {
	src := bm.Rect()
	info := NinePatchInfo{
		SrcX: [4]float64{src.X, center.X, center.MaxX(), src.MaxX()},
		SrcY: [4]float64{src.Y, center.Y, center.MaxY(), src.MaxY()},
		DstX: [4]float64{
			dst.X,
			dst.X + (center.X - src.X),
			dst.MaxX() - (src.MaxX() - center.MaxX()),
			dst.MaxX(),
		},
		DstY: [4]float64{
			dst.Y,
			dst.Y + (center.Y - src.Y),
			dst.MaxY() - (src.MaxY() - center.MaxY()),
			dst.MaxY(),
		},
	}
	info.normalize()
	return info
}

// normalize collapses crossed inner boundaries (x1 > x2) to their
// shared midpoint, in source and destination independently, so every
// region ends up with non-negative size.
func (info *NinePatchInfo) normalize() {
	fix := func(lines *[4]float64) {
		if lines[1] > lines[2] {
			mid := (lines[1] + lines[2]) / 2
			lines[1], lines[2] = mid, mid
		}
		if lines[1] < lines[0] {
			lines[1] = lines[0]
		}
		if lines[2] > lines[3] {
			lines[2] = lines[3]
		}
	}
	fix(&info.SrcX)
	fix(&info.SrcY)
	fix(&info.DstX)
	fix(&info.DstY)
}

// DstBounds returns the destination extent of the whole grid.
func (info *NinePatchInfo) DstBounds() Rect {
	return Rect{
		X: info.DstX[0],
		Y: info.DstY[0],
		W: info.DstX[3] - info.DstX[0],
		H: info.DstY[3] - info.DstY[0],
	}
}

// Region returns the source and destination rectangles of grid cell
// (i, j), each in 0..2. Either rectangle may be empty.
func (info *NinePatchInfo) Region(i, j int) (src, dst Rect) {
	src = Rect{
		X: info.SrcX[i],
		Y: info.SrcY[j],
		W: info.SrcX[i+1] - info.SrcX[i],
		H: info.SrcY[j+1] - info.SrcY[j],
	}
	dst = Rect{
		X: info.DstX[i],
		Y: info.DstY[j],
		W: info.DstX[i+1] - info.DstX[i],
		H: info.DstY[j+1] - info.DstY[j],
	}
	return src, dst
}
