// Package roundshape implements the geometry behind an interactive drawing
// tool for font editors: a pointer drag that pulls out a symmetrical round
// shape, a closed outline made of four cubic Bézier corners joined by four
// straight edges, and commits it into a glyph.
//
// # Engine
//
// [Engine] consumes pointer and modifier events and maintains a bounding box
// and two pairs of shape factors. On every geometry-affecting event it
// re-solves the eight tangent and control coordinates of the shape (see
// [Solve]) and pushes the resulting path to a [Renderer]. On pointer-up, if
// the box is larger than [MinWidth] × [MinHeight], the path is handed to a
// [Committer] as a single edit.
//
// The engine never draws. Rendering and outline storage live behind the
// [Renderer] and [Committer] interfaces; package render provides a raster
// renderer and package glyph an undoable glyph outline.
//
// # Drag modes
//
// The held modifiers select one of three drag modes (see [Resolve]):
//
//   - [Resize] grows or shrinks the box.
//   - [AdjustCurves] moves the Bézier factors, i.e. how round or pointed
//     the corners are. Values snap to 0 and to [CircleFactor].
//   - [AdjustFlats] moves the flat factors, i.e. how much of each edge is
//     a straight segment.
//
// Switching modes mid-gesture keeps the box in place: the pointer movement
// spent on factors is accumulated and applied as a compensation once
// resizing resumes.
//
// # Factors and orientation
//
// [Factors] persist across gestures for the lifetime of an engine. The
// primary factors act on the horizontal axis and the secondary ones on the
// vertical axis. Whenever the shape flips between wider-than-tall and
// taller-than-wide, the pairs are swapped so that the factor on the long
// axis stays the same from the user's point of view.
//
// # Paths
//
// Shapes are emitted as sequences of [PathElement] values, the same
// "move to", "line to", "curve to" and "close path" commands used by
// PostScript-style drawing APIs. [BezPath] collects them, [DrawPath] replays
// them into any [Pen], and [SVG] formats them as SVG path data.
package roundshape
