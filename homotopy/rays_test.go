package homotopy

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlrrts/homotopy/planar"
)

// twoSquares is a 100x100 workspace with one square left and one right of
// the centre. Their key points are (20, 50) and (80, 50).
func twoSquares(t *testing.T) (Workspace, []Obstacle) {
	t.Helper()
	return Workspace{100, 100}, keyed(t, rect(10, 40, 30, 60), rect(70, 40, 90, 60))
}

func onBoundary(ws Workspace, p r2.Point) bool {
	r := ws.Rect()
	return p.X == r.X.Lo || p.X == r.X.Hi || p.Y == r.Y.Lo || p.Y == r.Y.Hi
}

func TestBuildRays(t *testing.T) {
	ws, obstacles := twoSquares(t)
	base := ws.Center()
	rays, err := BuildRays(ws, obstacles, base)
	require.NoError(t, err)
	require.Len(t, rays, 4)

	for i, r := range rays {
		assert.Equal(t, i/2, r.Obstacle)
		assert.Equal(t, RayKind(i%2), r.Kind)
		assert.Equal(t, base, r.Ray.Origin)
		assert.Equal(t, obstacles[r.Obstacle].KeyPoint, r.KeyPoint())
		assert.True(t, onBoundary(ws, r.Endpoint()), "ray %d ends at %v", i, r.Endpoint())
		assert.Empty(t, r.Crossings)
	}

	// Obstacle 0 is to the left: its toward ray exits left, away exits right.
	assert.Equal(t, 0.0, rays[1].Endpoint().X)
	assert.Equal(t, 99.0, rays[0].Endpoint().X)
	assert.InDelta(t, 49.5+0.5*49.5/29.5, rays[1].Endpoint().Y, 1e-9)
	assert.InDelta(t, 49.5-0.5*49.5/29.5, rays[0].Endpoint().Y, 1e-9)
	assert.True(t, rays[0].Direction().Equal(rays[1].Direction().Reverse()))
}

func TestBuildRaysThroughCorner(t *testing.T) {
	ws := Workspace{101, 101}
	// Key point (30, 30) puts both rays exactly on the diagonal.
	obstacles := keyed(t, rect(25, 25, 35, 35))
	rays, err := BuildRays(ws, obstacles, pt(50, 50))
	require.NoError(t, err)
	assert.Equal(t, pt(100, 100), rays[0].Endpoint())
	assert.Equal(t, pt(0, 0), rays[1].Endpoint())
}

func TestSortRays(t *testing.T) {
	ws, obstacles := twoSquares(t)
	rays, err := BuildRays(ws, obstacles, ws.Center())
	require.NoError(t, err)

	sorted, err := SortRays(rays)
	require.NoError(t, err)
	type key struct {
		Obstacle int
		Kind     RayKind
	}
	var got []key
	for _, r := range sorted {
		got = append(got, key{r.Obstacle, r.Kind})
	}
	assert.Equal(t, []key{{1, Toward}, {0, Toward}, {1, Away}, {0, Away}}, got)
	for i := 1; i < len(sorted); i++ {
		assert.True(t, sorted[i-1].Direction().Less(sorted[i].Direction()))
	}
	assert.Equal(t, 0, rays[0].Obstacle, "input order is kept")
}

func TestSortRaysRejectsTies(t *testing.T) {
	ws, obstacles := twoSquares(t)
	// (50, 50) is between the key points on their common line, so the away
	// ray of obstacle 0 and the toward ray of obstacle 1 coincide.
	rays, err := BuildRays(ws, obstacles, pt(50, 50))
	require.NoError(t, err)

	_, err = SortRays(rays)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDegenerateRayOrdering)
	var de *DecompositionError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "sort rays", de.Op)
	assert.Contains(t, err.Error(), "away ray of obstacle 0")
	assert.Contains(t, err.Error(), "toward ray of obstacle 1")
}

func TestCornerRays(t *testing.T) {
	ws := Workspace{100, 100}
	corners := CornerRays(ws, ws.Center())
	want := []r2.Point{pt(99, 99), pt(0, 99), pt(0, 0), pt(99, 0)}
	for i, cr := range corners {
		assert.Equal(t, want[i], cr.Corner)
	}

	// Off centre the order still starts after the positive x axis.
	corners = CornerRays(ws, pt(10, 90))
	assert.Equal(t, pt(99, 99), corners[0].Corner)
	assert.Equal(t, pt(99, 0), corners[3].Corner)
}

func TestCrossingsDeduplicateVertices(t *testing.T) {
	obstacles := keyed(t, rect(4, 4, 6, 6))
	got := crossings(planar.Segment{A: pt(0, 0), B: pt(10, 10)}, obstacles)
	require.Len(t, got, 2)
	assert.Equal(t, pt(4, 4), got[0].Point)
	assert.Equal(t, pt(6, 6), got[1].Point)
	assert.Less(t, got[0].Distance, got[1].Distance)

	// A segment running along an edge meets it in more than a point.
	got = crossings(planar.Segment{A: pt(4, 0), B: pt(4, 10)}, obstacles)
	assert.Len(t, got, 2, "only the perpendicular edges contribute")

	assert.Empty(t, crossings(planar.Segment{A: pt(0, 0), B: pt(1, 10)}, obstacles))
}

func TestCrossingsKeepTouchingObstacles(t *testing.T) {
	// The squares share the vertex (4, 4) on the diagonal.
	obstacles := keyed(t, rect(4, 4, 6, 6), rect(2, 2, 4, 4))
	got := crossings(planar.Segment{A: pt(0, 0), B: pt(10, 10)}, obstacles)

	tests := []struct {
		p        r2.Point
		obstacle int
	}{
		{pt(2, 2), 1},
		{pt(4, 4), 0},
		{pt(4, 4), 1},
		{pt(6, 6), 0},
	}
	require.Len(t, got, len(tests))
	for i, test := range tests {
		assert.Equal(t, test.p, got[i].Point, "crossing %d", i)
		assert.Equal(t, test.obstacle, got[i].Obstacle, "crossing %d", i)
	}
	assert.Equal(t, got[1].Distance, got[2].Distance)
	assert.Less(t, got[0].Distance, got[1].Distance)
	assert.Less(t, got[2].Distance, got[3].Distance)
}

func TestSubdivide(t *testing.T) {
	ws, obstacles := twoSquares(t)
	rays, err := BuildRays(ws, obstacles, ws.Center())
	require.NoError(t, err)
	rays, err = SortRays(rays)
	require.NoError(t, err)

	got, err := Subdivide(context.Background(), rays, obstacles, 1)
	require.NoError(t, err)
	for _, r := range got {
		for i := 1; i < len(r.Crossings); i++ {
			assert.Less(t, r.Crossings[i-1].Distance, r.Crossings[i].Distance)
		}
		// Every segment starts inside its own obstacle.
		require.NotEmpty(t, r.Crossings)
		assert.Equal(t, r.Obstacle, r.Crossings[0].Obstacle)
	}

	// The away ray of obstacle 0 runs from its key point through the base
	// point and across obstacle 1.
	away := got[3]
	require.Equal(t, 0, away.Obstacle)
	require.Equal(t, Away, away.Kind)
	require.Len(t, away.Crossings, 3)
	for i, x := range []float64{30, 70, 90} {
		assert.InDelta(t, x, away.Crossings[i].Point.X, 1e-9)
		assert.InDelta(t, x-20, away.Crossings[i].Distance, 0.02)
	}
	assert.Equal(t, []int{0, 1, 1}, []int{away.Crossings[0].Obstacle, away.Crossings[1].Obstacle, away.Crossings[2].Obstacle})

	// Its toward ray only leaves its own square. Crossing lists cover the
	// segment from the owning key point to the boundary, so the opposite
	// square shows up on the away ray above, and every list starts with the
	// owner's own border.
	toward := got[1]
	require.Equal(t, 0, toward.Obstacle)
	require.Len(t, toward.Crossings, 1)
	assert.InDelta(t, 10, toward.Crossings[0].Point.X, 1e-9)

	assert.Empty(t, rays[0].Crossings, "input is not modified")

	parallel, err := Subdivide(context.Background(), rays, obstacles, 4)
	require.NoError(t, err)
	assert.Equal(t, got, parallel)
}

func TestSubdivideCancelled(t *testing.T) {
	ws, obstacles := twoSquares(t)
	rays, err := BuildRays(ws, obstacles, ws.Center())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, parallelism := range []int{1, 4} {
		_, err := Subdivide(ctx, rays, obstacles, parallelism)
		assert.ErrorIs(t, err, context.Canceled)
	}
}

func TestCornersBetween(t *testing.T) {
	ws := Workspace{100, 100}
	c := ws.Center()
	corners := CornerRays(ws, c)
	d := func(x, y float64) planar.Direction { return planar.DirectionBetween(c, pt(x, y)) }

	tests := []struct {
		name   string
		d1, d2 planar.Direction
		want   []r2.Point
	}{
		{"upper half", d(99, 50), d(0, 50), []r2.Point{pt(99, 99), pt(0, 99)}},
		{"wraps through x axis", d(99, 40), d(60, 99), []r2.Point{pt(99, 99)}},
		{"lower half", d(0, 49), d(99, 49), []r2.Point{pt(0, 0), pt(99, 0)}},
		{"narrow", d(99, 48), d(99, 51), nil},
		{"three corners", d(60, 0), d(0, 40), []r2.Point{pt(99, 0), pt(99, 99), pt(0, 99)}},
		{"exactly on a corner", d(99, 99), d(0, 50), []r2.Point{pt(0, 99)}},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, cornersBetween(corners, test.d1, test.d2), test.name)
	}
}

func TestAssembleRegions(t *testing.T) {
	ws, obstacles := twoSquares(t)
	base := ws.Center()
	rays, err := BuildRays(ws, obstacles, base)
	require.NoError(t, err)
	rays, err = SortRays(rays)
	require.NoError(t, err)

	regions := AssembleRegions(ws, base, rays, CornerRays(ws, base))
	require.Len(t, regions, len(rays))

	wantCorners := [][]r2.Point{
		{pt(99, 99), pt(0, 99)},
		nil,
		{pt(0, 0), pt(99, 0)},
		nil,
	}
	for i, r := range regions {
		assert.Equal(t, i, r.Index)
		assert.Equal(t, i, r.From)
		assert.Equal(t, (i+1)%len(rays), r.To)
		assert.False(t, r.IsFull())
		assert.Equal(t, base, r.Boundary[0])
		assert.Equal(t, rays[i].Endpoint(), r.Boundary[1])
		assert.Equal(t, rays[r.To].Endpoint(), r.Boundary[len(r.Boundary)-1])

		var corners []r2.Point
		if inner := r.Boundary[2 : len(r.Boundary)-1]; len(inner) > 0 {
			corners = inner
		}
		assert.Equal(t, wantCorners[i], corners, "region %d", i)

		next := regions[(i+1)%len(regions)]
		assert.Equal(t, r.Boundary[len(r.Boundary)-1], next.Boundary[1], "region %d shares its last ray", i)
	}

	assert.True(t, regions[0].ContainsPoint(pt(50, 90)))
	assert.True(t, regions[2].ContainsPoint(pt(50, 10)))
	assert.True(t, regions[3].ContainsPoint(pt(95, 49.5)))
	assert.True(t, regions[1].ContainsPoint(pt(5, 49.5)))
	assert.False(t, regions[1].ContainsPoint(pt(50, 90)))
}

func TestAssembleRegionsWithoutRays(t *testing.T) {
	ws := Workspace{100, 100}
	base := ws.Center()
	regions := AssembleRegions(ws, base, nil, CornerRays(ws, base))
	require.Len(t, regions, 1)
	r := regions[0]
	assert.True(t, r.IsFull())
	assert.Equal(t, NoIndex, r.From)
	assert.Equal(t, []r2.Point{base, pt(99, 99), pt(0, 99), pt(0, 0), pt(99, 0)}, r.Boundary)
	assert.True(t, r.ContainsPoint(pt(99, 50)))
	assert.True(t, r.ContainsPoint(pt(0, 0)))
	assert.False(t, r.ContainsPoint(pt(-1, 50)))
}
