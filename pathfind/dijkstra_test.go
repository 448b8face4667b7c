package pathfind_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sylves/cell"
	"github.com/katalvlaran/sylves/grid"
	"github.com/katalvlaran/sylves/pathfind"
)

func TestDijkstraMatchesBFSOnUnitWeights(t *testing.T) {
	g := grid.NewSquareGrid(1.0)
	target := cell.Cell{X: 3, Y: 4}

	bfsRes, err := pathfind.BFS(g, cell.Cell{}, pathfind.WithMaxDistance(10))
	require.NoError(t, err)
	dijkstraRes, err := pathfind.Dijkstra(g, cell.Cell{}, pathfind.WithMaxDistance(10))
	require.NoError(t, err)

	require.Equal(t, bfsRes.Distance[target], dijkstraRes.Distance[target])
}

func TestAStarOptimalityMatchesDijkstra(t *testing.T) {
	g := grid.NewSquareGrid(1.0)
	source := cell.Cell{}
	target := cell.Cell{X: 3, Y: 4}

	heuristic := pathfind.ManhattanHeuristic(target, cell.KindSquare)
	require.NotNil(t, heuristic)

	dijkstraRes, err := pathfind.Dijkstra(g, source, pathfind.WithMaxDistance(10))
	require.NoError(t, err)

	astarRes, err := pathfind.AStar(g, source, target, pathfind.WithHeuristic(heuristic))
	require.NoError(t, err)

	require.Equal(t, dijkstraRes.Distance[target], astarRes.Distance[target])
}

func TestAStarOptimalityMatchesDijkstraOnHexGrid(t *testing.T) {
	g := grid.NewHexGrid(1.0, false)
	source := cell.Cell{}
	target := cell.Cell{X: 3, Y: -2}

	heuristic := pathfind.ManhattanHeuristic(target, cell.KindHexFT)
	require.NotNil(t, heuristic)

	dijkstraRes, err := pathfind.Dijkstra(g, source, pathfind.WithMaxDistance(10))
	require.NoError(t, err)

	astarRes, err := pathfind.AStar(g, source, target, pathfind.WithHeuristic(heuristic))
	require.NoError(t, err)

	require.Equal(t, dijkstraRes.Distance[target], astarRes.Distance[target])
}

func TestManhattanHeuristicCoversTriangleGrid(t *testing.T) {
	target := cell.Cell{X: 2, Y: 1}
	heuristic := pathfind.ManhattanHeuristic(target, cell.KindTriFT)
	require.NotNil(t, heuristic)
	require.Equal(t, 0.0, heuristic(target))
	require.Equal(t, 3.0, heuristic(cell.Cell{}))
}

func TestDijkstraRespectsMaxDistance(t *testing.T) {
	g := grid.NewSquareGrid(1.0)
	res, err := pathfind.Dijkstra(g, cell.Cell{}, pathfind.WithMaxDistance(2))
	require.NoError(t, err)

	_, reached := res.Distance[cell.Cell{X: 3, Y: 4}]
	require.False(t, reached)
	_, reached = res.Distance[cell.Cell{X: 2}]
	require.True(t, reached)
}
