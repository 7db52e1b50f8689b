package terrane

import "container/list"

// Bridge finds a minimum-conversion path of sub-threshold cells connecting
// any cell of component srcComp to any cell of component dstComp, as
// numbered by ConnectedComponents. Each crossed sub-threshold cell costs 1,
// so between two continental margins cost is the rift gap in cells.
// Returns the row-major cell path (including both end cells) and the cost.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source 0–1 BFS from all srcComp cells:
//     • moving into an in-cell      → cost 0
//     • moving into an out-cell     → cost 1
//  3. Stop when any dstComp cell is reached.
//  4. Reconstruct the path via predecessors.
//
// Complexity: O(W·H·d). Memory: O(W·H).
func (g *Grid) Bridge(srcComp, dstComp int) (path []int, cost int, err error) {
	comps := g.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	dstSet := make(map[int]struct{}, len(comps[dstComp]))
	for _, i := range comps[dstComp] {
		dstSet[i] = struct{}{}
	}

	n := g.Width * g.Height
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// cost-0 moves go to the front of the deque, cost-1 moves to the back
	dq := list.New()
	for _, i := range comps[srcComp] {
		dist[i] = 0
		dq.PushFront(i)
	}

	target := -1
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if _, ok := dstSet[u]; ok {
			target = u
			break
		}
		ux, uy := g.Coordinate(u)
		for _, d := range g.neighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !g.InBounds(vx, vy) {
				continue
			}
			v := g.index(vx, vy)
			step := 0
			if !g.In(vx, vy) {
				step = 1
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}
	for at := target; at >= 0; at = prev[at] {
		path = append(path, at)
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path, dist[target], nil
}
