package arena

import "boomgrid/internal/mathutil"

// maxPathNodes bounds a single search; arenas are small
const maxPathNodes = 1024

var stepOrder = [4]Cell{{X: -1}, {X: 1}, {Y: -1}, {Y: 1}}

type pathNode struct {
	idx int
	g   int
	f   int
}

// nodeHeap is a min-heap on f, ties broken by insertion order
type nodeHeap struct {
	nodes []pathNode
}

func (h *nodeHeap) reset() { h.nodes = h.nodes[:0] }

func (h *nodeHeap) push(n pathNode) {
	h.nodes = append(h.nodes, n)
	i := len(h.nodes) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if h.nodes[parent].f <= n.f {
			break
		}
		h.nodes[i] = h.nodes[parent]
		i = parent
	}
	h.nodes[i] = n
}

func (h *nodeHeap) pop() (pathNode, bool) {
	if len(h.nodes) == 0 {
		return pathNode{}, false
	}
	min := h.nodes[0]
	last := h.nodes[len(h.nodes)-1]
	h.nodes = h.nodes[:len(h.nodes)-1]
	if len(h.nodes) == 0 {
		return min, true
	}
	i := 0
	for {
		left := 2*i + 1
		right := left + 1
		if left >= len(h.nodes) {
			break
		}
		smallest := left
		if right < len(h.nodes) && h.nodes[right].f < h.nodes[left].f {
			smallest = right
		}
		if h.nodes[smallest].f >= last.f {
			break
		}
		h.nodes[i] = h.nodes[smallest]
		i = smallest
	}
	h.nodes[i] = last
	return min, true
}

// pathfinder runs A* over the static tiles of an arena. Scratch buffers are
// reused between searches.
type pathfinder struct {
	width, height int
	passable      func(Cell) bool

	gScore   []int
	cameFrom []int
	closed   []bool
	heap     nodeHeap
}

func newPathfinder(width, height int, passable func(Cell) bool) *pathfinder {
	size := width * height
	return &pathfinder{
		width:    width,
		height:   height,
		passable: passable,
		gScore:   make([]int, size),
		cameFrom: make([]int, size),
		closed:   make([]bool, size),
	}
}

func (p *pathfinder) index(c Cell) int {
	if c.X < 0 || c.Y < 0 || c.X >= p.width || c.Y >= p.height {
		return -1
	}
	return c.Y*p.width + c.X
}

func (p *pathfinder) coord(idx int) Cell {
	return Cell{X: idx % p.width, Y: idx / p.width}
}

// nextStep returns the first tile on a shortest path from start to goal.
// It reports false when start is the goal or the goal cannot be reached.
func (p *pathfinder) nextStep(start, goal Cell) (Cell, bool) {
	startIdx, goalIdx := p.index(start), p.index(goal)
	if startIdx < 0 || goalIdx < 0 || startIdx == goalIdx {
		return Cell{}, false
	}

	for i := range p.gScore {
		p.gScore[i] = -1
		p.cameFrom[i] = -1
		p.closed[i] = false
	}
	p.heap.reset()

	heuristic := func(c Cell) int {
		return mathutil.Manhattan(c.X, c.Y, goal.X, goal.Y)
	}

	p.gScore[startIdx] = 0
	p.heap.push(pathNode{idx: startIdx, g: 0, f: heuristic(start)})

	searched := 0
	for searched < maxPathNodes {
		current, ok := p.heap.pop()
		if !ok {
			break
		}
		if p.closed[current.idx] || current.g > p.gScore[current.idx] {
			continue
		}
		if current.idx == goalIdx {
			return p.firstStep(startIdx, goalIdx), true
		}

		p.closed[current.idx] = true
		searched++

		coord := p.coord(current.idx)
		for _, step := range stepOrder {
			neighbor := Cell{X: coord.X + step.X, Y: coord.Y + step.Y}
			nidx := p.index(neighbor)
			if nidx < 0 || p.closed[nidx] {
				continue
			}
			if nidx != goalIdx && !p.passable(neighbor) {
				continue
			}
			g := current.g + 1
			if p.gScore[nidx] < 0 || g < p.gScore[nidx] {
				p.gScore[nidx] = g
				p.cameFrom[nidx] = current.idx
				p.heap.push(pathNode{idx: nidx, g: g, f: g + heuristic(neighbor)})
			}
		}
	}

	return Cell{}, false
}

func (p *pathfinder) firstStep(startIdx, goalIdx int) Cell {
	current := goalIdx
	for p.cameFrom[current] != startIdx {
		current = p.cameFrom[current]
	}
	return p.coord(current)
}
