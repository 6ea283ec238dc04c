package solver

import (
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/domino14/morris/board"
)

// RootChild is one successor of the root as seen by the last search.
type RootChild struct {
	Position string `yaml:"position"`
	ID       string `yaml:"id"`
	Score    int    `yaml:"score"`
	Nodes    uint64 `yaml:"nodes"`
}

type searchLog struct {
	Mode      string      `yaml:"mode"`
	Algorithm string      `yaml:"algorithm"`
	Evaluator string      `yaml:"evaluator"`
	Side      string      `yaml:"side"`
	Best      string      `yaml:"best"`
	Score     int         `yaml:"score"`
	Nodes     uint64      `yaml:"nodes"`
	PV        []string    `yaml:"pv"`
	Children  []RootChild `yaml:"children"`
}

func (s *Solver) recordRootChild(pos board.Position, score int, nodes uint64) {
	if s.side == board.Black {
		pos = pos.ColorSwap()
	}
	s.rootLog = append(s.rootLog, RootChild{
		Position: pos.String(),
		ID:       pos.ID(),
		Score:    score,
		Nodes:    nodes,
	})
}

// RootChildren returns the root successors searched by the last Solve, in
// generation order. Children cut off by alpha-beta are not included.
func (s *Solver) RootChildren() []RootChild {
	return s.rootLog
}

func (s *Solver) writeRootLog(res *Result) error {
	best := "none"
	if res.Position != nil {
		best = res.Position.String()
	}
	out, err := yaml.Marshal(searchLog{
		Mode:      s.mode.String(),
		Algorithm: s.algorithm.String(),
		Evaluator: s.calc.Type(),
		Side:      s.side.String(),
		Best:      best,
		Score:     res.Score,
		Nodes:     res.Nodes,
		PV:        lo.Map(res.PV.Positions, func(p board.Position, _ int) string { return p.String() }),
		Children:  s.rootLog,
	})
	if err != nil {
		return err
	}
	_, err = s.logStream.Write(append(out, []byte("---\n")...))
	return err
}
