package job

import "fmt"

// job for the level generation worker: one part folder in, one level out
type Part struct {
	Idx   int
	Name  string
	Files []string
	Out   string
}

func (p *Part) Print() string {
	return fmt.Sprintf("Part: %s, frames: %d, out: %s", p.Name, len(p.Files), p.Out)
}

// res from the generation worker
type Result struct {
	Idx    int
	Name   string
	Floors int
	Events int
	Err    error
}
