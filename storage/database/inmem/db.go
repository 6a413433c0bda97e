package inmemdb

import (
	"sync"

	"github.com/trezcool/portal/core/alumni"
	"github.com/trezcool/portal/core/paper"
)

type (
	DB struct {
		alumni *alumniTable
		papers *paperTable
	}

	// tables keep rows in insertion order; index maps ids to positions.
	alumniTable struct {
		sync.RWMutex
		rows  []alumni.Alumnus
		index map[string]int
	}

	paperTable struct {
		sync.RWMutex
		rows  []paper.Paper
		index map[string]int
	}
)

func Open() *DB {
	return &DB{
		alumni: &alumniTable{index: make(map[string]int)},
		papers: &paperTable{index: make(map[string]int)},
	}
}
