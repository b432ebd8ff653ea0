// Package parserpool provides a pool of gnparser instances for
// canonicalizing the scientific names found in sampling rows.
// This is a pure package - parsing is computation, not I/O.
package parserpool

import (
	"runtime"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
)

// Pool hands out gnparser instances for concurrent name
// canonicalization during ingestion.
type Pool interface {
	// Canonical parses a scientific name and returns its simple
	// canonical form. Unparseable names return an empty string; they
	// are an enrichment, never a reason to drop a row.
	Canonical(nameString string) string

	// Close shuts down the pool and releases resources. After calling
	// Close the pool should not be used.
	Close()
}

type poolImpl struct {
	ch       chan gnparser.GNparser
	poolSize int
}

// NewPool creates a parser pool with the specified number of workers.
// If jobsNum is 0, it defaults to runtime.NumCPU(). e-DNA surveys use
// zoological names, so a single zoological pool suffices.
func NewPool(jobsNum int) Pool {
	poolSize := jobsNum
	if poolSize == 0 {
		poolSize = runtime.NumCPU()
	}

	cfg := gnparser.NewConfig(
		gnparser.OptCode(nomcode.Zoological),
	)
	ch := gnparser.NewPool(cfg, poolSize)

	return &poolImpl{ch: ch, poolSize: poolSize}
}

// Canonical retrieves a parser from the pool, parses the name, and
// returns the parser to the pool. Safe for concurrent use; blocks while
// all parsers are busy.
func (p *poolImpl) Canonical(nameString string) string {
	parser := <-p.ch
	res := parser.ParseName(nameString)
	p.ch <- parser

	if !res.Parsed || res.Canonical == nil {
		return ""
	}
	return res.Canonical.Simple
}

// Close closes the pool channel and drains remaining parsers.
func (p *poolImpl) Close() {
	if p.ch == nil {
		return
	}
	close(p.ch)
	for range p.ch {
	}
}
