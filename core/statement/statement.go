// core/statement/statement.go
package statement

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Side is the end of a feature a probe half is anchored to, in transcript
// orientation. SideWild expands to both ends during resolution.
type Side int

const (
	SideStart Side = iota
	SideEnd
	SideWild
)

func (s Side) String() string {
	switch s {
	case SideStart:
		return "start"
	case SideEnd:
		return "end"
	default:
		return "*"
	}
}

// Length is the number of bases requested from a feature edge. Whole means
// the entire feature, whatever its extent turns out to be at resolution time.
type Length struct {
	Bases int
	Whole bool
}

// Direction says on which side of a coordinate breakpoint the requested
// bases lie.
type Direction int

const (
	Upstream   Direction = iota // '-': bases before the breakpoint
	Downstream                  // '+': bases after the breakpoint
)

// ProbeHalf is one side of a symbolic probe statement. Wildcard fields are
// carried as explicit flags so a literal zero is never confused with "any".
type ProbeHalf struct {
	Gene        string
	Feature     string // case-folded; empty when FeatureWild
	FeatureWild bool
	Ordinal     int // 1-based; meaningless when OrdinalWild
	OrdinalWild bool
	Side        Side
	Length      Length
}

// CoordinateHalf is one side of a literal coordinate statement. No wildcards
// are representable here; the grammar rejects them outright.
type CoordinateHalf struct {
	Chromosome string
	Breakpoint int // 0-based
	Direction  Direction
	Length     int
}

// Query is a parsed statement: either a ProbeQuery or a CoordinateQuery.
type Query interface {
	Statement() string
	query()
}

type ProbeQuery struct {
	Raw         string
	Left, Right ProbeHalf
}

type CoordinateQuery struct {
	Raw         string
	Left, Right CoordinateHalf
}

func (q ProbeQuery) Statement() string      { return q.Raw }
func (q CoordinateQuery) Statement() string { return q.Raw }
func (ProbeQuery) query()                   {}
func (CoordinateQuery) query()              {}

// SyntaxError reports a statement the grammar cannot parse.
type SyntaxError struct {
	Statement string
	Reason    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("cannot parse statement %q: %s", e.Statement, e.Reason)
}

const probeHalfPattern = `([A-Za-z0-9_./-]+)#([A-Za-z]+|\*)\[(\d+|\*)\]([*+-])(\d+|\*)`
const coordHalfPattern = `([A-Za-z0-9.]+):(\d+)([+-])(\d+)`

var (
	probeRe   = regexp.MustCompile(`^` + probeHalfPattern + `/` + probeHalfPattern + `$`)
	coordRe   = regexp.MustCompile(`^` + coordHalfPattern + `/` + coordHalfPattern + `$`)
	commentRe = regexp.MustCompile(`(^|[ \t])--`)
)

// Parse turns one raw statement into a typed Query. A "--" comment at the
// start of the line or preceded by whitespace is stripped before matching,
// as is all whitespace; a "--" embedded in a gene symbol is not a comment.
// Both halves must be the same form: symbolic (contains '#') or coordinate
// (contains ':').
func Parse(raw string) (Query, error) {
	stmt := raw
	if loc := commentRe.FindStringIndex(stmt); loc != nil {
		stmt = stmt[:loc[0]]
	}
	stmt = strings.TrimSpace(stmt)
	if stmt == "" {
		return nil, &SyntaxError{Statement: raw, Reason: "empty statement"}
	}

	compact := stripSpace(stmt)
	hasHash := strings.Contains(compact, "#")
	hasColon := strings.Contains(compact, ":")

	switch {
	case hasHash && hasColon:
		return nil, &SyntaxError{Statement: stmt, Reason: "mixed probe and coordinate forms"}
	case hasHash:
		return parseProbe(stmt, compact)
	case hasColon:
		return parseCoordinate(stmt, compact)
	default:
		return nil, &SyntaxError{Statement: stmt, Reason: "neither probe ('#') nor coordinate (':') form"}
	}
}

func parseProbe(stmt, compact string) (Query, error) {
	m := probeRe.FindStringSubmatch(compact)
	if m == nil {
		return nil, &SyntaxError{Statement: stmt, Reason: "malformed probe statement"}
	}
	left, err := probeHalf(stmt, m[1:6])
	if err != nil {
		return nil, err
	}
	right, err := probeHalf(stmt, m[6:11])
	if err != nil {
		return nil, err
	}
	return ProbeQuery{Raw: stmt, Left: left, Right: right}, nil
}

func probeHalf(stmt string, m []string) (ProbeHalf, error) {
	h := ProbeHalf{Gene: strings.ToUpper(m[0])}

	if m[1] == "*" {
		h.FeatureWild = true
	} else {
		h.Feature = strings.ToUpper(m[1])
	}

	if m[2] == "*" {
		h.OrdinalWild = true
	} else {
		n, err := strconv.Atoi(m[2])
		if err != nil || n < 1 {
			return h, &SyntaxError{Statement: stmt, Reason: fmt.Sprintf("feature ordinal must be a positive integer, got %q", m[2])}
		}
		h.Ordinal = n
	}

	switch m[3] {
	case "+":
		h.Side = SideStart
	case "-":
		h.Side = SideEnd
	case "*":
		h.Side = SideWild
	}

	if m[4] == "*" {
		h.Length = Length{Whole: true}
	} else {
		n, err := strconv.Atoi(m[4])
		if err != nil {
			return h, &SyntaxError{Statement: stmt, Reason: fmt.Sprintf("bad length %q", m[4])}
		}
		h.Length = Length{Bases: n}
	}
	return h, nil
}

func parseCoordinate(stmt, compact string) (Query, error) {
	if strings.Contains(compact, "*") {
		return nil, &SyntaxError{Statement: stmt, Reason: "wildcard not permitted in coordinate statement"}
	}
	m := coordRe.FindStringSubmatch(compact)
	if m == nil {
		return nil, &SyntaxError{Statement: stmt, Reason: "malformed coordinate statement"}
	}
	left, err := coordHalf(stmt, m[1:5])
	if err != nil {
		return nil, err
	}
	right, err := coordHalf(stmt, m[5:9])
	if err != nil {
		return nil, err
	}
	return CoordinateQuery{Raw: stmt, Left: left, Right: right}, nil
}

func coordHalf(stmt string, m []string) (CoordinateHalf, error) {
	bp, err := strconv.Atoi(m[1])
	if err != nil {
		return CoordinateHalf{}, &SyntaxError{Statement: stmt, Reason: fmt.Sprintf("bad breakpoint %q", m[1])}
	}
	n, err := strconv.Atoi(m[3])
	if err != nil {
		return CoordinateHalf{}, &SyntaxError{Statement: stmt, Reason: fmt.Sprintf("bad length %q", m[3])}
	}
	dir := Upstream
	if m[2] == "+" {
		dir = Downstream
	}
	return CoordinateHalf{
		Chromosome: m[0],
		Breakpoint: bp,
		Direction:  dir,
		Length:     n,
	}, nil
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, s)
}
