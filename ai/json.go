package ai

import (
	"encoding"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

var _ interface {
	encoding.TextMarshaler
	encoding.TextUnmarshaler
	fmt.Stringer
} = new(Heuristic)

var heuristicNames map[string]Heuristic

func init() {
	heuristicNames = make(map[string]Heuristic)
	for h := Heuristic(0); h < maxHeuristic; h++ {
		heuristicNames[h.String()] = h
	}
}

func (h Heuristic) String() string {
	switch h {
	case Baseline:
		return "baseline"
	case Custom:
		return "custom"
	}
	return fmt.Sprintf("Heuristic(%d)", int(h))
}

// ParseHeuristic returns the heuristic with the given name.
func ParseHeuristic(name string) (Heuristic, error) {
	h, ok := heuristicNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown heuristic: %q", name)
	}
	return h, nil
}

func (h Heuristic) MarshalText() ([]byte, error) {
	if h < 0 || h >= maxHeuristic {
		return nil, fmt.Errorf("unknown heuristic: %d", int(h))
	}
	return []byte(h.String()), nil
}

func (h *Heuristic) UnmarshalText(text []byte) error {
	v, err := ParseHeuristic(string(text))
	if err != nil {
		return err
	}
	*h = v
	return nil
}

// Set lets a Heuristic be used as a flag.Value.
func (h *Heuristic) Set(s string) error {
	return h.UnmarshalText([]byte(s))
}

// Score is a search value. Wins and losses are infinite, which JSON
// cannot represent, so they are encoded as the strings "+inf" and
// "-inf".
type Score float64

func (s Score) String() string {
	switch {
	case math.IsInf(float64(s), 1):
		return "+inf"
	case math.IsInf(float64(s), -1):
		return "-inf"
	}
	return strconv.FormatFloat(float64(s), 'g', -1, 64)
}

func (s Score) MarshalJSON() ([]byte, error) {
	if math.IsInf(float64(s), 0) {
		return json.Marshal(s.String())
	}
	return json.Marshal(float64(s))
}

func (s *Score) UnmarshalJSON(bs []byte) error {
	var str string
	if err := json.Unmarshal(bs, &str); err == nil {
		switch str {
		case "+inf":
			*s = Score(math.Inf(1))
		case "-inf":
			*s = Score(math.Inf(-1))
		default:
			return fmt.Errorf("bad score: %q", str)
		}
		return nil
	}
	var f float64
	if err := json.Unmarshal(bs, &f); err != nil {
		return err
	}
	*s = Score(f)
	return nil
}
