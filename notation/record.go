package notation

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/nelhage/isolation/isolation"
)

type Tag struct {
	Name  string
	Value string
}

// Record is a game transcript: a set of tags followed by numbered
// moves and an optional result ("1-0" or "0-1").
//
//	[Size "11x9"]
//	[Player1 "agent:4"]
//
//	1. f5 a1
//	2. g7 b3
//	1-0
type Record struct {
	Tags   []Tag
	Moves  []string
	Result string
}

func (r *Record) FindTag(name string) string {
	for _, t := range r.Tags {
		if t.Name == name {
			return t.Value
		}
	}
	return ""
}

func (r *Record) SetTag(name, value string) {
	for i := range r.Tags {
		if r.Tags[i].Name == name {
			r.Tags[i].Value = value
			return
		}
	}
	r.Tags = append(r.Tags, Tag{Name: name, Value: value})
}

// InitialPosition returns the starting position from the Size and
// Position tags.
func (r *Record) InitialPosition() (*isolation.Position, error) {
	if pos := r.FindTag("Position"); pos != "" {
		return ParsePosition(pos)
	}
	cfg := isolation.Config{}
	if size := r.FindTag("Size"); size != "" {
		var err error
		cfg, err = ParseSize(size)
		if err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return isolation.New(cfg), nil
}

// Position replays the record and returns the final position.
func (r *Record) Position() (*isolation.Position, error) {
	p, err := r.InitialPosition()
	if err != nil {
		return nil, err
	}
	ms, err := ParseMoves(p.Config(), strings.Join(r.Moves, " "))
	if err != nil {
		return nil, err
	}
	return Replay(p, ms)
}

func (r *Record) AddMoves(c *isolation.Config, ms []isolation.Action) {
	for _, m := range ms {
		r.Moves = append(r.Moves, FormatMove(c, m))
	}
}

// ParseSize parses a WxH board size such as "11x9".
func ParseSize(s string) (isolation.Config, error) {
	bits := strings.SplitN(s, "x", 2)
	if len(bits) != 2 {
		return isolation.Config{}, fmt.Errorf("bad size: %q", s)
	}
	w, e1 := strconv.Atoi(bits[0])
	h, e2 := strconv.Atoi(bits[1])
	if e1 != nil || e2 != nil {
		return isolation.Config{}, fmt.Errorf("bad size: %q", s)
	}
	cfg := isolation.Config{Width: w, Height: h}
	return cfg, cfg.Validate()
}

func FormatSize(c *isolation.Config) string {
	return fmt.Sprintf("%dx%d", c.Width, c.Height)
}

// ResultToken is the record result for a game won by winner.
func ResultToken(winner isolation.Player) string {
	if winner == isolation.Player1 {
		return "1-0"
	}
	return "0-1"
}

func ParseFile(path string) (*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseRecord(f)
}

var tagRE = regexp.MustCompile(`^\[(\w+)\s+"([^"]*)"\]$`)

// ParseRecord reads tag lines up to the first line that is not a tag,
// then move tokens until EOF.
func ParseRecord(r io.Reader) (*Record, error) {
	var rec Record
	s := bufio.NewScanner(r)
	inTags := true
	for n := 1; s.Scan(); n++ {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		if inTags && strings.HasPrefix(line, "[") {
			m := tagRE.FindStringSubmatch(line)
			if m == nil {
				return nil, fmt.Errorf("line %d: bad tag: %q", n, line)
			}
			rec.Tags = append(rec.Tags, Tag{Name: m[1], Value: m[2]})
			continue
		}
		inTags = false
		if err := rec.addTokens(strings.Fields(line)); err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *Record) addTokens(toks []string) error {
	for _, tok := range toks {
		switch {
		case tok == "1-0" || tok == "0-1":
			r.Result = tok
		case strings.HasSuffix(tok, "."):
			if _, err := strconv.Atoi(strings.TrimSuffix(tok, ".")); err != nil {
				return fmt.Errorf("bad move number: %q", tok)
			}
		case squareRE.MatchString(tok):
			r.Moves = append(r.Moves, tok)
		default:
			return fmt.Errorf("bad move: %q", tok)
		}
	}
	return nil
}

// Render formats r with one full move per line.
func (r *Record) Render() string {
	var out strings.Builder
	for _, tag := range r.Tags {
		fmt.Fprintf(&out, "[%s %q]\n", tag.Name, strings.ReplaceAll(tag.Value, `"`, ""))
	}
	out.WriteByte('\n')
	for i := 0; i < len(r.Moves); i += 2 {
		fmt.Fprintf(&out, "%d. %s", i/2+1, strings.Join(r.Moves[i:min(i+2, len(r.Moves))], " "))
		out.WriteByte('\n')
	}
	if len(r.Moves) == 0 {
		out.WriteByte('\n')
	}
	if r.Result != "" {
		out.WriteString(r.Result + "\n")
	}
	return out.String()
}
