package selfplay

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/nelhage/isolation/ai"
	"github.com/nelhage/isolation/cmd/internal/opt"
	"github.com/nelhage/isolation/cmd/internal/play"
	"github.com/nelhage/isolation/isolation"
	"github.com/nelhage/isolation/logs"
	"github.com/nelhage/isolation/notation"
)

type Command struct {
	p1 string
	p2 string

	games  int
	cutoff int
	swap   bool

	openings string

	limit   time.Duration
	threads int

	out     string
	summary string
	db      string
	nodb    bool
	verbose bool

	board opt.Board
	opt   opt.Agent
}

func (*Command) Name() string     { return "selfplay" }
func (*Command) Synopsis() string { return "Play two AIs against each other and report results" }
func (*Command) Usage() string {
	return `selfplay [flags]

Players are agent[:DEPTH], greedy, random[:SEED], or iei:CMDLINE.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.p1, "p1", "agent", "player1")
	flags.StringVar(&c.p2, "p2", "greedy", "player2")

	flags.IntVar(&c.games, "games", 10, "number of games to play per opening/side")
	flags.IntVar(&c.cutoff, "cutoff", 0, "cut games off after how many plies (0 for never)")
	flags.BoolVar(&c.swap, "swap", true, "swap sides each game")
	flags.StringVar(&c.openings, "openings", "", "file of openings, one position per line")
	flags.DurationVar(&c.limit, "limit", opt.Defaults.LimitOr(150*time.Millisecond), "amount of time to search each move")
	flags.IntVar(&c.threads, "threads", 4, "number of games to play in parallel")
	flags.StringVar(&c.out, "out", "", "directory to write game records to")
	flags.StringVar(&c.summary, "summary", "", "write summary JSON file")
	flags.StringVar(&c.db, "db", "", "sqlite database to log games to (default: XDG data dir)")
	flags.BoolVar(&c.nodb, "no-db", false, "don't log games")
	flags.BoolVar(&c.verbose, "v", false, "verbose output")
	c.board.AddFlags(flags)
	c.opt.AddFlags(flags)
}

func readOpenings(path string) ([]*isolation.Position, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []*isolation.Position
	r := bufio.NewScanner(f)
	for r.Scan() {
		line := strings.TrimSpace(r.Text())
		if line == "" {
			continue
		}
		pos, err := notation.ParsePosition(line)
		if err != nil {
			return nil, fmt.Errorf("parse position: %q: %w", line, err)
		}
		out = append(out, pos)
	}
	return out, r.Err()
}

func (c *Command) factory(spec string) PlayerFactory {
	return func(side isolation.Player, board isolation.Config) (ai.Player, func(), error) {
		return c.opt.Player(spec, side, board)
	}
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	board, err := c.board.Config()
	if err != nil {
		log.Error().Err(err).Msg("-size")
		return subcommands.ExitUsageError
	}
	var openings []*isolation.Position
	if c.openings != "" {
		openings, err = readOpenings(c.openings)
		if err != nil {
			log.Error().Err(err).Msg("-openings")
			return subcommands.ExitUsageError
		}
	}
	if len(openings) == 0 {
		openings = []*isolation.Position{isolation.New(board)}
	}
	for _, spec := range []string{c.p1, c.p2} {
		if _, done, err := c.opt.Player(spec, isolation.Player1, board); err != nil {
			log.Error().Err(err).Msg("player")
			return subcommands.ExitUsageError
		} else {
			done()
		}
	}

	cfg := &Config{
		Games:   c.games,
		Verbose: c.verbose,
		Initial: openings,
		P1:      c.factory(c.p1),
		P2:      c.factory(c.p2),
		Swap:    c.swap,
		Threads: c.threads,
		Cutoff:  c.cutoff,
		Limit:   c.limit,
	}
	st, err := Simulate(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("selfplay")
		return subcommands.ExitFailure
	}

	if c.out != "" {
		if c.summary == "" {
			c.summary = filepath.Join(c.out, "summary.json")
		}
		for i := range st.Games {
			if err := c.writeGame(c.out, &st.Games[i]); err != nil {
				log.Error().Err(err).Msg("write game")
			}
		}
	}
	if c.summary != "" {
		if err := c.writeSummary(c.summary, &st); err != nil {
			log.Error().Err(err).Msg("writing summary")
		}
	}
	if !c.nodb {
		if err := c.logGames(&st); err != nil {
			log.Error().Err(err).Msg("log games")
		}
	}

	log.Info().
		Int("games", st.Count()).
		Int("cutoff", st.Cutoff).
		Int("first", st.First).
		Int("second", st.Second).
		Dur("limit", c.limit).
		Msg("done")
	log.Info().
		Int("p1.wins", st.Players[0].Wins).
		Int("p1.time", st.Players[0].TimeWins).
		Int("p2.wins", st.Players[1].Wins).
		Int("p2.time", st.Players[1].TimeWins).
		Msg("results")

	tw := tabwriter.NewWriter(os.Stderr, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "\tfirst\tsecond\tsum\n")
	fmt.Fprintf(tw, "p1\t%d\t%d\t%d\n", st.Players[0].FirstWins, st.Players[0].SecondWins, st.Players[0].Wins)
	fmt.Fprintf(tw, "p2\t%d\t%d\t%d\n", st.Players[1].FirstWins, st.Players[1].SecondWins, st.Players[1].Wins)
	fmt.Fprintf(tw, "sum\t%d\t%d\t%d\n",
		st.First, st.Second, st.Players[0].Wins+st.Players[1].Wins)
	tw.Flush()

	a, b := int64(st.Players[0].Wins), int64(st.Players[1].Wins)
	if a < b {
		a, b = b, a
	}
	log.Info().Float64("p", binomTest(a, b, 0.5)).Msg("one-sided")

	return subcommands.ExitSuccess
}

func (c *Command) logGames(st *Stats) error {
	path := c.db
	if path == "" {
		var err error
		if path, err = opt.DefaultDB(); err != nil {
			return err
		}
	}
	repo, err := logs.Open(path)
	if err != nil {
		return err
	}
	defer repo.Close()
	gs := make([]*logs.Game, len(st.Games))
	for i := range st.Games {
		gs[i] = c.logEntry(&st.Games[i])
	}
	if err := repo.InsertGames(gs); err != nil {
		return err
	}
	log.Info().Str("db", path).Int("games", len(gs)).Msg("logged")
	return nil
}

func (c *Command) names(r *Result) (string, string) {
	if r.spec.p1side == isolation.Player1 {
		return c.p1, c.p2
	}
	return c.p2, c.p1
}

func (c *Command) logEntry(r *Result) *logs.Game {
	first, second := c.names(r)
	return play.LogEntry(r.Result, first, second)
}

func (c *Command) writeGame(d string, r *Result) error {
	if err := os.MkdirAll(d, 0755); err != nil {
		return err
	}
	first, second := c.names(r)
	rec := play.Record(r.Result, first, second)
	path := filepath.Join(d, fmt.Sprintf("%d-%d.txt", r.spec.oi, r.spec.i))
	return os.WriteFile(path, []byte(rec.Render()), 0644)
}

type Summary struct {
	Cmdline []string
	Player1 string
	Player2 string
	Limit   time.Duration
	Stats   *Stats
}

func (c *Command) writeSummary(path string, stats *Stats) error {
	summary := Summary{
		Cmdline: os.Args,
		Player1: c.p1,
		Player2: c.p2,
		Limit:   c.limit,
		Stats:   stats,
	}
	bs, err := json.MarshalIndent(&summary, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, bs, 0644)
}
