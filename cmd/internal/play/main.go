package play

import (
	"bufio"
	"context"
	"flag"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/nelhage/isolation/ai"
	"github.com/nelhage/isolation/cli"
	"github.com/nelhage/isolation/cmd/internal/opt"
	"github.com/nelhage/isolation/isolation"
	"github.com/nelhage/isolation/logs"
	"github.com/nelhage/isolation/match"
	"github.com/nelhage/isolation/notation"
)

type Command struct {
	p1    string
	p2    string
	limit time.Duration
	out   string
	db    string

	unicode bool

	board opt.Board
	opt   opt.Agent
}

func (*Command) Name() string     { return "play" }
func (*Command) Synopsis() string { return "Play Isolation from the command line" }
func (*Command) Usage() string {
	return `play [flags]

Play Isolation on the command-line, against a human or AI. Players are
human, agent[:DEPTH], greedy, random[:SEED], or iei:CMDLINE.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.p1, "p1", "human", "player1")
	flags.StringVar(&c.p2, "p2", "agent", "player2")
	flags.DurationVar(&c.limit, "limit", opt.Defaults.LimitOr(0), "ai time limit per move (0 for none)")
	flags.StringVar(&c.out, "out", "", "write the game record to file")
	flags.StringVar(&c.db, "db", "", "log the result to this sqlite database")
	flags.BoolVar(&c.unicode, "unicode", false, "render board with utf8 glyphs")
	c.board.AddFlags(flags)
	c.opt.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	board, err := c.board.Config()
	if err != nil {
		log.Error().Err(err).Msg("-size")
		return subcommands.ExitUsageError
	}

	in := bufio.NewReader(os.Stdin)
	human := func() ai.Player { return cli.NewCLIPlayer(os.Stdout, in) }
	var players [2]ai.Player
	for i, spec := range []string{c.p1, c.p2} {
		pl, done, err := c.opt.HumanOr(spec, isolation.Player(i), board, human)
		if err != nil {
			log.Error().Err(err).Msg("player")
			return subcommands.ExitUsageError
		}
		defer done()
		players[i] = pl
	}

	st := &cli.CLI{
		Config:  board,
		Out:     os.Stdout,
		Players: players,
		Limit:   c.limit,
		Glyphs:  glyphs(c.unicode),
	}
	res, err := st.Play(ctx)
	if err != nil {
		log.Error().Err(err).Msg("play")
		return subcommands.ExitFailure
	}

	if c.out != "" {
		rec := Record(res, c.p1, c.p2)
		if err := os.WriteFile(c.out, []byte(rec.Render()), 0644); err != nil {
			log.Error().Err(err).Str("path", c.out).Msg("write record")
		}
	}
	if c.db != "" {
		repo, err := logs.Open(c.db)
		if err != nil {
			log.Error().Err(err).Msg("open db")
			return subcommands.ExitFailure
		}
		defer repo.Close()
		if err := repo.InsertGame(LogEntry(res, c.p1, c.p2)); err != nil {
			log.Error().Err(err).Msg("log game")
		}
	}
	return subcommands.ExitSuccess
}

func glyphs(unicode bool) *cli.Glyphs {
	if unicode {
		return &cli.UnicodeGlyphs
	}
	return &cli.DefaultGlyphs
}

// Record is the game record of a finished match.
func Record(res *match.Result, p1, p2 string) *notation.Record {
	cfg := res.Initial.Config()
	rec := &notation.Record{}
	rec.SetTag("Size", notation.FormatSize(cfg))
	rec.SetTag("Player1", p1)
	rec.SetTag("Player2", p2)
	if res.Initial.PlyCount() != 0 || res.Initial.OpenSquares() != cfg.Width*cfg.Height {
		rec.SetTag("Position", notation.FormatPosition(res.Initial))
	}
	rec.AddMoves(cfg, res.Moves)
	if res.Decided() {
		rec.SetTag("Termination", res.Reason.String())
		rec.Result = notation.ResultToken(res.Winner)
	}
	return rec
}

// LogEntry is the database row for a finished match.
func LogEntry(res *match.Result, p1, p2 string) *logs.Game {
	cfg := res.Initial.Config()
	g := &logs.Game{
		Time:    time.Now(),
		Size:    notation.FormatSize(cfg),
		Player1: p1,
		Player2: p2,
		Reason:  res.Reason.String(),
		Plies:   len(res.Moves),
		Moves:   notation.FormatMoves(cfg, res.Moves),
	}
	if res.Decided() {
		g.Winner = res.Winner.String()
	}
	return g
}
