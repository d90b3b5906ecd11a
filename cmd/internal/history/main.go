package history

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/nelhage/isolation/cmd/internal/opt"
	"github.com/nelhage/isolation/logs"
)

type Command struct {
	db    string
	games bool
}

func (*Command) Name() string     { return "history" }
func (*Command) Synopsis() string { return "Show logged games and standings" }
func (*Command) Usage() string {
	return `history [flags]

Print per-player standings from the game database, and optionally every
logged game.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.db, "db", "", "sqlite database (default: XDG data dir)")
	flags.BoolVar(&c.games, "games", false, "list every game")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	path := c.db
	if path == "" {
		var err error
		if path, err = opt.DefaultDB(); err != nil {
			log.Error().Err(err).Msg("db path")
			return subcommands.ExitFailure
		}
	}
	repo, err := logs.Open(path)
	if err != nil {
		log.Error().Err(err).Str("db", path).Msg("open")
		return subcommands.ExitFailure
	}
	defer repo.Close()
	if err := Print(os.Stdout, repo, c.games); err != nil {
		log.Error().Err(err).Msg("history")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func Print(out io.Writer, repo *logs.Repository, games bool) error {
	tw := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	if games {
		gs, err := repo.Games()
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "id\ttime\tsize\tplayer1\tplayer2\twinner\treason\tplies\n")
		for _, g := range gs {
			winner := g.Winner
			if winner == "" {
				winner = "-"
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%d\n",
				g.ID, g.Time.Format("2006-01-02 15:04"), g.Size,
				g.Player1, g.Player2, winner, g.Reason, g.Plies)
		}
		fmt.Fprintf(tw, "\n")
	}
	st, err := repo.Standings()
	if err != nil {
		return err
	}
	fmt.Fprintf(tw, "player\tgames\twins\tlosses\n")
	for _, s := range st {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", s.Player, s.Games, s.Wins, s.Losses)
	}
	return tw.Flush()
}
