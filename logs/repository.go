// Package logs stores finished games in a sqlite database.
package logs

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // repository assumes sqlite
)

type Repository struct {
	db *sqlx.DB

	insert *sqlx.NamedStmt
}

type Game struct {
	ID      int64     `db:"id"`
	Time    time.Time `db:"time"`
	Size    string    `db:"size"`
	Player1 string    `db:"player1"`
	Player2 string    `db:"player2"`
	// Winner is "player1", "player2", or empty for a game that was
	// cut off.
	Winner string `db:"winner"`
	Reason string `db:"reason"`
	Plies  int    `db:"plies"`
	Moves  string `db:"moves"`
}

type Standing struct {
	Player string `db:"player"`
	Games  int    `db:"games"`
	Wins   int    `db:"wins"`
	Losses int    `db:"losses"`
}

func Open(path string) (*Repository, error) {
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	// sqlite allows one writer; serialize selfplay workers here
	db.SetMaxOpenConns(1)
	if _, err = db.Exec(createGameTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create games table: %w", err)
	}
	if _, err = db.Exec(createPlayerView); err != nil {
		db.Close()
		return nil, fmt.Errorf("create player_games view: %w", err)
	}

	repo := &Repository{db: db}
	repo.insert, err = db.PrepareNamed(insertStmt)
	if err != nil {
		repo.Close()
		return nil, fmt.Errorf("prepare: %w", err)
	}
	return repo, nil
}

// InsertGame stores g and sets its ID.
func (r *Repository) InsertGame(g *Game) error {
	return r.insertGame(r.insert, g)
}

func (r *Repository) insertGame(stmt *sqlx.NamedStmt, g *Game) error {
	res, err := stmt.Exec(g)
	if err != nil {
		return err
	}
	g.ID, err = res.LastInsertId()
	return err
}

// InsertGames stores gs in a single transaction.
func (r *Repository) InsertGames(gs []*Game) error {
	txn, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer txn.Rollback()
	stmt := txn.NamedStmt(r.insert)
	for _, g := range gs {
		if e := r.insertGame(stmt, g); e != nil {
			return e
		}
	}
	return txn.Commit()
}

func (r *Repository) Games() ([]Game, error) {
	var gs []Game
	if err := r.db.Select(&gs, selectGames); err != nil {
		return nil, err
	}
	return gs, nil
}

// Standings returns win/loss totals per player name, best first.
func (r *Repository) Standings() ([]Standing, error) {
	var st []Standing
	if err := r.db.Select(&st, selectStandings); err != nil {
		return nil, err
	}
	return st, nil
}

func (r *Repository) Close() {
	if r.insert != nil {
		r.insert.Close()
	}
	r.db.Close()
}
