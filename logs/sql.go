package logs

const createGameTable = `
CREATE TABLE IF NOT EXISTS games (
  id integer primary key autoincrement,
  time datetime not null,
  size varchar not null,
  player1 varchar not null,
  player2 varchar not null,
  winner varchar not null,
  reason varchar not null,
  plies int not null,
  moves text not null
)`

const createPlayerView = `
CREATE VIEW IF NOT EXISTS player_games (
  id, player, opponent, side, win, reason, size, plies
) AS
SELECT id, player1, player2, 'player1',
       CASE winner WHEN 'player1' THEN 'win' WHEN 'player2' THEN 'lose' ELSE 'none' END,
       reason, size, plies
 FROM games
UNION ALL
SELECT id, player2, player1, 'player2',
       CASE winner WHEN 'player2' THEN 'win' WHEN 'player1' THEN 'lose' ELSE 'none' END,
       reason, size, plies
 FROM games
`

const insertStmt = `
INSERT INTO games (time, size, player1, player2, winner, reason, plies, moves)
VALUES (:time, :size, :player1, :player2, :winner, :reason, :plies, :moves)
`

const selectGames = `
SELECT id, time, size, player1, player2, winner, reason, plies, moves
FROM games
ORDER BY id
`

const selectStandings = `
SELECT player,
       COUNT(*) AS games,
       SUM(CASE win WHEN 'win' THEN 1 ELSE 0 END) AS wins,
       SUM(CASE win WHEN 'lose' THEN 1 ELSE 0 END) AS losses
FROM player_games
GROUP BY player
ORDER BY wins DESC, player
`
