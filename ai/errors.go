package ai

import "github.com/pkg/errors"

// ErrContractViolation is returned (or panicked with) when the game
// engine or the caller breaks the State contract: asking for a move
// in a finished game, or an engine rejecting an action it generated.
var ErrContractViolation = errors.New("contract violation")
