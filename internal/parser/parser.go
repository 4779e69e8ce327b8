package parser

import "git.lost.host/meutraa/affstat/internal/game"

type Parser interface {
	Parse(file string) (*game.Chart, error)
}
