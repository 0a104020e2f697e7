package core

import (
	"context"

	"github.com/1F47E/go-adofai-art/internal/tui"
)

type Core struct {
	ctx      context.Context
	eventsCh chan tui.Event
}

func NewCore(ctx context.Context, eventsCh chan tui.Event) *Core {
	return &Core{
		ctx:      ctx,
		eventsCh: eventsCh,
	}
}
