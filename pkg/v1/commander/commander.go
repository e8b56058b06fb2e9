// Package commander is client sending commands to shelter scraper.
package commander

import (
	"context"
	"encoding/json"
	"fmt"
)

//go:generate mockery --name Sender --filename sender.go

// Sender sends messages.
type Sender interface {
	Send(context.Context, []byte) error
}

// RunCommander sends run commands.
type RunCommander struct {
	sender Sender
}

// NewRunCommander returns new RunCommander using provided sender for sending messages.
func NewRunCommander(sender Sender) RunCommander {
	return RunCommander{
		sender: sender,
	}
}

// SendRunCommand sends command to run ingestion of the site with provided dedup policy.
func (c RunCommander) SendRunCommand(ctx context.Context, site, policy string) error {
	cmd := RunCommand{
		Site:   site,
		Policy: policy,
	}

	cmdMsg, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("can't marshal run command: %w", err)
	}

	if err := c.sender.Send(ctx, cmdMsg); err != nil {
		return fmt.Errorf("can't send run command: %w", err)
	}

	return nil
}
