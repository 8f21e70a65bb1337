package commands

import (
	"context"
	"fmt"
	"strconv"

	"exomind/internal/application"
	"exomind/internal/domain"
	"exomind/internal/ports"
)

// LinksReport lists the edges into and out of one node
type LinksReport struct {
	Node      domain.Node   `json:"node"`
	Backlinks []domain.Edge `json:"backlinks"`
	Outlinks  []domain.Edge `json:"outlinks"`
	Mirror    domain.Stats  `json:"mirror"` // counts recorded by the last index run
}

// LinksCommand queries the SQLite graph mirror for a node's links
type LinksCommand struct {
	mirror     ports.GraphMirror
	store      ports.GraphStore
	MirrorPath string
	NodeID     string
}

// NewLinksCommand creates a new LinksCommand
func NewLinksCommand(mirror ports.GraphMirror, store ports.GraphStore, mirrorPath, nodeID string) *LinksCommand {
	return &LinksCommand{
		mirror:     mirror,
		store:      store,
		MirrorPath: mirrorPath,
		NodeID:     nodeID,
	}
}

// Execute returns the backlinks and outlinks of the node
func (c *LinksCommand) Execute(ctx context.Context) (*LinksReport, error) {
	if err := application.ValidateRequired("node ID", c.NodeID); err != nil {
		return nil, err
	}
	// Opening would silently create an empty database
	if !c.store.Exists(c.MirrorPath) {
		return nil, &application.MirrorNotFoundError{Path: c.MirrorPath}
	}

	if err := c.mirror.Open(c.MirrorPath); err != nil {
		return nil, err
	}
	defer c.mirror.Close()

	node, err := c.mirror.GetNode(c.NodeID)
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, fmt.Errorf("%w: %s", application.ErrNodeNotFound, c.NodeID)
	}

	backlinks, err := c.mirror.FindLinksTo(c.NodeID)
	if err != nil {
		return nil, err
	}
	outlinks, err := c.mirror.FindLinksFrom(c.NodeID)
	if err != nil {
		return nil, err
	}
	stats, err := mirrorStats(c.mirror)
	if err != nil {
		return nil, err
	}

	return &LinksReport{
		Node:      *node,
		Backlinks: backlinks,
		Outlinks:  outlinks,
		Mirror:    stats,
	}, nil
}

// mirrorStats reads the counts stored alongside the mirrored graph
func mirrorStats(mirror ports.GraphMirror) (domain.Stats, error) {
	var stats domain.Stats
	for key, dst := range map[string]*int{
		"notes": &stats.Notes,
		"nodes": &stats.Nodes,
		"edges": &stats.Edges,
	} {
		value, err := mirror.Meta(key)
		if err != nil {
			return domain.Stats{}, err
		}
		if value == "" {
			continue
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return domain.Stats{}, fmt.Errorf("invalid mirror metadata %s=%q: %w", key, value, err)
		}
		*dst = n
	}
	return stats, nil
}
