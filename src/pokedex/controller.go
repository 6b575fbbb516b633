package pokedex

import (
	"github.com/dlusion/INFO-474-Midterm/src/types"
)

// Renderer receives every recomputed subset. plot.View satisfies it.
type Renderer interface {
	Render(data []types.Record)
}

// Controller owns the dataset and the shared FilterState. Each dropdown handler
// updates its own selection and redraws with the composition of both; neither
// handler reads the other control directly.
//
// A Controller is driven from a single UI thread and is not safe for concurrent use.
type Controller struct {
	dataset  types.Dataset
	state    FilterState
	renderer Renderer
	subset   types.Dataset
}

// NewController starts at All/All. Call Refresh for the initial draw.
func NewController(ds types.Dataset, r Renderer) *Controller {
	return &Controller{dataset: ds, renderer: r}
}

// SetGeneration handles a change of the generation dropdown. An unknown option
// leaves the state and the drawing untouched.
func (c *Controller) SetGeneration(option string) error {
	g, err := ParseGenerationOption(option)
	if err != nil {
		return err
	}
	c.state.Generation = g
	c.Refresh()
	return nil
}

// SetLegendary handles a change of the legendary dropdown.
func (c *Controller) SetLegendary(option string) error {
	l, err := ParseLegendaryOption(option)
	if err != nil {
		return err
	}
	c.state.Legendary = l
	c.Refresh()
	return nil
}

// SetState replaces both selections at once (used when restoring preferences).
func (c *Controller) SetState(s FilterState) {
	c.state = s
	c.Refresh()
}

// Refresh recomputes the subset for the current state and redraws synchronously.
func (c *Controller) Refresh() {
	c.subset = Filter(c.dataset, c.state)
	Debugf("[viewer] %s: %d of %d records", c.state, len(c.subset), len(c.dataset))
	if c.renderer != nil {
		c.renderer.Render(c.subset)
	}
}

func (c *Controller) State() FilterState { return c.state }

// Subset returns the records drawn by the last Refresh.
func (c *Controller) Subset() types.Dataset { return c.subset }

func (c *Controller) Dataset() types.Dataset { return c.dataset }
