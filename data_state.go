package main

import (
	"github.com/andareed/siftly-plot/dataset"
	"github.com/andareed/siftly-plot/poller"
	"github.com/andareed/siftly-plot/selection"
	"github.com/andareed/siftly-plot/timewindow"
)

// appState is everything the plot depends on. The UI reads it; only the
// load, window and panel handlers write it.
type appState struct {
	path     string
	loadOpts dataset.Options
	data     *dataset.Dataset
	registry *selection.Registry
	spec     timewindow.Spec  // last spec that filtered successfully
	view     *timewindow.View // rows kept by spec
	poller   *poller.Poller
}

func (a *appState) hasData() bool {
	return a.data != nil
}

func (a *appState) rowCount() int {
	if a.data == nil {
		return 0
	}
	return a.data.Len()
}
