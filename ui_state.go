package main

import "github.com/andareed/siftly-plot/timewindow"

type uiState struct {
	mode   mode
	focus  inputFocus
	panel  int // panel whose columns and axis are being edited
	column int // cursor into the registry columns

	useFull    bool
	windowMode timewindow.Mode // ModeRolling or ModeRange when useFull is off
	unit       timewindow.Unit
	offset     int

	noticeMsg  string
	noticeKind noticeKind
	noticeSeq  int

	pollFailures int // consecutive failed auto-update reloads
}
