// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "crmsync/models"

type reportLoadedMsg struct {
	report models.StatusReport
	failed []models.QueuedOperation
	err    error
}

type drainDoneMsg struct {
	delivered int
	failed    int
	err       error
}

type conflictResolvedMsg struct {
	report models.StatusReport
	err    error
}

type operationDismissedMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
