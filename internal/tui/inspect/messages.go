// ============================================================================
// textkit - Text Runtime Toolkit
// ============================================================================
//
// Package:     inspect
// Description: Message types for async operations in the inspector
// Author:      Mike Stoffels
// Created:     2026-09-21
// License:     MIT
// ============================================================================

package inspect

// rowsLoadedMsg is sent when the input has been analyzed
type rowsLoadedMsg struct {
	rows []Row
	err  error
}
