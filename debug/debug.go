// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: debug.go — cold-path diagnostic logging helper (zero-alloc)
//
// Purpose:
//   - Logs infrequent harness events without introducing heap pressure.
//   - Used only in cold paths: pass start/finish, store errors, digest
//     mismatches.
//
// Notes:
//   - Avoids fmt.Sprintf to minimize footprint and latency.
//   - Writes to stderr only; stdout is reserved for the two report lines.
//
// ⚠️ Never invoke inside the timed traversal loop.
// ─────────────────────────────────────────────────────────────────────────────

package debug

import "main/utils"

// DropError logs an error with a custom alloc-free print strategy.
// It writes directly to stderr (file descriptor 2), bypassing any heap
// allocations beyond the message concatenation itself.
//
//go:nosplit
//go:inline
//go:registerparams
func DropError(prefix string, err error) {
	if err != nil {
		msg := prefix + ": " + err.Error() + "\n"
		utils.PrintWarning(msg)
	} else {
		msg := prefix + "\n"
		utils.PrintWarning(msg)
	}
}

// DropMessage logs a tagged diagnostic message with zero-allocation print
// strategy. Used for pass lifecycle events and verification outcomes.
//
//go:nosplit
//go:inline
//go:registerparams
func DropMessage(prefix, message string) {
	msg := prefix + ": " + message + "\n"
	utils.PrintWarning(msg)
}
