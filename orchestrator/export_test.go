/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package orchestrator

// Waiters returns the number of callers attached to the fetch of kind.
func (o *Orchestrator) Waiters(kind string) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	if f, ok := o.flights[kind]; ok {
		return f.waiters
	}
	return 0
}
