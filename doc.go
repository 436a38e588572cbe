// Package schedq provides an indexed max-heap priority queue and a
// discrete-time task scheduler simulation built on top of it.
//
// The queue keeps a position index (task id -> heap slot) alongside the
// heap slice, which makes in-place priority changes on arbitrary resident
// tasks logarithmic. The scheduler feeds tasks into the queue by arrival
// time and executes at most one task per tick.
//
// End-users typically interact via the high-level Service façade exposed by
// the root package:
//
//	srv := schedq.New()
//	set, _ := srv.LoadTaskSet(ctx, "tasks.yaml")
//	timeline, _ := srv.SimulateTaskSet(ctx, set)
//
// The queue and scheduler packages can also be used directly. See the
// individual sub-packages for details.
package schedq
