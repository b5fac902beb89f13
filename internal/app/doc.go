// Package app wires configuration, logging, the monPlan gateway, the state
// store, the action handlers and the UI into the MUSE application.
//
// # Startup
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()          Read ~/.config/muse/config.toml
//	       ├─────> log.Init()             apex/log to log_file
//	       ├─────> monplan.NewClient()    Gateway (+ Prometheus metrics)
//	       ├─────> ServeMetrics()         Only when metrics_addr is set
//	       ├─────> state.NewStore()       Single owner of all state
//	       ├─────> StartCatalogFetch()    One background fetch of basic/units
//	       └─────> ui.Run()               Bubble Tea program (blocks)
//
// # Error Handling
//
// Configuration, logging and client construction errors are fatal and
// returned from Run. A failed catalog fetch is not: the store is marked
// invalidated and the UI says so. There is no retry.
package app
