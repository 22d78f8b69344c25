// Package jobs provides scheduled background tasks for the dispatch system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. ReconciliationJob - Periodically repairs order↔partner link divergence:
// orders pointing at missing or unacknowledging partners are reverted to
// pending, and partner assignment sets referencing missing or re-routed
// orders are pruned.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(reconcileHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The reconciliation job runs once a minute. Link divergence only appears
// after partial failures or out-of-band deletes, so a tighter schedule buys
// nothing.
package jobs
