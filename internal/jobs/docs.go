// Package jobs provides scheduled background tasks for the delivery system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the delivery service.
//
// # Available Jobs
//
// 1. EvidenceSweepJob - Periodically removes stored evidence files that no
// delivered parcel references, reclaiming files stranded by persistence
// failures after a successful photo upload.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(sweepEvidenceHandler, retention, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sweep runs hourly ("0 0 * * * *"). Stranded files are rare and harmless
// until reclaimed, so a tighter schedule buys nothing.
//
// # Error Handling
//
// Sweep failures are logged and retried on the next tick; a failed run never
// touches parcel state, only unreferenced files past their retention window.
package jobs
