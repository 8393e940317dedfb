// Package service implements the sync core on top of the repositories and
// the remote authority adapter: draft autosave, the offline operation queue,
// status/conflict reporting and retention maintenance.
package service

import (
	"crmsync/internal/adapter"
	"crmsync/internal/config"
	"crmsync/internal/connectivity"
	"crmsync/internal/logger"
	"crmsync/internal/store"
)

// Services aggregates the sync core.
type Services struct {
	Autosave    AutosaveService
	Queue       QueueService
	Status      StatusService
	Maintenance MaintenanceService
}

// NewServices wires every service against the shared storages, authority and
// connectivity monitor.
func NewServices(
	storages *store.Storages,
	authority adapter.RemoteAuthority,
	monitor connectivity.Monitor,
	workersCfg config.Workers,
	log *logger.Logger,
) *Services {
	return &Services{
		Autosave: NewAutosaveService(
			storages.Autosave.Drafts,
			authority,
			monitor,
			workersCfg.AutosaveInterval,
			log,
		),
		Queue: NewQueueService(
			storages.Autosave.Operations,
			authority,
			monitor,
			log,
		),
		Status: NewStatusService(
			storages.Autosave.Operations,
			authority,
			monitor,
			log,
		),
		Maintenance: NewMaintenanceService(
			storages.Autosave.Drafts,
			storages.Autosave.Operations,
			storages.Cache.Entities,
			workersCfg.Retention,
			log,
		),
	}
}
