package scheduler

// RefreshController expõe o disparo manual e o status do agendador para a API
type RefreshController interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

var _ RefreshController = (*DashboardRefreshService)(nil)
