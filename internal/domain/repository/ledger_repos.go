package repository

// LedgerRepos agrupa los repositorios atados a una misma transacción.
// Lo construye el TxRunner de cada adaptador para el callback de la operación.
type LedgerRepos struct {
	Assets        AssetRepository
	Categories    CategoryRepository
	Depreciation  DepreciationRepository
	Transfers     TransferHistoryRepository
	Disposals     DisposalRepository
	Notifications NotificationRepository
	History       AssetHistoryRepository
}
