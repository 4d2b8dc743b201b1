package workers

// Worker - фоновая задача, которую запускает и останавливает Manager
type Worker interface {
	// Start планирует задачу и возвращает управление
	Start() error

	// Stop останавливает задачу и дожидается текущего запуска
	Stop()

	// Name returns the worker name for logging
	Name() string
}
