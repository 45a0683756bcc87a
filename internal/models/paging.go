package models

// ListParams — базовые параметры постраничной выдачи.
// Page — 1-базный номер страницы; значения <1 трактуются как 1.
// Limit приводится слоем storage к [Default, Max] из конфигурации
// (Max — потолок, единая политика для всех выдач).
type ListParams struct {
	Page  int32
	Limit int32
}

// VideoListParams — параметры листинга/поиска видео.
// Query — регистронезависимый подстрочный поиск по title/description.
// SortBy/Ascending — явный ключ сортировки листинга.
type VideoListParams struct {
	ListParams
	Query     string
	SortBy    VideoSortField
	Ascending bool
}
