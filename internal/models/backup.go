package models

type Backup struct {
	CollectionName string `json:"collection_name"`
	Timestamp      string `json:"timestamp"`
	ReadableTime   string `json:"readable_time"`
	WordCount      int    `json:"word_count"`
}

type BackupResult struct {
	Status         string `json:"status"`
	CollectionName string `json:"collection_name"`
	WordCount      int    `json:"word_count"`
	Timestamp      string `json:"timestamp"`
}

type RestoreRequest struct {
	CollectionName string `json:"collection_name" validate:"required,startswith=words_backup_"`
}

type RestoreResult struct {
	Status           string `json:"status"`
	RestoredFrom     string `json:"restored_from"`
	WordCount        int    `json:"word_count"`
	PreRestoreBackup string `json:"pre_restore_backup"`
}
