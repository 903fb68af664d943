package timelog

import (
	"os"

	json "github.com/goccy/go-json"

	"tod/internal/models"
	"tod/internal/providers"
	"tod/internal/services"
	"tod/internal/timelog/interfaces"
)

type FileManager struct {
	service    services.TimeLogServiceInterface
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewFileManager(compressor interfaces.CompressorInterface, service services.TimeLogServiceInterface, logger providers.Logger) *FileManager {
	return &FileManager{
		compressor: compressor,
		service:    service,
		logger:     logger,
	}
}

func (f *FileManager) SaveToFile(fileName string) error {
	storage := f.service.GetSnapshot()

	jsonData, err := json.Marshal(storage)
	if err != nil {
		return err
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

func (f *FileManager) Close() {
	f.compressor.Close()
}

func (f *FileManager) LoadFromFile(fileName string) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	decompressedData, err := f.compressor.Decompress(data)
	if err != nil {
		return err
	}

	// Current format: versioned envelope
	var storage models.Storage
	if err := json.Unmarshal(decompressedData, &storage); err == nil && storage.Version > 0 {
		f.service.PutSnapshot(&storage)
		return nil
	}

	// Legacy format: the mobile app's backup file, a bare array of entries
	f.logger.Warnf(providers.TypeApp, "Inconsistent DB found, try to migrate from old data format")
	var entries []models.TimeLogEntry
	if err := json.Unmarshal(decompressedData, &entries); err != nil {
		f.logger.Warnf(providers.TypeApp, "Migration failed")
		return err
	}
	f.logger.Warnf(providers.TypeApp, "Migration from legacy backup format successful")
	f.service.PutSnapshot(&models.Storage{
		Version: models.StorageVersion,
		Entries: entries,
	})
	return nil
}
