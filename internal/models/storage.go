package models

// SavedActivity is a remembered (activity, category) pair offered for
// quick logging.
type SavedActivity struct {
	Activity string `json:"activity"`
	Category string `json:"category"`
}

const StorageVersion = 2

// Storage is the persistence envelope written to the snapshot file.
// Version 1 files were a bare JSON array of entries (the mobile app's
// backup format); the FileManager migrates those on load.
type Storage struct {
	Version         int             `json:"version"`
	Entries         []TimeLogEntry  `json:"entries"`
	Targets         []DailyTargets  `json:"targets"`
	Holidays        []string        `json:"holidays"`
	SavedActivities []SavedActivity `json:"saved_activities"`
}
