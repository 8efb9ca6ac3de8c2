package config

import "strconv"

type StoreConfig interface {
	GetDefaultPerPage() int
	GetNotificationLimit() int
	GetTrendDays() int
}

type Store struct{}

var _ StoreConfig = Store{}

func (Store) GetDefaultPerPage() int {
	return intEnv("TASKFLOW_PER_PAGE", 15)
}

func (Store) GetNotificationLimit() int {
	return 50
}

func (Store) GetTrendDays() int {
	return 30
}

func intEnv(envVar string, defaultValue int) int {
	n, err := strconv.Atoi(GetEnv(envVar, ""))
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}
