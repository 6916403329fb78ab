package cmd

import "time"

type Config struct {
	HTTPPort             string
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	DBSslMode            string
	EvidenceDir          string
	EvidencePublicPrefix string
	EvidenceRetention    time.Duration
	BcryptCost           int
}
