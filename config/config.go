package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ServerPort     string
	Environment    string
	GitHubToken    string
	GitHubRepo     string // owner/repo coordinate of the data repository
	GitHubBranch   string
	GitHubAPIBase  string
	HTTPTimeout    time.Duration
	CacheTTL       time.Duration
	AssetBackend   string // "github" or "minio"
	MinIOEndpoint  string
	MinIOAccessKey string
	MinIOSecretKey string
	MinIOBucket    string
	MinIOUseSSL    bool
	MinIOPublicURL string // Base URL under which uploaded objects are served
	AcademyAPIBase string
	SuperadminIDs  []string            // SRNs / PESU emails with full admin rights
	CRIDsByClass   map[string][]string // class_id -> CR SRNs/emails
}

func Load() *Config {
	cacheMinutes, _ := strconv.Atoi(getEnv("CACHE_TTL_MINUTES", "10"))
	timeoutSeconds, _ := strconv.Atoi(getEnv("HTTP_TIMEOUT_SECONDS", "30"))
	useSSL, _ := strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))

	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		GitHubToken:    getEnv("GITHUB_TOKEN", ""),
		GitHubRepo:     getEnv("GITHUB_REPO", ""),
		GitHubBranch:   getEnv("GITHUB_BRANCH", "main"),
		GitHubAPIBase:  getEnv("GITHUB_API_BASE", "https://api.github.com"),
		HTTPTimeout:    time.Duration(timeoutSeconds) * time.Second,
		CacheTTL:       time.Duration(cacheMinutes) * time.Minute,
		AssetBackend:   getEnv("ASSET_BACKEND", "github"),
		MinIOEndpoint:  getEnv("MINIO_ENDPOINT", "minio:9000"),
		MinIOAccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		MinIOSecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
		MinIOBucket:    getEnv("MINIO_BUCKET", "portal-materials"),
		MinIOUseSSL:    useSSL,
		MinIOPublicURL: getEnv("MINIO_PUBLIC_URL", "http://minio:9000"),
		AcademyAPIBase: getEnv("ACADEMY_API_BASE", "https://pesu-academy-api.local"),
		SuperadminIDs:  parseIDList(getEnv("SUPERADMIN_IDS", "")),
		CRIDsByClass:   parseClassMap(getEnv("CR_IDS", "")),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseIDList parses a comma-separated id list: "PES1UG25CS527,cr@pesu.pes.edu"
func parseIDList(value string) []string {
	var ids []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			ids = append(ids, part)
		}
	}
	return ids
}

// parseClassMap parses CR assignments: "Sem2-C9:srn1|srn2;Sem4-A:srn3"
func parseClassMap(value string) map[string][]string {
	result := make(map[string][]string)
	for _, entry := range strings.Split(value, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, ":", 2)
		if len(parts) != 2 {
			continue
		}
		classID := strings.TrimSpace(parts[0])
		var ids []string
		for _, id := range strings.Split(parts[1], "|") {
			id = strings.TrimSpace(id)
			if id != "" {
				ids = append(ids, id)
			}
		}
		if classID != "" && len(ids) > 0 {
			result[classID] = ids
		}
	}
	return result
}
