package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/voxkeeper/internal/flagx"
	"github.com/dmitrijs2005/voxkeeper/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON unmarshalling.
// It uses timex.Duration for interval fields, which allows parsing both
// string values such as "1s" and integer nanoseconds.
//
// Pointer fields distinguish "absent" from an explicit zero, so a partial
// file only overrides what it names.
type JsonConfig struct {
	EndpointAddrGRPC            string          `json:"endpoint_addr_grpc"`
	LogLevel                    string          `json:"log_level"`
	StorageBackend              string          `json:"storage_backend"`
	StoragePath                 string          `json:"storage_path"`
	DatabaseDSN                 string          `json:"database_dsn"`
	SecretKey                   string          `json:"secret_key"`
	AccessTokenValidityDuration *timex.Duration `json:"access_token_validity_duration"`
	S3RootUser                  string          `json:"s3_root_user"`
	S3RootPassword              string          `json:"s3_root_password"`
	S3Bucket                    string          `json:"s3_bucket"`
	S3Region                    string          `json:"s3_region"`
	S3BaseEndpoint              string          `json:"s3_base_endpoint"`
	S3ObjectKey                 string          `json:"s3_object_key"`
	InferenceEndpoint           string          `json:"inference_endpoint"`
	InferenceTimeout            *timex.Duration `json:"inference_timeout"`
	RelayURL                    string          `json:"relay_url"`
	RelayTimeout                *timex.Duration `json:"relay_timeout"`
	SimilarityThreshold         *float64        `json:"similarity_threshold"`
	LivenessCutoff              *float64        `json:"liveness_cutoff"`
	EmbeddingDim                *int            `json:"embedding_dim"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path comes from the -c or -config command-line flags. If it is
// not set, no JSON file is loaded. If the file cannot be read or contains
// invalid JSON, the function panics.
func parseJson(config *Config) {

	// try flags
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.StorageBackend, c.StorageBackend)
	setString(&config.StoragePath, c.StoragePath)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.S3ObjectKey, c.S3ObjectKey)
	setString(&config.InferenceEndpoint, c.InferenceEndpoint)
	setString(&config.RelayURL, c.RelayURL)

	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.InferenceTimeout != nil {
		config.InferenceTimeout = c.InferenceTimeout.Duration
	}
	if c.RelayTimeout != nil {
		config.RelayTimeout = c.RelayTimeout.Duration
	}
	if c.SimilarityThreshold != nil {
		config.SimilarityThreshold = *c.SimilarityThreshold
	}
	if c.LivenessCutoff != nil {
		config.LivenessCutoff = *c.LivenessCutoff
	}
	if c.EmbeddingDim != nil {
		config.EmbeddingDim = *c.EmbeddingDim
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
