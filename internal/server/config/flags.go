package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/voxkeeper/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-l string   log level
//	-m string   storage backend: file, postgres or s3
//	-f string   document path for the file backend
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      access token validity, minutes
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-k string   S3 object key of the document
//	-i string   inference sidecar base URL
//	-w string   chat relay webhook URL
//	-x float    similarity threshold
//	-n int      embedding dimension (0 = infer)
//
// Notes:
//   - The function first filters os.Args to only the flags it recognizes using
//     flagx.FilterArgs, avoiding collisions with other components.
//   - Duration flags are accepted as integers in minutes and then converted
//     to time.Duration values.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{
		"-a", "-l", "-m", "-f", "-d", "-s", "-t", "-u", "-p", "-b", "-g", "-e", "-k", "-i", "-w", "-x", "-n",
	})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.StorageBackend, "m", config.StorageBackend, "storage backend (file, postgres, s3)")
	fs.StringVar(&config.StoragePath, "f", config.StoragePath, "document path for the file backend")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 root bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 root region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.S3ObjectKey, "k", config.S3ObjectKey, "S3 object key")

	fs.StringVar(&config.InferenceEndpoint, "i", config.InferenceEndpoint, "inference sidecar URL")
	fs.StringVar(&config.RelayURL, "w", config.RelayURL, "chat relay webhook URL")
	fs.Float64Var(&config.SimilarityThreshold, "x", config.SimilarityThreshold, "voice similarity threshold")
	fs.IntVar(&config.EmbeddingDim, "n", config.EmbeddingDim, "embedding dimension (0 = infer)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
}
