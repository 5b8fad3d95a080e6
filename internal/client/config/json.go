package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/voxkeeper/internal/flagx"
	"github.com/dmitrijs2005/voxkeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	ServerEndpointAddr string          `json:"server_endpoint_addr"`
	RequestTimeout     *timex.Duration `json:"request_timeout"`
}

// parseJson overlays Config with values loaded from the file named by -c or
// -config. Fields absent from the file keep their current value. Read or
// decode errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}
