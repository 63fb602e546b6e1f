package koios

import "strings"

// Public Koios instances.
const (
	MainnetURL = "https://api.koios.rest/api/v1"
	PreprodURL = "https://preprod.koios.rest/api/v1"
	PreviewURL = "https://preview.koios.rest/api/v1"
	GuildURL   = "https://guild.koios.rest/api/v1"
)

// DefaultUserAgent is sent on every request unless overridden.
const DefaultUserAgent = "koios-go/" + Version

// Version of the client library.
const Version = "0.3.0"

var networks = map[string]string{
	"mainnet": MainnetURL,
	"preprod": PreprodURL,
	"preview": PreviewURL,
	"guild":   GuildURL,
}

// NetworkURL returns the base URL of a named public network.
func NetworkURL(network string) (string, bool) {
	u, ok := networks[strings.ToLower(strings.TrimSpace(network))]
	return u, ok
}

// Networks returns the names of the known public networks.
func Networks() []string {
	return []string{"mainnet", "preprod", "preview", "guild"}
}
